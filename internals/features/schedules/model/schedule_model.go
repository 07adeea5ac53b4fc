package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleModel struct {
	ScheduleID uuid.UUID `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`

	ScheduleCourseID uuid.UUID `gorm:"column:schedule_course_id;type:uuid;not null;index" json:"schedule_course_id"`

	ScheduleTitle       string `gorm:"column:schedule_title;type:varchar(200);not null" json:"schedule_title"`
	ScheduleDescription string `gorm:"column:schedule_description;type:text;not null" json:"schedule_description"`
	ScheduleWeek        int    `gorm:"column:schedule_week;not null;check:schedule_week >= 0" json:"schedule_week"`
	ScheduleFacilitator string `gorm:"column:schedule_facilitator;type:varchar(120);not null" json:"schedule_facilitator"`
	ScheduleDate        string `gorm:"column:schedule_date;type:varchar(60);not null" json:"schedule_date"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
