package dto

import (
	"github.com/google/uuid"

	model "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/schedules/model"
)

type CreateScheduleRequest struct {
	CourseID    uuid.UUID `json:"course_id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description" validate:"required"`
	Week        int       `json:"week" validate:"gte=0"`
	Facilitator string    `json:"facilitator" validate:"required,max=120"`
	Date        string    `json:"date" validate:"required,max=60"`
}

func (r CreateScheduleRequest) ToModel() model.ScheduleModel {
	return model.ScheduleModel{
		ScheduleCourseID:    r.CourseID,
		ScheduleTitle:       r.Title,
		ScheduleDescription: r.Description,
		ScheduleWeek:        r.Week,
		ScheduleFacilitator: r.Facilitator,
		ScheduleDate:        r.Date,
	}
}

type UpdateScheduleRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty"`
	Week        *int    `json:"week" validate:"omitempty,gte=0"`
	Facilitator *string `json:"facilitator" validate:"omitempty,max=120"`
	Date        *string `json:"date" validate:"omitempty,max=60"`
}

func (r UpdateScheduleRequest) Apply(m *model.ScheduleModel) {
	if r.Title != nil {
		m.ScheduleTitle = *r.Title
	}
	if r.Description != nil {
		m.ScheduleDescription = *r.Description
	}
	if r.Week != nil {
		m.ScheduleWeek = *r.Week
	}
	if r.Facilitator != nil {
		m.ScheduleFacilitator = *r.Facilitator
	}
	if r.Date != nil {
		m.ScheduleDate = *r.Date
	}
}

// ScheduleWithCourse is the list/read shape, joined to the course title.
type ScheduleWithCourse struct {
	model.ScheduleModel `gorm:"embedded"`
	CourseTitle         string `gorm:"column:course_title" json:"course_title"`
}
