package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

type SyllabusItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`

	CourseTitle       string `gorm:"column:course_title;type:varchar(200);not null" json:"course_title"`
	CourseDescription string `gorm:"column:course_description;type:text;not null" json:"course_description"`

	// prices are stored in major units per currency (naira / euro)
	CoursePriceNGN int `gorm:"column:course_price_ngn;not null;check:course_price_ngn >= 0" json:"course_price_ngn"`
	CoursePriceEUR int `gorm:"column:course_price_eur;not null;default:0;check:course_price_eur >= 0" json:"course_price_eur"`

	CourseDuration string      `gorm:"column:course_duration;type:varchar(60);not null" json:"course_duration"`
	CourseLevel    CourseLevel `gorm:"column:course_level;type:varchar(20);not null;default:'Beginner'" json:"course_level"`
	CourseCategory string      `gorm:"column:course_category;type:varchar(100);not null" json:"course_category"`

	CourseSyllabus datatypes.JSON `gorm:"column:course_syllabus;type:jsonb" json:"course_syllabus,omitempty"`

	CourseIsPublished bool `gorm:"column:course_is_published;not null;default:false" json:"course_is_published"`

	// only ever mutated through an atomic increment
	CourseEnrollmentCount int `gorm:"column:course_enrollment_count;not null;default:0" json:"course_enrollment_count"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (m *CourseModel) SetSyllabus(items []SyllabusItem) error {
	if len(items) == 0 {
		m.CourseSyllabus = nil
		return nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	m.CourseSyllabus = datatypes.JSON(b)
	return nil
}

// IncrementEnrollmentCount bumps the per-course counter atomically in the
// database, never read-modify-write.
func IncrementEnrollmentCount(tx *gorm.DB, courseID uuid.UUID) error {
	return tx.Model(&CourseModel{}).
		Where("course_id = ?", courseID).
		UpdateColumn("course_enrollment_count", gorm.Expr("course_enrollment_count + 1")).Error
}
