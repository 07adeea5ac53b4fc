package dto

import (
	model "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/courses/model"
)

type CreateCourseRequest struct {
	Title       string               `json:"title" validate:"required,min=1,max=200"`
	Description string               `json:"description" validate:"required"`
	PriceNGN    int                  `json:"price_ngn" validate:"gte=0"`
	PriceEUR    int                  `json:"price_eur" validate:"gte=0"`
	Duration    string               `json:"duration" validate:"required,max=60"`
	Level       string               `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Category    string               `json:"category" validate:"required,max=100"`
	Syllabus    []model.SyllabusItem `json:"syllabus" validate:"omitempty,dive"`
	IsPublished *bool                `json:"is_published"`
}

func (r CreateCourseRequest) ToModel() (model.CourseModel, error) {
	level := model.CourseLevel(r.Level)
	if r.Level == "" {
		level = model.LevelBeginner
	}
	m := model.CourseModel{
		CourseTitle:       r.Title,
		CourseDescription: r.Description,
		CoursePriceNGN:    r.PriceNGN,
		CoursePriceEUR:    r.PriceEUR,
		CourseDuration:    r.Duration,
		CourseLevel:       level,
		CourseCategory:    r.Category,
	}
	if r.IsPublished != nil {
		m.CourseIsPublished = *r.IsPublished
	}
	if err := m.SetSyllabus(r.Syllabus); err != nil {
		return m, err
	}
	return m, nil
}

type UpdateCourseRequest struct {
	Title       *string               `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string               `json:"description" validate:"omitempty"`
	PriceNGN    *int                  `json:"price_ngn" validate:"omitempty,gte=0"`
	PriceEUR    *int                  `json:"price_eur" validate:"omitempty,gte=0"`
	Duration    *string               `json:"duration" validate:"omitempty,max=60"`
	Level       *string               `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Category    *string               `json:"category" validate:"omitempty,max=100"`
	Syllabus    *[]model.SyllabusItem `json:"syllabus" validate:"omitempty,dive"`
	IsPublished *bool                 `json:"is_published"`
}

// Apply copies the provided fields onto the model. The enrollment counter is
// deliberately not updatable through this path.
func (r UpdateCourseRequest) Apply(m *model.CourseModel) error {
	if r.Title != nil {
		m.CourseTitle = *r.Title
	}
	if r.Description != nil {
		m.CourseDescription = *r.Description
	}
	if r.PriceNGN != nil {
		m.CoursePriceNGN = *r.PriceNGN
	}
	if r.PriceEUR != nil {
		m.CoursePriceEUR = *r.PriceEUR
	}
	if r.Duration != nil {
		m.CourseDuration = *r.Duration
	}
	if r.Level != nil {
		m.CourseLevel = model.CourseLevel(*r.Level)
	}
	if r.Category != nil {
		m.CourseCategory = *r.Category
	}
	if r.IsPublished != nil {
		m.CourseIsPublished = *r.IsPublished
	}
	if r.Syllabus != nil {
		if err := m.SetSyllabus(*r.Syllabus); err != nil {
			return err
		}
	}
	return nil
}
