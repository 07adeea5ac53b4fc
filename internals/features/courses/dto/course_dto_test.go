package dto

import (
	"testing"

	model "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/courses/model"
)

func TestCreateCourseRequestToModel(t *testing.T) {
	req := CreateCourseRequest{
		Title:       "Data Engineering Foundations",
		Description: "Pipelines from scratch",
		PriceNGN:    150000,
		PriceEUR:    150,
		Duration:    "8 weeks",
		Category:    "Engineering",
		Syllabus: []model.SyllabusItem{
			{Title: "Ingestion", Description: "Sources and sinks"},
		},
	}

	m, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel returned error: %v", err)
	}

	if m.CourseTitle != "Data Engineering Foundations" {
		t.Errorf("Expected title to carry over, got '%s'", m.CourseTitle)
	}
	if m.CourseLevel != model.LevelBeginner {
		t.Errorf("Expected empty level to default to Beginner, got '%s'", m.CourseLevel)
	}
	if m.CourseIsPublished {
		t.Error("Expected unpublished by default")
	}
	if m.CoursePriceNGN != 150000 || m.CoursePriceEUR != 150 {
		t.Errorf("Expected prices 150000/150, got %d/%d", m.CoursePriceNGN, m.CoursePriceEUR)
	}
	if len(m.CourseSyllabus) == 0 {
		t.Error("Expected syllabus to be serialized onto the model")
	}
}

func TestUpdateCourseRequestApply(t *testing.T) {
	m := model.CourseModel{
		CourseTitle:           "Old title",
		CoursePriceNGN:        100000,
		CourseLevel:           model.LevelBeginner,
		CourseEnrollmentCount: 7,
	}

	newTitle := "New title"
	newLevel := "Advanced"
	published := true
	req := UpdateCourseRequest{
		Title:       &newTitle,
		Level:       &newLevel,
		IsPublished: &published,
	}

	if err := req.Apply(&m); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	if m.CourseTitle != "New title" {
		t.Errorf("Expected title to update, got '%s'", m.CourseTitle)
	}
	if m.CourseLevel != model.LevelAdvanced {
		t.Errorf("Expected level Advanced, got '%s'", m.CourseLevel)
	}
	if !m.CourseIsPublished {
		t.Error("Expected is_published to flip to true")
	}
	if m.CoursePriceNGN != 100000 {
		t.Errorf("Expected omitted price to stay at 100000, got %d", m.CoursePriceNGN)
	}
	if m.CourseEnrollmentCount != 7 {
		t.Errorf("Expected enrollment count untouched, got %d", m.CourseEnrollmentCount)
	}
}
