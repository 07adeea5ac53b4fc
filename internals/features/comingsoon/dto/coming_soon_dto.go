package dto

import (
	model "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/comingsoon/model"
)

type CreateComingSoonRequest struct {
	Title     string   `json:"title" validate:"required,min=1,max=200"`
	Subtitles []string `json:"subtitles" validate:"omitempty,dive,max=200"`
}

func (r CreateComingSoonRequest) ToModel() model.ComingSoonModel {
	return model.ComingSoonModel{
		ComingSoonTitle:     r.Title,
		ComingSoonSubtitles: r.Subtitles,
	}
}

type UpdateComingSoonRequest struct {
	Title     *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Subtitles *[]string `json:"subtitles" validate:"omitempty,dive,max=200"`
}

func (r UpdateComingSoonRequest) Apply(m *model.ComingSoonModel) {
	if r.Title != nil {
		m.ComingSoonTitle = *r.Title
	}
	if r.Subtitles != nil {
		m.ComingSoonSubtitles = *r.Subtitles
	}
}
