package dto

import (
	model "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/waitlist/model"
)

type JoinWaitlistRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

func (r JoinWaitlistRequest) ToModel() model.WaitlistModel {
	return model.WaitlistModel{
		WaitlistName:  r.Name,
		WaitlistEmail: r.Email,
	}
}
