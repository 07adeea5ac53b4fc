package dto

import (
	model "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/contacts/model"
)

type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=1"`
}

func (r SubmitContactRequest) ToModel() model.ContactModel {
	return model.ContactModel{
		ContactName:    r.Name,
		ContactEmail:   r.Email,
		ContactMessage: r.Message,
	}
}
