package dto

import (
	"github.com/google/uuid"

	adminModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/admins/model"
)

type RegisterAdminRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthAdminResponse struct {
	AdminID uuid.UUID `json:"admin_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Token   string    `json:"token"`
}

func NewAuthAdminResponse(m adminModel.AdminModel, token string) AuthAdminResponse {
	return AuthAdminResponse{
		AdminID: m.AdminID,
		Name:    m.AdminName,
		Email:   m.AdminEmail,
		Token:   token,
	}
}
