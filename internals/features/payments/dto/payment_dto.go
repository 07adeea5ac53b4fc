package dto

import (
	"github.com/google/uuid"

	model "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/payments/model"
)

type InitiatePaymentRequest struct {
	CourseID      uuid.UUID `json:"course_id" validate:"required"`
	CustomerName  string    `json:"customer_name" validate:"required,min=2,max=120"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	CustomerPhone string    `json:"customer_phone" validate:"omitempty,max=30"`
}

type VerifyPaymentRequest struct {
	Reference string `json:"reference"`
}

type InitiatePaymentResponse struct {
	PaymentID        uuid.UUID `json:"payment_id"`
	Reference        string    `json:"reference"`
	AuthorizationURL string    `json:"authorization_url"`
	AccessCode       string    `json:"access_code"`
}

// PaymentWithCourse is the admin read shape, joined to the course title.
type PaymentWithCourse struct {
	model.PaymentModel `gorm:"embedded"`
	CourseTitle        string `gorm:"column:course_title" json:"course_title"`
}
