package dto

import (
	"errors"

	"github.com/google/uuid"

	model "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/enrollments/model"
)

// CreateEnrollmentRequest is parsed from a multipart form (the receipt file
// rides alongside these fields).
type CreateEnrollmentRequest struct {
	CourseID            uuid.UUID `form:"course_id" json:"course_id" validate:"required"`
	FullName            string    `form:"full_name" json:"full_name" validate:"required,min=2,max=120"`
	Email               string    `form:"email" json:"email" validate:"required,email"`
	Phone               string    `form:"phone" json:"phone" validate:"required,max=30"`
	Region              string    `form:"region" json:"region" validate:"required,oneof=Africa Europe"`
	EducationLevel      string    `form:"education_level" json:"education_level" validate:"required,oneof=SSCE OND HND BSC MSc PhD Others"`
	LinkedInProfile     string    `form:"linkedin_profile" json:"linkedin_profile" validate:"required,max=255"`
	ServiceOffering     string    `form:"service_offering" json:"service_offering" validate:"required"`
	Motivation          string    `form:"motivation" json:"motivation" validate:"required"`
	ExpectedOutcomes    string    `form:"expected_outcomes" json:"expected_outcomes" validate:"required"`
	Challenges          string    `form:"challenges" json:"challenges" validate:"required"`
	SuccessMeasurement  string    `form:"success_measurement" json:"success_measurement" validate:"required"`
	FurtherQuestions    string    `form:"further_questions" json:"further_questions"`
	WillingToAttendNext bool      `form:"willing_to_attend_next" json:"willing_to_attend_next"`
	FeeCommitment       bool      `form:"fee_commitment" json:"fee_commitment"`
	PaymentMethod       string    `form:"payment_method" json:"payment_method" validate:"required,oneof=paystack manual"`
}

var (
	ErrFeeCommitmentRequired = errors.New("Fee commitment confirmation is required for European applicants")
	ErrReceiptRequired       = errors.New("Receipt upload is required for manual payments")
)

// ValidateRegionRules enforces the region-conditional requirements before
// anything is persisted: Europe requires an explicit fee commitment, and
// Europe with manual payment requires an uploaded receipt.
func (r CreateEnrollmentRequest) ValidateRegionRules(hasReceipt bool) error {
	if model.Region(r.Region) != model.RegionEurope {
		return nil
	}
	if !r.FeeCommitment {
		return ErrFeeCommitmentRequired
	}
	if model.PaymentMethod(r.PaymentMethod) == model.MethodManual && !hasReceipt {
		return ErrReceiptRequired
	}
	return nil
}

func (r CreateEnrollmentRequest) ToModel() model.EnrollmentModel {
	return model.EnrollmentModel{
		EnrollmentCourseID:            r.CourseID,
		EnrollmentFullName:            r.FullName,
		EnrollmentEmail:               r.Email,
		EnrollmentPhone:               r.Phone,
		EnrollmentRegion:              model.Region(r.Region),
		EnrollmentEducationLevel:      r.EducationLevel,
		EnrollmentLinkedInProfile:     r.LinkedInProfile,
		EnrollmentServiceOffering:     r.ServiceOffering,
		EnrollmentMotivation:          r.Motivation,
		EnrollmentExpectedOutcomes:    r.ExpectedOutcomes,
		EnrollmentChallenges:          r.Challenges,
		EnrollmentSuccessMeasurement:  r.SuccessMeasurement,
		EnrollmentFurtherQuestions:    r.FurtherQuestions,
		EnrollmentWillingToAttendNext: r.WillingToAttendNext,
		EnrollmentFeeCommitment:       r.FeeCommitment,
		EnrollmentStatus:              model.EnrollmentPending,
		EnrollmentPaymentMethod:       model.PaymentMethod(r.PaymentMethod),
	}
}

type UpdateEnrollmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid failed"`
}

// EnrollmentWithCourse is the admin list shape, joined to course pricing.
type EnrollmentWithCourse struct {
	model.EnrollmentModel `gorm:"embedded"`
	CourseTitle           string `gorm:"column:course_title" json:"course_title"`
	CoursePriceNGN        int    `gorm:"column:course_price_ngn" json:"course_price_ngn"`
	CoursePriceEUR        int    `gorm:"column:course_price_eur" json:"course_price_eur"`
}
