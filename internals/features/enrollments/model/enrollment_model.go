package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentStatus string

const (
	EnrollmentPending EnrollmentStatus = "pending"
	EnrollmentPaid    EnrollmentStatus = "paid"
	EnrollmentFailed  EnrollmentStatus = "failed"
)

type Region string

const (
	RegionAfrica Region = "Africa"
	RegionEurope Region = "Europe"
)

type PaymentMethod string

const (
	MethodPaystack PaymentMethod = "paystack"
	MethodManual   PaymentMethod = "manual"
)

type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	EnrollmentCourseID uuid.UUID `gorm:"column:enrollment_course_id;type:uuid;not null;index" json:"enrollment_course_id"`

	EnrollmentFullName string `gorm:"column:enrollment_full_name;type:varchar(120);not null" json:"enrollment_full_name"`
	EnrollmentEmail    string `gorm:"column:enrollment_email;type:varchar(255);not null;index" json:"enrollment_email"`
	EnrollmentPhone    string `gorm:"column:enrollment_phone;type:varchar(30);not null" json:"enrollment_phone"`

	EnrollmentRegion Region `gorm:"column:enrollment_region;type:varchar(10);not null" json:"enrollment_region"`

	EnrollmentEducationLevel     string `gorm:"column:enrollment_education_level;type:varchar(10);not null" json:"enrollment_education_level"`
	EnrollmentLinkedInProfile    string `gorm:"column:enrollment_linkedin_profile;type:varchar(255);not null" json:"enrollment_linkedin_profile"`
	EnrollmentServiceOffering    string `gorm:"column:enrollment_service_offering;type:text;not null" json:"enrollment_service_offering"`
	EnrollmentMotivation         string `gorm:"column:enrollment_motivation;type:text;not null" json:"enrollment_motivation"`
	EnrollmentExpectedOutcomes   string `gorm:"column:enrollment_expected_outcomes;type:text;not null" json:"enrollment_expected_outcomes"`
	EnrollmentChallenges         string `gorm:"column:enrollment_challenges;type:text;not null" json:"enrollment_challenges"`
	EnrollmentSuccessMeasurement string `gorm:"column:enrollment_success_measurement;type:text;not null" json:"enrollment_success_measurement"`
	EnrollmentFurtherQuestions   string `gorm:"column:enrollment_further_questions;type:text" json:"enrollment_further_questions,omitempty"`

	EnrollmentWillingToAttendNext bool `gorm:"column:enrollment_willing_to_attend_next;not null;default:false" json:"enrollment_willing_to_attend_next"`
	EnrollmentFeeCommitment       bool `gorm:"column:enrollment_fee_commitment;not null;default:false" json:"enrollment_fee_commitment"`

	EnrollmentReceiptURL string `gorm:"column:enrollment_receipt_url;type:text" json:"enrollment_receipt_url,omitempty"`

	EnrollmentStatus        EnrollmentStatus `gorm:"column:enrollment_status;type:varchar(20);not null;default:'pending'" json:"enrollment_status"`
	EnrollmentPaymentMethod PaymentMethod    `gorm:"column:enrollment_payment_method;type:varchar(20);not null" json:"enrollment_payment_method"`

	// set when initiation links this application to a payment attempt
	EnrollmentPaystackReference *string `gorm:"column:enrollment_paystack_reference;type:varchar(100);uniqueIndex" json:"enrollment_paystack_reference,omitempty"`

	EnrollmentPaidAt *time.Time `gorm:"column:enrollment_paid_at" json:"enrollment_paid_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
