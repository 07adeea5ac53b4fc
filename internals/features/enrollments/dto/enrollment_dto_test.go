package dto

import (
	"testing"

	"github.com/google/uuid"

	model "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/enrollments/model"
)

func TestValidateRegionRules(t *testing.T) {
	testCases := []struct {
		name          string
		region        string
		feeCommitment bool
		paymentMethod string
		hasReceipt    bool
		expected      error
	}{
		{"africa needs no commitment", "Africa", false, "paystack", false, nil},
		{"africa manual without receipt", "Africa", false, "manual", false, nil},
		{"europe without commitment", "Europe", false, "paystack", false, ErrFeeCommitmentRequired},
		{"europe manual without receipt", "Europe", true, "manual", false, ErrReceiptRequired},
		{"europe manual with receipt", "Europe", true, "manual", true, nil},
		{"europe paystack with commitment", "Europe", true, "paystack", false, nil},
	}

	for _, tc := range testCases {
		req := CreateEnrollmentRequest{
			Region:        tc.region,
			FeeCommitment: tc.feeCommitment,
			PaymentMethod: tc.paymentMethod,
		}
		if got := req.ValidateRegionRules(tc.hasReceipt); got != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}

func TestCreateEnrollmentRequestToModel(t *testing.T) {
	courseID := uuid.New()
	req := CreateEnrollmentRequest{
		CourseID:      courseID,
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Region:        "Europe",
		FeeCommitment: true,
		PaymentMethod: "paystack",
	}

	m := req.ToModel()

	if m.EnrollmentCourseID != courseID {
		t.Errorf("Expected course id %s, got %s", courseID, m.EnrollmentCourseID)
	}
	if m.EnrollmentStatus != model.EnrollmentPending {
		t.Errorf("Expected new enrollments to start pending, got '%s'", m.EnrollmentStatus)
	}
	if m.EnrollmentRegion != model.RegionEurope {
		t.Errorf("Expected region Europe, got '%s'", m.EnrollmentRegion)
	}
	if m.EnrollmentPaymentMethod != model.MethodPaystack {
		t.Errorf("Expected payment method paystack, got '%s'", m.EnrollmentPaymentMethod)
	}
	if m.EnrollmentPaidAt != nil {
		t.Error("Expected paid_at to be unset on a new enrollment")
	}
}
