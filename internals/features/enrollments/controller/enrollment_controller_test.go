package controller

import (
	"testing"

	enrollmentModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/enrollments/model"
)

func TestSubmissionMessage(t *testing.T) {
	testCases := []struct {
		name     string
		region   enrollmentModel.Region
		expected string
	}{
		{"africa goes to checkout", enrollmentModel.RegionAfrica, "Application submitted. Please proceed to payment."},
		{"europe waits for review", enrollmentModel.RegionEurope, "Application and receipt submitted successfully. Admin will review."},
	}

	for _, tc := range testCases {
		if got := submissionMessage(tc.region); got != tc.expected {
			t.Errorf("%s: expected '%s', got '%s'", tc.name, tc.expected, got)
		}
	}
}
