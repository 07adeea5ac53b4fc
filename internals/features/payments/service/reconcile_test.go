package service

import (
	"testing"

	enrollmentModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/enrollments/model"
	paymentModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/payments/model"
)

func TestNextPaymentStatus(t *testing.T) {
	testCases := []struct {
		name           string
		current        paymentModel.PaymentStatus
		gatewaySuccess bool
		expected       paymentModel.PaymentStatus
		changed        bool
	}{
		{"pending settles on success", paymentModel.PaymentPending, true, paymentModel.PaymentSuccess, true},
		{"repeat success is a no-op", paymentModel.PaymentSuccess, true, paymentModel.PaymentSuccess, false},
		{"success survives a late failure", paymentModel.PaymentSuccess, false, paymentModel.PaymentSuccess, false},
		{"pending fails on failure", paymentModel.PaymentPending, false, paymentModel.PaymentFailed, true},
		{"failed recovers on success", paymentModel.PaymentFailed, true, paymentModel.PaymentSuccess, true},
		{"repeat failure is a no-op", paymentModel.PaymentFailed, false, paymentModel.PaymentFailed, false},
		{"cancelled untouched by failure", paymentModel.PaymentCancelled, false, paymentModel.PaymentCancelled, false},
		{"cancelled settles on success", paymentModel.PaymentCancelled, true, paymentModel.PaymentSuccess, true},
	}

	for _, tc := range testCases {
		next, changed := nextPaymentStatus(tc.current, tc.gatewaySuccess)
		if next != tc.expected || changed != tc.changed {
			t.Errorf("%s: expected (%s, %v), got (%s, %v)", tc.name, tc.expected, tc.changed, next, changed)
		}
	}
}

// A second success delivery (verify after webhook, or a replayed webhook) must
// not settle the enrollment again, because settling is the only path that
// increments the course counter.
func TestSettleEnrollment(t *testing.T) {
	testCases := []struct {
		name     string
		current  enrollmentModel.EnrollmentStatus
		expected bool
	}{
		{"pending still settles", enrollmentModel.EnrollmentPending, true},
		{"paid settles only once", enrollmentModel.EnrollmentPaid, false},
		{"failed can recover", enrollmentModel.EnrollmentFailed, true},
	}

	for _, tc := range testCases {
		if got := settleEnrollment(tc.current); got != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}
