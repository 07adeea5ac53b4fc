package service

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/courses/model"
	enrollmentModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/enrollments/model"
	paymentModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/payments/model"
)

var ErrPaymentNotFound = errors.New("payment not found")

// WebhookEvent is the gateway's event envelope. Only the fields the
// reconciliation flow reads are mapped.
type WebhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Channel   string `json:"channel"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

func ParseWebhookEvent(body []byte) (WebhookEvent, error) {
	var ev WebhookEvent
	err := json.Unmarshal(body, &ev)
	return ev, err
}

// nextPaymentStatus decides the local transition for one gateway outcome.
// Success is terminal: a repeat success delivery changes nothing. A failure
// only moves a pending payment; settled or cancelled rows are left alone.
func nextPaymentStatus(current paymentModel.PaymentStatus, gatewaySuccess bool) (paymentModel.PaymentStatus, bool) {
	if current == paymentModel.PaymentSuccess {
		return current, false
	}
	if gatewaySuccess {
		return paymentModel.PaymentSuccess, true
	}
	if current == paymentModel.PaymentPending {
		return paymentModel.PaymentFailed, true
	}
	return current, false
}

// settleEnrollment reports whether an enrollment still has to move to paid.
// That moment is also the only one where the course counter increments.
func settleEnrollment(current enrollmentModel.EnrollmentStatus) bool {
	return current != enrollmentModel.EnrollmentPaid
}

// MarkPaymentSuccess transitions a payment (and any enrollment linked by the
// same reference) to its terminal success state. Idempotent: an
// already-success payment is left untouched and the course counter never
// moves twice for one reference. The whole sequence runs in one transaction
// and both rows are read under FOR UPDATE, so concurrent verify and webhook
// deliveries serialize instead of double-counting.
func MarkPaymentSuccess(db *gorm.DB, reference, channel string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var payment paymentModel.PaymentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payment_reference = ?", reference).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}

		now := time.Now()

		if next, changed := nextPaymentStatus(payment.PaymentStatus, true); changed {
			payment.PaymentStatus = next
			payment.PaymentPaidAt = &now
			if channel != "" {
				payment.PaymentChannel = channel
			}
			if err := tx.Save(&payment).Error; err != nil {
				return err
			}
		}

		var enrollment enrollmentModel.EnrollmentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("enrollment_paystack_reference = ?", reference).First(&enrollment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// standalone payment without an application; nothing more to do
			return nil
		}
		if err != nil {
			return err
		}

		if settleEnrollment(enrollment.EnrollmentStatus) {
			enrollment.EnrollmentStatus = enrollmentModel.EnrollmentPaid
			enrollment.EnrollmentPaidAt = &now
			if err := tx.Save(&enrollment).Error; err != nil {
				return err
			}
			if err := courseModel.IncrementEnrollmentCount(tx, enrollment.EnrollmentCourseID); err != nil {
				return err
			}
		}
		return nil
	})
}

// MarkPaymentFailed moves a pending payment to failed. Terminal states are
// never overwritten; a reference without a payment row is a no-op.
func MarkPaymentFailed(db *gorm.DB, reference string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var payment paymentModel.PaymentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payment_reference = ?", reference).First(&payment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		next, changed := nextPaymentStatus(payment.PaymentStatus, false)
		if !changed {
			return nil
		}
		payment.PaymentStatus = next
		return tx.Save(&payment).Error
	})
}
