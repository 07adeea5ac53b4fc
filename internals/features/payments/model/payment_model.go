package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSuccess   PaymentStatus = "success"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentCourseID uuid.UUID `gorm:"column:payment_course_id;type:uuid;not null;index" json:"payment_course_id"`

	PaymentCustomerName  string `gorm:"column:payment_customer_name;type:varchar(120);not null" json:"payment_customer_name"`
	PaymentCustomerEmail string `gorm:"column:payment_customer_email;type:varchar(255);not null" json:"payment_customer_email"`
	PaymentCustomerPhone string `gorm:"column:payment_customer_phone;type:varchar(30)" json:"payment_customer_phone,omitempty"`

	PaymentAmount   int    `gorm:"column:payment_amount;not null" json:"payment_amount"`
	PaymentCurrency string `gorm:"column:payment_currency;type:varchar(3);not null;default:'NGN'" json:"payment_currency"`

	// locally generated, globally unique
	PaymentReference string `gorm:"column:payment_reference;type:varchar(100);not null;unique" json:"payment_reference"`
	// reference echoed back by the gateway on initialize
	PaymentPaystackReference string `gorm:"column:payment_paystack_reference;type:varchar(100)" json:"payment_paystack_reference,omitempty"`

	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"payment_status"`

	// settlement channel reported by the gateway (card, bank, ussd, ...)
	PaymentChannel string `gorm:"column:payment_channel;type:varchar(50)" json:"payment_channel,omitempty"`

	PaymentPaidAt *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// PaymentEventModel is an append-only audit row for every authenticated
// webhook delivery, written before the event is processed.
type PaymentEventModel struct {
	PaymentEventID uuid.UUID `gorm:"column:payment_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_event_id"`

	PaymentEventReference string         `gorm:"column:payment_event_reference;type:varchar(100);index" json:"payment_event_reference"`
	PaymentEventType      string         `gorm:"column:payment_event_type;type:varchar(60);not null" json:"payment_event_type"`
	PaymentEventPayload   datatypes.JSON `gorm:"column:payment_event_payload;type:jsonb" json:"payment_event_payload"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PaymentEventModel) TableName() string {
	return "payment_events"
}
