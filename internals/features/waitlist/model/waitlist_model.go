package model

import (
	"time"

	"github.com/google/uuid"
)

type WaitlistModel struct {
	WaitlistID uuid.UUID `gorm:"column:waitlist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"waitlist_id"`

	WaitlistName  string `gorm:"column:waitlist_name;type:varchar(100);not null" json:"waitlist_name"`
	WaitlistEmail string `gorm:"column:waitlist_email;type:varchar(255);not null" json:"waitlist_email"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WaitlistModel) TableName() string {
	return "waitlist"
}
