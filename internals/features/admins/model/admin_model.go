package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	AdminID uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`

	AdminName  string `gorm:"column:admin_name;type:varchar(100);not null" json:"admin_name"`
	AdminEmail string `gorm:"column:admin_email;type:varchar(255);not null;unique" json:"admin_email"`

	// bcrypt hash, never serialized
	AdminPassword string `gorm:"column:admin_password;type:varchar(100);not null" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}
