package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ComingSoonModel struct {
	ComingSoonID uuid.UUID `gorm:"column:coming_soon_id;type:uuid;default:gen_random_uuid();primaryKey" json:"coming_soon_id"`

	ComingSoonTitle     string         `gorm:"column:coming_soon_title;type:varchar(200);not null" json:"coming_soon_title"`
	ComingSoonSubtitles pq.StringArray `gorm:"column:coming_soon_subtitles;type:text[]" json:"coming_soon_subtitles,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ComingSoonModel) TableName() string {
	return "coming_soon"
}
