package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile carries the display identity shown alongside lists and suggestions.
// College is a cosmetic theme key resolved by pkg/theme.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:profiles_user_id_key"`
	DisplayName string    `gorm:"column:display_name;type:text;not null"`
	College     *string   `gorm:"column:college;type:text"`
	AvatarURL   *string   `gorm:"column:avatar_url;type:text"`
	Email       string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
