package models

import (
	"time"

	"github.com/google/uuid"
)

// PackingList is the root aggregate owned by a single user.
// ShareToken is non-null exactly when IsShared is true; the pairing is also
// enforced by a CHECK constraint in the schema.
type PackingList struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:packing_lists_user_id_idx"`
	Name             string    `gorm:"type:text;not null"`
	Description      *string   `gorm:"type:text"`
	IsShared         bool      `gorm:"column:is_shared;not null;default:false"`
	ShareToken       *string   `gorm:"column:share_token;type:text;uniqueIndex:packing_lists_share_token_key"`
	AllowSuggestions bool      `gorm:"column:allow_suggestions;not null;default:false"`
	AllowEditing     bool      `gorm:"column:allow_editing;not null;default:false"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
