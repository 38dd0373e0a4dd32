package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups items inside a list. SortOrder is assigned as the current
// category count at creation time and never renumbered, so gaps and
// duplicates are expected after deletions.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ListID    uuid.UUID `gorm:"column:list_id;type:uuid;not null;index:categories_list_id_idx"`
	Name      string    `gorm:"type:text;not null"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
