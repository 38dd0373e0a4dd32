package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dormpack/dormpack-backend/pkg/enums"
)

// Item is a single entry under a category. IsBought and IsPacked are
// independent flags; either can be toggled without the other.
type Item struct {
	ID         uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID uuid.UUID        `gorm:"column:category_id;type:uuid;not null;index:items_category_id_idx"`
	Name       string           `gorm:"type:text;not null"`
	Quantity   int              `gorm:"not null;default:1"`
	Size       *enums.ItemSize  `gorm:"type:text"`
	Price      *decimal.Decimal `gorm:"type:numeric(8,2)"`
	StoreLink  *string          `gorm:"column:store_link;type:text"`
	Notes      *string          `gorm:"type:text"`
	IsBought   bool             `gorm:"column:is_bought;not null;default:false"`
	IsPacked   bool             `gorm:"column:is_packed;not null;default:false"`
	SortOrder  int              `gorm:"column:sort_order;not null;default:0"`
	CreatedAt  time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
