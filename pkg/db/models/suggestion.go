package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/dormpack/dormpack-backend/pkg/enums"
)

// Suggestion is a proposed item submitted against a shared list. Status moves
// from pending to accepted or rejected exactly once; review writes are guarded
// with a status = 'pending' predicate so concurrent reviewers cannot both win.
type Suggestion struct {
	ID           uuid.UUID              `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ListID       uuid.UUID              `gorm:"column:list_id;type:uuid;not null;index:list_suggestions_list_id_idx"`
	ItemName     string                 `gorm:"column:item_name;type:text;not null"`
	CategoryName *string                `gorm:"column:category_name;type:text"`
	Notes        *string                `gorm:"type:text"`
	SuggestedBy  uuid.UUID              `gorm:"column:suggested_by;type:uuid;not null"`
	Status       enums.SuggestionStatus `gorm:"type:text;not null;default:pending"`
	CreatedAt    time.Time              `gorm:"column:created_at;autoCreateTime"`
}

func (Suggestion) TableName() string { return "list_suggestions" }
