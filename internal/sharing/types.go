package sharing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dormpack/dormpack-backend/pkg/db/models"
	"github.com/dormpack/dormpack-backend/pkg/enums"
)

// Access describes what a caller may do with a shared list. A resolved
// Access always implies read; the write capabilities come from the list's
// independent sharing flags.
type Access struct {
	ListID     uuid.UUID `json:"list_id"`
	IsOwner    bool      `json:"is_owner"`
	CanSuggest bool      `json:"can_suggest"`
	CanEdit    bool      `json:"can_edit"`
}

// Tier collapses the capability flags into a display label.
func (a Access) Tier() string {
	switch {
	case a.IsOwner:
		return "owner"
	case a.CanEdit:
		return "editor"
	case a.CanSuggest:
		return "suggester"
	default:
		return "viewer"
	}
}

// SharedListDTO is the read-only list view exposed through a share link.
// It deliberately omits the owner's identity and the share token itself.
type SharedListDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      *string   `json:"description,omitempty"`
	AllowSuggestions bool      `json:"allow_suggestions"`
	AllowEditing     bool      `json:"allow_editing"`
	ViewCount        int64     `json:"view_count,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type SharedCategoryDTO struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	SortOrder int             `json:"sort_order"`
	Items     []SharedItemDTO `json:"items"`
}

type SharedItemDTO struct {
	ID         uuid.UUID        `json:"id"`
	CategoryID uuid.UUID        `json:"category_id"`
	Name       string           `json:"name"`
	Quantity   int              `json:"quantity"`
	Size       *enums.ItemSize  `json:"size,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	StoreLink  *string          `json:"store_link,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
	IsBought   bool             `json:"is_bought"`
	IsPacked   bool             `json:"is_packed"`
	SortOrder  int              `json:"sort_order"`
}

// ToggleItemRequest carries the editor-tier flag updates allowed through a
// share link. Nothing else on an item can be changed this way.
type ToggleItemRequest struct {
	IsBought *bool `json:"is_bought"`
	IsPacked *bool `json:"is_packed"`
}

func sharedListFromModel(list *models.PackingList, views int64) *SharedListDTO {
	return &SharedListDTO{
		ID:               list.ID,
		Name:             list.Name,
		Description:      list.Description,
		AllowSuggestions: list.AllowSuggestions,
		AllowEditing:     list.AllowEditing,
		ViewCount:        views,
		CreatedAt:        list.CreatedAt,
	}
}

func sharedItemFromModel(item *models.Item) SharedItemDTO {
	return SharedItemDTO{
		ID:         item.ID,
		CategoryID: item.CategoryID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		Size:       item.Size,
		Price:      item.Price,
		StoreLink:  item.StoreLink,
		Notes:      item.Notes,
		IsBought:   item.IsBought,
		IsPacked:   item.IsPacked,
		SortOrder:  item.SortOrder,
	}
}
