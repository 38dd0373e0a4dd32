package lists

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dormpack/dormpack-backend/pkg/db/models"
	"github.com/dormpack/dormpack-backend/pkg/enums"
)

// ListDTO is the transport shape for a packing list summary.
type ListDTO struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	Description      *string   `json:"description,omitempty"`
	IsShared         bool      `json:"is_shared"`
	ShareToken       *string   `json:"share_token,omitempty"`
	AllowSuggestions bool      `json:"allow_suggestions"`
	AllowEditing     bool      `json:"allow_editing"`
	CategoryCount    int       `json:"category_count"`
	ItemCount        int       `json:"item_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ListDetailDTO is the full list view with nested categories and items.
type ListDetailDTO struct {
	ListDTO
	Categories []CategoryDTO `json:"categories"`
}

// CategoryDTO carries a category plus its items in sort order.
type CategoryDTO struct {
	ID        uuid.UUID `json:"id"`
	ListID    uuid.UUID `json:"list_id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	Items     []ItemDTO `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemDTO is the transport shape for a single item.
type ItemDTO struct {
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
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// CreateListRequest is the payload for creating a packing list.
type CreateListRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// UpdateListRequest carries mutable list fields; nil means unchanged.
type UpdateListRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// UpdateSharingRequest toggles sharing and the collaboration flags.
type UpdateSharingRequest struct {
	IsShared         *bool `json:"is_shared,omitempty"`
	AllowSuggestions *bool `json:"allow_suggestions,omitempty"`
	AllowEditing     *bool `json:"allow_editing,omitempty"`
}

// ShareInfoDTO is returned from sharing mutations.
type ShareInfoDTO struct {
	IsShared         bool    `json:"is_shared"`
	ShareToken       *string `json:"share_token,omitempty"`
	ShareURL         *string `json:"share_url,omitempty"`
	AllowSuggestions bool    `json:"allow_suggestions"`
	AllowEditing     bool    `json:"allow_editing"`
}

// CreateCategoryRequest is the payload for adding a category to a list.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// UpdateCategoryRequest renames a category.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// CreateItemRequest is the payload for adding an item to a category.
type CreateItemRequest struct {
	Name      string           `json:"name" validate:"required,min=1,max=200"`
	Quantity  *int             `json:"quantity,omitempty" validate:"omitempty,min=1,max=999"`
	Size      *enums.ItemSize  `json:"size,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	StoreLink *string          `json:"store_link,omitempty"`
	Notes     *string          `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// UpdateItemRequest carries mutable item fields; nil means unchanged.
type UpdateItemRequest struct {
	Name      *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Quantity  *int             `json:"quantity,omitempty" validate:"omitempty,min=1,max=999"`
	Size      *enums.ItemSize  `json:"size,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	StoreLink *string          `json:"store_link,omitempty"`
	Notes     *string          `json:"notes,omitempty" validate:"omitempty,max=500"`
	IsBought  *bool            `json:"is_bought,omitempty"`
	IsPacked  *bool            `json:"is_packed,omitempty"`
}

// CopyListResult reports what a list copy produced. Copies run as plain
// sequential inserts, so a failure partway through leaves the rows created
// so far in place and is reported rather than rolled back.
type CopyListResult struct {
	List            *ListDTO `json:"list"`
	CategoriesAdded int      `json:"categories_added"`
	ItemsAdded      int      `json:"items_added"`
	PartialFailure  bool     `json:"partial_failure"`
	FailureDetail   *string  `json:"failure_detail,omitempty"`
}

// CopyListRequest optionally names the copy; blank falls back to
// "<source> (Copy)".
type CopyListRequest struct {
	Name string `json:"name,omitempty" validate:"omitempty,max=120"`
}

// InstallTemplateRequest picks a starter template to add to a list.
type InstallTemplateRequest struct {
	TemplateName string `json:"template_name" validate:"required"`
}

func listFromModel(m *models.PackingList, categoryCount, itemCount int) *ListDTO {
	if m == nil {
		return nil
	}
	return &ListDTO{
		ID:               m.ID,
		UserID:           m.UserID,
		Name:             m.Name,
		Description:      m.Description,
		IsShared:         m.IsShared,
		ShareToken:       m.ShareToken,
		AllowSuggestions: m.AllowSuggestions,
		AllowEditing:     m.AllowEditing,
		CategoryCount:    categoryCount,
		ItemCount:        itemCount,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func categoryFromModel(m *models.Category, items []ItemDTO) CategoryDTO {
	if items == nil {
		items = []ItemDTO{}
	}
	return CategoryDTO{
		ID:        m.ID,
		ListID:    m.ListID,
		Name:      m.Name,
		SortOrder: m.SortOrder,
		Items:     items,
		CreatedAt: m.CreatedAt,
	}
}

func itemFromModel(m *models.Item) ItemDTO {
	return ItemDTO{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Quantity:   m.Quantity,
		Size:       m.Size,
		Price:      m.Price,
		StoreLink:  m.StoreLink,
		Notes:      m.Notes,
		IsBought:   m.IsBought,
		IsPacked:   m.IsPacked,
		SortOrder:  m.SortOrder,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
