package sharing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dormpack/dormpack-backend/pkg/db/models"
	pkgerrors "github.com/dormpack/dormpack-backend/pkg/errors"
	"github.com/dormpack/dormpack-backend/pkg/security"
)

// accessDeniedMessage is the single message returned for every failed access
// check on the shared path. A caller probing with a bad token cannot tell a
// missing list from an unshared one or a token mismatch.
const accessDeniedMessage = "access denied"

// viewCountTTL bounds how long a list's view counter lives after the last
// visit.
const viewCountTTL = 30 * 24 * time.Hour

// Service exposes shared lists to token holders.
type Service interface {
	ResolveAccess(ctx context.Context, listID uuid.UUID, token string, userID uuid.UUID) (*Access, error)
	GetSharedList(ctx context.Context, listID uuid.UUID, token string, userID uuid.UUID) (*SharedListDTO, error)
	GetSharedCategories(ctx context.Context, listID uuid.UUID, token string) ([]SharedCategoryDTO, error)
	GetSharedItems(ctx context.Context, listID uuid.UUID, token string) ([]SharedCategoryDTO, error)
	ToggleSharedItem(ctx context.Context, listID uuid.UUID, token string, itemID uuid.UUID, req ToggleItemRequest) (*SharedItemDTO, error)
}

type sharedRepository interface {
	FindListByID(ctx context.Context, id uuid.UUID) (*models.PackingList, error)
	FindSharedList(ctx context.Context, listID uuid.UUID, token string) (*models.PackingList, error)
	ListCategoriesShared(ctx context.Context, listID uuid.UUID, token string) ([]models.Category, error)
	ListItemsShared(ctx context.Context, listID uuid.UUID, token string) (map[uuid.UUID][]models.Item, error)
	FindItemShared(ctx context.Context, listID uuid.UUID, token string, itemID uuid.UUID) (*models.Item, error)
	UpdateItemFlags(ctx context.Context, itemID uuid.UUID, updates map[string]any) error
}

type sharedCache interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	CounterKey(name string) string
	InvalidateListCache(ctx context.Context, listID string) error
}

type service struct {
	repo  sharedRepository
	cache sharedCache
}

// ServiceParams configures NewService.
type ServiceParams struct {
	Repo  sharedRepository
	Cache sharedCache
}

// NewService constructs the shared-access service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, errors.New("sharing: repo is required")
	}
	return &service{repo: params.Repo, cache: params.Cache}, nil
}

// ResolveAccess decides what the caller may do with the list. The owner
// bypasses the token check entirely; everyone else needs sharing on and a
// matching token. All failures collapse into the same forbidden error.
func (s *service) ResolveAccess(ctx context.Context, listID uuid.UUID, token string, userID uuid.UUID) (*Access, error) {
	if listID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}

	list, err := s.repo.FindListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load list")
	}

	if userID != uuid.Nil && list.UserID == userID {
		return &Access{ListID: listID, IsOwner: true, CanSuggest: true, CanEdit: true}, nil
	}

	if !list.IsShared || list.ShareToken == nil || token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}
	if !security.TokensEqual(*list.ShareToken, token) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}

	return &Access{
		ListID:     listID,
		CanSuggest: list.AllowSuggestions,
		CanEdit:    list.AllowEditing,
	}, nil
}

// GetSharedList returns the token holder's view of a list and counts the
// visit. Owner views are not counted.
func (s *service) GetSharedList(ctx context.Context, listID uuid.UUID, token string, userID uuid.UUID) (*SharedListDTO, error) {
	access, err := s.ResolveAccess(ctx, listID, token, userID)
	if err != nil {
		return nil, err
	}

	var list *models.PackingList
	if access.IsOwner {
		list, err = s.repo.FindListByID(ctx, listID)
	} else {
		list, err = s.repo.FindSharedList(ctx, listID, token)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shared list")
	}

	var views int64
	if s.cache != nil && !access.IsOwner {
		key := s.cache.CounterKey("list_views:" + listID.String())
		if count, err := s.cache.IncrWithTTL(ctx, key, viewCountTTL); err == nil {
			views = count
		}
	}

	return sharedListFromModel(list, views), nil
}

// GetSharedCategories returns the list's categories without their items.
func (s *service) GetSharedCategories(ctx context.Context, listID uuid.UUID, token string) ([]SharedCategoryDTO, error) {
	if _, err := s.repo.FindSharedList(ctx, listID, token); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shared list")
	}
	categories, err := s.repo.ListCategoriesShared(ctx, listID, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shared categories")
	}

	out := make([]SharedCategoryDTO, 0, len(categories))
	for _, category := range categories {
		out = append(out, SharedCategoryDTO{
			ID:        category.ID,
			Name:      category.Name,
			SortOrder: category.SortOrder,
			Items:     []SharedItemDTO{},
		})
	}
	return out, nil
}

// GetSharedItems returns the categories with their items populated.
func (s *service) GetSharedItems(ctx context.Context, listID uuid.UUID, token string) ([]SharedCategoryDTO, error) {
	categories, err := s.GetSharedCategories(ctx, listID, token)
	if err != nil {
		return nil, err
	}
	itemsByCategory, err := s.repo.ListItemsShared(ctx, listID, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shared items")
	}

	for i := range categories {
		for _, item := range itemsByCategory[categories[i].ID] {
			item := item
			categories[i].Items = append(categories[i].Items, sharedItemFromModel(&item))
		}
	}
	return categories, nil
}

// ToggleSharedItem flips the purchase and packing flags on an item through a
// share link. Requires the list to allow editing; the token is re-validated
// against the store on every call.
func (s *service) ToggleSharedItem(ctx context.Context, listID uuid.UUID, token string, itemID uuid.UUID, req ToggleItemRequest) (*SharedItemDTO, error) {
	list, err := s.repo.FindSharedList(ctx, listID, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shared list")
	}
	if !list.AllowEditing {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}

	item, err := s.repo.FindItemShared(ctx, listID, token, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shared item")
	}

	updates := map[string]any{}
	if req.IsBought != nil {
		updates["is_bought"] = *req.IsBought
		item.IsBought = *req.IsBought
	}
	if req.IsPacked != nil {
		updates["is_packed"] = *req.IsPacked
		item.IsPacked = *req.IsPacked
	}
	if len(updates) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no flags to update")
	}
	updates["updated_at"] = time.Now().UTC()

	if err := s.repo.UpdateItemFlags(ctx, itemID, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update item flags")
	}
	if s.cache != nil {
		_ = s.cache.InvalidateListCache(ctx, listID.String())
	}

	dto := sharedItemFromModel(item)
	return &dto, nil
}
