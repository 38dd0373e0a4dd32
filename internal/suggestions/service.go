package suggestions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dormpack/dormpack-backend/internal/sharing"
	"github.com/dormpack/dormpack-backend/pkg/db/models"
	"github.com/dormpack/dormpack-backend/pkg/enums"
	pkgerrors "github.com/dormpack/dormpack-backend/pkg/errors"
	"github.com/dormpack/dormpack-backend/pkg/pagination"
)

const accessDeniedMessage = "access denied"

// Service runs the suggestion workflow on shared lists.
type Service interface {
	Submit(ctx context.Context, listID uuid.UUID, token string, authorID uuid.UUID, req SubmitRequest) (*SuggestionDTO, error)
	ListPending(ctx context.Context, ownerID, listID uuid.UUID, params pagination.Params) (*PendingPage, error)
	Accept(ctx context.Context, ownerID, suggestionID uuid.UUID) (*ReviewResult, error)
	Reject(ctx context.Context, ownerID, suggestionID uuid.UUID) (*SuggestionDTO, error)
}

type suggestionRepository interface {
	Create(ctx context.Context, suggestion *models.Suggestion) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Suggestion, error)
	ListPending(ctx context.Context, listID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.Suggestion, error)
	TransitionFromPending(ctx context.Context, id uuid.UUID, status enums.SuggestionStatus) (bool, error)
}

type listStore interface {
	FindListByID(ctx context.Context, id uuid.UUID) (*models.PackingList, error)
	FindCategoryByListAndName(ctx context.Context, listID uuid.UUID, name string) (*models.Category, error)
	CountItems(ctx context.Context, categoryID uuid.UUID) (int64, error)
	CreateItem(ctx context.Context, item *models.Item) error
}

type accessResolver interface {
	ResolveAccess(ctx context.Context, listID uuid.UUID, token string, userID uuid.UUID) (*sharing.Access, error)
}

type service struct {
	repo     suggestionRepository
	lists    listStore
	resolver accessResolver
}

// ServiceParams configures NewService.
type ServiceParams struct {
	Repo     suggestionRepository
	ListRepo listStore
	Resolver accessResolver
}

// NewService constructs the suggestion service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, errors.New("suggestions: repo is required")
	}
	if params.ListRepo == nil {
		return nil, errors.New("suggestions: list repo is required")
	}
	if params.Resolver == nil {
		return nil, errors.New("suggestions: access resolver is required")
	}
	return &service{repo: params.Repo, lists: params.ListRepo, resolver: params.Resolver}, nil
}

// Submit records a pending suggestion against a shared list. The caller must
// be authenticated; the token gate and the list's allow_suggestions flag are
// both enforced through access resolution.
func (s *service) Submit(ctx context.Context, listID uuid.UUID, token string, authorID uuid.UUID, req SubmitRequest) (*SuggestionDTO, error) {
	if authorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}

	access, err := s.resolver.ResolveAccess(ctx, listID, token, authorID)
	if err != nil {
		return nil, err
	}
	if !access.CanSuggest {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}

	itemName := strings.TrimSpace(req.ItemName)
	if itemName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	}
	var categoryName *string
	if req.CategoryName != nil {
		trimmed := strings.TrimSpace(*req.CategoryName)
		if trimmed != "" {
			categoryName = &trimmed
		}
	}

	suggestion := &models.Suggestion{
		ListID:       listID,
		ItemName:     itemName,
		CategoryName: categoryName,
		Notes:        req.Notes,
		SuggestedBy:  authorID,
		Status:       enums.SuggestionStatusPending,
	}
	if err := s.repo.Create(ctx, suggestion); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create suggestion")
	}

	dto := fromModel(suggestion)
	return &dto, nil
}

// ListPending returns a page of a list's open suggestions, owner only.
func (s *service) ListPending(ctx context.Context, ownerID, listID uuid.UUID, params pagination.Params) (*PendingPage, error) {
	if _, err := s.ensureOwner(ctx, ownerID, listID); err != nil {
		return nil, err
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)

	rows, err := s.repo.ListPending(ctx, listID, cursor, limit+1)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list suggestions")
	}

	page := &PendingPage{Suggestions: make([]SuggestionDTO, 0, len(rows))}
	if len(rows) > limit {
		last := rows[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		rows = rows[:limit]
	}
	for i := range rows {
		page.Suggestions = append(page.Suggestions, fromModel(&rows[i]))
	}
	return page, nil
}

// Accept moves a pending suggestion to accepted and, when the suggested
// category name exactly matches one of the list's categories, materializes
// the item there. With no match the suggestion is still accepted and no item
// is created.
func (s *service) Accept(ctx context.Context, ownerID, suggestionID uuid.UUID) (*ReviewResult, error) {
	suggestion, err := s.loadForReview(ctx, ownerID, suggestionID)
	if err != nil {
		return nil, err
	}

	moved, err := s.repo.TransitionFromPending(ctx, suggestionID, enums.SuggestionStatusAccepted)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "accept suggestion")
	}
	if !moved {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "suggestion already reviewed")
	}
	suggestion.Status = enums.SuggestionStatusAccepted

	result := &ReviewResult{Suggestion: fromModel(suggestion)}
	if suggestion.CategoryName == nil {
		return result, nil
	}

	// The transition is committed, so failures from here on are reported
	// on the result. Returning an error would hide an accept the caller
	// can never retry.
	category, err := s.lists.FindCategoryByListAndName(ctx, suggestion.ListID, *suggestion.CategoryName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, nil
		}
		return reviewFailure(result, fmt.Errorf("resolve category: %w", err)), nil
	}

	count, err := s.lists.CountItems(ctx, category.ID)
	if err != nil {
		return reviewFailure(result, fmt.Errorf("count items: %w", err)), nil
	}
	item := &models.Item{
		CategoryID: category.ID,
		Name:       suggestion.ItemName,
		Quantity:   1,
		Notes:      suggestion.Notes,
		SortOrder:  int(count),
	}
	if err := s.lists.CreateItem(ctx, item); err != nil {
		return reviewFailure(result, fmt.Errorf("create suggested item: %w", err)), nil
	}
	result.ItemCreated = true
	result.ItemID = &item.ID
	return result, nil
}

func reviewFailure(result *ReviewResult, err error) *ReviewResult {
	detail := err.Error()
	result.FailureDetail = &detail
	return result
}

// Reject moves a pending suggestion to rejected. No item is ever created.
func (s *service) Reject(ctx context.Context, ownerID, suggestionID uuid.UUID) (*SuggestionDTO, error) {
	suggestion, err := s.loadForReview(ctx, ownerID, suggestionID)
	if err != nil {
		return nil, err
	}

	moved, err := s.repo.TransitionFromPending(ctx, suggestionID, enums.SuggestionStatusRejected)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reject suggestion")
	}
	if !moved {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "suggestion already reviewed")
	}
	suggestion.Status = enums.SuggestionStatusRejected

	dto := fromModel(suggestion)
	return &dto, nil
}

// loadForReview fetches a suggestion and verifies the caller owns its list.
// Unknown suggestions and foreign ones fail identically.
func (s *service) loadForReview(ctx context.Context, ownerID, suggestionID uuid.UUID) (*models.Suggestion, error) {
	if ownerID == uuid.Nil || suggestionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}
	suggestion, err := s.repo.FindByID(ctx, suggestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load suggestion")
	}
	if _, err := s.ensureOwner(ctx, ownerID, suggestion.ListID); err != nil {
		return nil, err
	}
	return suggestion, nil
}

func (s *service) ensureOwner(ctx context.Context, ownerID, listID uuid.UUID) (*models.PackingList, error) {
	if ownerID == uuid.Nil || listID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}
	list, err := s.lists.FindListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load list")
	}
	if list.UserID != ownerID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}
	return list, nil
}
