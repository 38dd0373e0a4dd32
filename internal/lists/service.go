package lists

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/dormpack/dormpack-backend/internal/sharing"
	"github.com/dormpack/dormpack-backend/internal/templates"
	"github.com/dormpack/dormpack-backend/pkg/config"
	"github.com/dormpack/dormpack-backend/pkg/db/models"
	"github.com/dormpack/dormpack-backend/pkg/enums"
	pkgerrors "github.com/dormpack/dormpack-backend/pkg/errors"
	"github.com/dormpack/dormpack-backend/pkg/security"
)

// accessDeniedMessage is deliberately identical for missing lists and lists
// owned by someone else so callers cannot probe for existence.
const accessDeniedMessage = "access denied"

// Service exposes business rules for packing list management.
type Service interface {
	CreateList(ctx context.Context, userID uuid.UUID, req CreateListRequest) (*ListDTO, error)
	GetLists(ctx context.Context, userID uuid.UUID) ([]ListDTO, error)
	GetList(ctx context.Context, userID, listID uuid.UUID) (*ListDetailDTO, error)
	UpdateList(ctx context.Context, userID, listID uuid.UUID, req UpdateListRequest) (*ListDTO, error)
	DeleteList(ctx context.Context, userID, listID uuid.UUID) error

	UpdateSharing(ctx context.Context, userID, listID uuid.UUID, req UpdateSharingRequest) (*ShareInfoDTO, error)
	RotateShareToken(ctx context.Context, userID, listID uuid.UUID) (*ShareInfoDTO, error)
	CopyList(ctx context.Context, userID, sourceListID uuid.UUID, token, name string) (*CopyListResult, error)
	InstallTemplate(ctx context.Context, userID, listID uuid.UUID, templateName string) (*CategoryDTO, error)

	CreateCategory(ctx context.Context, userID, listID uuid.UUID, req CreateCategoryRequest) (*CategoryDTO, error)
	RenameCategory(ctx context.Context, userID, categoryID uuid.UUID, req UpdateCategoryRequest) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error

	CreateItem(ctx context.Context, userID, categoryID uuid.UUID, req CreateItemRequest) (*ItemDTO, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req UpdateItemRequest) (*ItemDTO, error)
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error
}

type listRepository interface {
	CreateList(ctx context.Context, list *models.PackingList) error
	FindListByID(ctx context.Context, id uuid.UUID) (*models.PackingList, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PackingList, error)
	CountsForLists(ctx context.Context, listIDs []uuid.UUID) (map[uuid.UUID][2]int, error)
	UpdateList(ctx context.Context, id uuid.UUID, updates map[string]any) error
	DeleteList(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, category *models.Category) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context, listID uuid.UUID) ([]models.Category, error)
	CountCategories(ctx context.Context, listID uuid.UUID) (int64, error)
	RenameCategory(ctx context.Context, id uuid.UUID, name string) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateItem(ctx context.Context, item *models.Item) error
	FindItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	ListItems(ctx context.Context, categoryID uuid.UUID) ([]models.Item, error)
	ListItemsForList(ctx context.Context, listID uuid.UUID) (map[uuid.UUID][]models.Item, error)
	CountItems(ctx context.Context, categoryID uuid.UUID) (int64, error)
	UpdateItem(ctx context.Context, id uuid.UUID, updates map[string]any) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type cacheInvalidator interface {
	InvalidateListCache(ctx context.Context, listID string) error
}

type accessResolver interface {
	ResolveAccess(ctx context.Context, listID uuid.UUID, token string, userID uuid.UUID) (*sharing.Access, error)
}

type service struct {
	repo     listRepository
	cache    cacheInvalidator
	resolver accessResolver
	shareCfg config.ShareConfig
}

// ServiceParams groups dependencies for the lists service.
type ServiceParams struct {
	ListRepo    listRepository
	Cache       cacheInvalidator
	Resolver    accessResolver
	ShareConfig config.ShareConfig
}

// NewService builds a lists service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ListRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "list repo is required")
	}
	if params.Resolver == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "access resolver is required")
	}
	if params.ShareConfig.TokenLength <= 0 {
		params.ShareConfig.TokenLength = 8
	}
	return &service{
		repo:     params.ListRepo,
		cache:    params.Cache,
		resolver: params.Resolver,
		shareCfg: params.ShareConfig,
	}, nil
}

func (s *service) CreateList(ctx context.Context, userID uuid.UUID, req CreateListRequest) (*ListDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "list name is required")
	}

	list := &models.PackingList{
		UserID:           userID,
		Name:             name,
		Description:      req.Description,
		AllowSuggestions: true,
	}
	if err := s.repo.CreateList(ctx, list); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create list")
	}
	return listFromModel(list, 0, 0), nil
}

func (s *service) GetLists(ctx context.Context, userID uuid.UUID) ([]ListDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list packing lists")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	counts, err := s.repo.CountsForLists(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count list contents")
	}

	out := make([]ListDTO, 0, len(rows))
	for i := range rows {
		c := counts[rows[i].ID]
		out = append(out, *listFromModel(&rows[i], c[0], c[1]))
	}
	return out, nil
}

func (s *service) GetList(ctx context.Context, userID, listID uuid.UUID) (*ListDetailDTO, error) {
	list, err := s.ensureListOwner(ctx, userID, listID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, list)
}

func (s *service) UpdateList(ctx context.Context, userID, listID uuid.UUID, req UpdateListRequest) (*ListDTO, error) {
	if _, err := s.ensureListOwner(ctx, userID, listID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "list name cannot be blank")
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = req.Description
	}

	if err := s.repo.UpdateList(ctx, listID, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update list")
	}
	s.invalidate(ctx, listID)

	list, err := s.repo.FindListByID(ctx, listID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload list")
	}
	return listFromModel(list, 0, 0), nil
}

func (s *service) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	if _, err := s.ensureListOwner(ctx, userID, listID); err != nil {
		return err
	}
	if err := s.repo.DeleteList(ctx, listID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete list")
	}
	s.invalidate(ctx, listID)
	return nil
}

// UpdateSharing flips the sharing state and collaboration flags. Turning
// sharing on mints a token when the list has none; turning it off clears the
// token so old links stop resolving.
func (s *service) UpdateSharing(ctx context.Context, userID, listID uuid.UUID, req UpdateSharingRequest) (*ShareInfoDTO, error) {
	list, err := s.ensureListOwner(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	isShared := list.IsShared
	shareToken := list.ShareToken

	if req.IsShared != nil && *req.IsShared != list.IsShared {
		isShared = *req.IsShared
		if isShared {
			token, err := security.GenerateShareToken(s.shareCfg.TokenLength)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate share token")
			}
			shareToken = &token
		} else {
			shareToken = nil
		}
		updates["is_shared"] = isShared
		updates["share_token"] = shareToken
	}
	if req.AllowSuggestions != nil {
		updates["allow_suggestions"] = *req.AllowSuggestions
		list.AllowSuggestions = *req.AllowSuggestions
	}
	if req.AllowEditing != nil {
		updates["allow_editing"] = *req.AllowEditing
		list.AllowEditing = *req.AllowEditing
	}

	if err := s.repo.UpdateList(ctx, listID, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update sharing")
	}
	s.invalidate(ctx, listID)

	return s.shareInfo(listID, isShared, shareToken, list.AllowSuggestions, list.AllowEditing), nil
}

// RotateShareToken replaces the share token on an already shared list,
// invalidating every previously issued link.
func (s *service) RotateShareToken(ctx context.Context, userID, listID uuid.UUID) (*ShareInfoDTO, error) {
	list, err := s.ensureListOwner(ctx, userID, listID)
	if err != nil {
		return nil, err
	}
	if !list.IsShared {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "list is not shared")
	}

	token, err := security.GenerateShareToken(s.shareCfg.TokenLength)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate share token")
	}
	if err := s.repo.UpdateList(ctx, listID, map[string]any{"share_token": token}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotate share token")
	}
	s.invalidate(ctx, listID)

	return s.shareInfo(listID, true, &token, list.AllowSuggestions, list.AllowEditing), nil
}

// CopyList duplicates a list's structure into the caller's account with
// purchase and packing flags reset. The source is the caller's own list or
// someone else's shared list reached through a valid token; a viewer tier is
// enough. Inserts run sequentially without a wrapping transaction: rows
// created before a failure stay in place and the failure is reported in the
// result instead of being rolled back.
func (s *service) CopyList(ctx context.Context, userID, sourceListID uuid.UUID, token, name string) (*CopyListResult, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if _, err := s.resolver.ResolveAccess(ctx, sourceListID, token, userID); err != nil {
		return nil, err
	}
	source, err := s.repo.FindListByID(ctx, sourceListID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load source list")
	}

	targetName := strings.TrimSpace(name)
	if targetName == "" {
		targetName = source.Name + " (Copy)"
	}

	target := &models.PackingList{
		UserID:           userID,
		Name:             targetName,
		Description:      source.Description,
		AllowSuggestions: source.AllowSuggestions,
	}
	if err := s.repo.CreateList(ctx, target); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create list copy")
	}

	categories, err := s.repo.ListCategories(ctx, sourceListID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load source categories")
	}
	itemsByCategory, err := s.repo.ListItemsForList(ctx, sourceListID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load source items")
	}

	var copyErrs error
	categoriesAdded := 0
	itemsAdded := 0

	for _, src := range categories {
		category := &models.Category{
			ListID:    target.ID,
			Name:      src.Name,
			SortOrder: src.SortOrder,
		}
		if err := s.repo.CreateCategory(ctx, category); err != nil {
			copyErrs = multierr.Append(copyErrs, fmt.Errorf("copy category %q: %w", src.Name, err))
			continue
		}
		categoriesAdded++

		for _, srcItem := range itemsByCategory[src.ID] {
			item := &models.Item{
				CategoryID: category.ID,
				Name:       srcItem.Name,
				Quantity:   srcItem.Quantity,
				Size:       srcItem.Size,
				Price:      srcItem.Price,
				StoreLink:  srcItem.StoreLink,
				Notes:      srcItem.Notes,
				SortOrder:  srcItem.SortOrder,
			}
			if err := s.repo.CreateItem(ctx, item); err != nil {
				copyErrs = multierr.Append(copyErrs, fmt.Errorf("copy item %q: %w", srcItem.Name, err))
			} else {
				itemsAdded++
			}
		}
	}

	result := &CopyListResult{
		List:            listFromModel(target, categoriesAdded, itemsAdded),
		CategoriesAdded: categoriesAdded,
		ItemsAdded:      itemsAdded,
	}
	if copyErrs != nil {
		result.PartialFailure = true
		detail := copyErrs.Error()
		result.FailureDetail = &detail
	}
	return result, nil
}

// InstallTemplate adds a starter category with its prefilled items.
func (s *service) InstallTemplate(ctx context.Context, userID, listID uuid.UUID, templateName string) (*CategoryDTO, error) {
	if _, err := s.ensureListOwner(ctx, userID, listID); err != nil {
		return nil, err
	}

	tpl, ok := templates.Find(templateName)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "template not found")
	}

	count, err := s.repo.CountCategories(ctx, listID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count categories")
	}

	category := &models.Category{
		ListID:    listID,
		Name:      tpl.Name,
		SortOrder: int(count),
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create template category")
	}

	items := make([]ItemDTO, 0, len(tpl.Items))
	for i, tplItem := range tpl.Items {
		size := tplItem.Size
		item := &models.Item{
			CategoryID: category.ID,
			Name:       tplItem.Name,
			Quantity:   1,
			Size:       &size,
			SortOrder:  i,
		}
		if err := s.repo.CreateItem(ctx, item); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create template item")
		}
		items = append(items, itemFromModel(item))
	}
	s.invalidate(ctx, listID)

	dto := categoryFromModel(category, items)
	return &dto, nil
}

func (s *service) CreateCategory(ctx context.Context, userID, listID uuid.UUID, req CreateCategoryRequest) (*CategoryDTO, error) {
	if _, err := s.ensureListOwner(ctx, userID, listID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}

	// sort_order is the category count at creation time; it is never
	// renumbered, so deletions leave gaps.
	count, err := s.repo.CountCategories(ctx, listID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count categories")
	}

	category := &models.Category{
		ListID:    listID,
		Name:      name,
		SortOrder: int(count),
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create category")
	}
	s.invalidate(ctx, listID)

	dto := categoryFromModel(category, nil)
	return &dto, nil
}

func (s *service) RenameCategory(ctx context.Context, userID, categoryID uuid.UUID, req UpdateCategoryRequest) (*CategoryDTO, error) {
	category, err := s.ensureCategoryOwner(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name is required")
	}

	if err := s.repo.RenameCategory(ctx, categoryID, name); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rename category")
	}
	s.invalidate(ctx, category.ListID)

	category.Name = name
	dto := categoryFromModel(category, nil)
	return &dto, nil
}

func (s *service) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := s.ensureCategoryOwner(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteCategory(ctx, categoryID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete category")
	}
	s.invalidate(ctx, category.ListID)
	return nil
}

func (s *service) CreateItem(ctx context.Context, userID, categoryID uuid.UUID, req CreateItemRequest) (*ItemDTO, error) {
	category, err := s.ensureCategoryOwner(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	}
	if err := validateItemFields(req.Size, req.Price, req.StoreLink); err != nil {
		return nil, err
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	size := req.Size
	if size == nil {
		inferred := templates.InferItemSize(name)
		size = &inferred
	}

	count, err := s.repo.CountItems(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count items")
	}

	item := &models.Item{
		CategoryID: categoryID,
		Name:       name,
		Quantity:   quantity,
		Size:       size,
		Price:      req.Price,
		StoreLink:  req.StoreLink,
		Notes:      req.Notes,
		SortOrder:  int(count),
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create item")
	}
	s.invalidate(ctx, category.ListID)

	dto := itemFromModel(item)
	return &dto, nil
}

// UpdateItem applies the supplied fields. Concurrent updates are
// last-write-wins: no versioning, the final UPDATE simply overwrites.
func (s *service) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req UpdateItemRequest) (*ItemDTO, error) {
	_, listID, err := s.ensureItemOwner(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := validateItemFields(req.Size, req.Price, req.StoreLink); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name cannot be blank")
		}
		updates["name"] = name
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Size != nil {
		updates["size"] = *req.Size
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.StoreLink != nil {
		updates["store_link"] = req.StoreLink
	}
	if req.Notes != nil {
		updates["notes"] = req.Notes
	}
	if req.IsBought != nil {
		updates["is_bought"] = *req.IsBought
	}
	if req.IsPacked != nil {
		updates["is_packed"] = *req.IsPacked
	}

	if err := s.repo.UpdateItem(ctx, itemID, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update item")
	}
	s.invalidate(ctx, listID)

	updated, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload item")
	}
	dto := itemFromModel(updated)
	return &dto, nil
}

func (s *service) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	_, listID, err := s.ensureItemOwner(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete item")
	}
	s.invalidate(ctx, listID)
	return nil
}

func (s *service) buildDetail(ctx context.Context, list *models.PackingList) (*ListDetailDTO, error) {
	categories, err := s.repo.ListCategories(ctx, list.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load categories")
	}
	itemsByCategory, err := s.repo.ListItemsForList(ctx, list.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load items")
	}

	itemCount := 0
	categoryDTOs := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		items := itemsByCategory[categories[i].ID]
		itemDTOs := make([]ItemDTO, 0, len(items))
		for j := range items {
			itemDTOs = append(itemDTOs, itemFromModel(&items[j]))
		}
		itemCount += len(itemDTOs)
		categoryDTOs = append(categoryDTOs, categoryFromModel(&categories[i], itemDTOs))
	}

	return &ListDetailDTO{
		ListDTO:    *listFromModel(list, len(categoryDTOs), itemCount),
		Categories: categoryDTOs,
	}, nil
}

func (s *service) ensureListOwner(ctx context.Context, userID, listID uuid.UUID) (*models.PackingList, error) {
	if userID == uuid.Nil || listID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}
	list, err := s.repo.FindListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load list")
	}
	if list.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}
	return list, nil
}

func (s *service) ensureCategoryOwner(ctx context.Context, userID, categoryID uuid.UUID) (*models.Category, error) {
	if categoryID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}
	category, err := s.repo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}
	if _, err := s.ensureListOwner(ctx, userID, category.ListID); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) ensureItemOwner(ctx context.Context, userID, itemID uuid.UUID) (*models.Item, uuid.UUID, error) {
	if itemID == uuid.Nil {
		return nil, uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
		}
		return nil, uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}
	category, err := s.ensureCategoryOwner(ctx, userID, item.CategoryID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return item, category.ListID, nil
}

func (s *service) shareInfo(listID uuid.UUID, isShared bool, token *string, allowSuggestions, allowEditing bool) *ShareInfoDTO {
	info := &ShareInfoDTO{
		IsShared:         isShared,
		ShareToken:       token,
		AllowSuggestions: allowSuggestions,
		AllowEditing:     allowEditing,
	}
	if isShared && token != nil {
		url := fmt.Sprintf("%s/shared/%s?token=%s", strings.TrimRight(s.shareCfg.BaseURL, "/"), listID, *token)
		info.ShareURL = &url
	}
	return info
}

func (s *service) invalidate(ctx context.Context, listID uuid.UUID) {
	if s.cache == nil {
		return
	}
	// Cache misses repopulate on the next shared read.
	_ = s.cache.InvalidateListCache(ctx, listID.String())
}

func validateItemFields(size *enums.ItemSize, price *decimal.Decimal, storeLink *string) error {
	if size != nil && !size.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid item size")
	}
	if price != nil && price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if storeLink != nil && *storeLink != "" && !security.SafeURL(*storeLink) {
		return pkgerrors.New(pkgerrors.CodeValidation, "store link must be an http or https url")
	}
	return nil
}
