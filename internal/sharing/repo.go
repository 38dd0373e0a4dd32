package sharing

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dormpack/dormpack-backend/pkg/db/models"
)

// Repository reads list data through the share-token gate. Every query after
// the initial resolve joins on both list_id and share_token so a token that
// was rotated mid-session stops working immediately.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a sharing repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindListByID loads a list without any token check. Used only for the
// owner short-circuit in access resolution.
func (r *Repository) FindListByID(ctx context.Context, id uuid.UUID) (*models.PackingList, error) {
	var list models.PackingList
	if err := r.db.WithContext(ctx).First(&list, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// FindSharedList loads a list only when sharing is on and the token matches.
func (r *Repository) FindSharedList(ctx context.Context, listID uuid.UUID, token string) (*models.PackingList, error) {
	var list models.PackingList
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_shared = ? AND share_token = ?", listID, true, token).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// ListCategoriesShared returns the categories of a shared list, token-gated
// in the same statement.
func (r *Repository) ListCategoriesShared(ctx context.Context, listID uuid.UUID, token string) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).
		Table("categories c").
		Select("c.*").
		Joins("JOIN packing_lists l ON l.id = c.list_id").
		Where("l.id = ? AND l.is_shared = ? AND l.share_token = ?", listID, true, token).
		Order("c.sort_order ASC, c.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

// ListItemsShared returns the items of a shared list grouped by category,
// token-gated in the same statement.
func (r *Repository) ListItemsShared(ctx context.Context, listID uuid.UUID, token string) (map[uuid.UUID][]models.Item, error) {
	var rows []models.Item
	err := r.db.WithContext(ctx).
		Table("items i").
		Select("i.*").
		Joins("JOIN categories c ON c.id = i.category_id").
		Joins("JOIN packing_lists l ON l.id = c.list_id").
		Where("l.id = ? AND l.is_shared = ? AND l.share_token = ?", listID, true, token).
		Order("i.sort_order ASC, i.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID][]models.Item)
	for _, item := range rows {
		out[item.CategoryID] = append(out[item.CategoryID], item)
	}
	return out, nil
}

// FindItemShared loads a single item belonging to the shared list.
func (r *Repository) FindItemShared(ctx context.Context, listID uuid.UUID, token string, itemID uuid.UUID) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).
		Table("items i").
		Select("i.*").
		Joins("JOIN categories c ON c.id = i.category_id").
		Joins("JOIN packing_lists l ON l.id = c.list_id").
		Where("i.id = ? AND l.id = ? AND l.is_shared = ? AND l.share_token = ?", itemID, listID, true, token).
		Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

// UpdateItemFlags applies flag updates to an item.
func (r *Repository) UpdateItemFlags(ctx context.Context, itemID uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", itemID).
		Updates(updates).Error
}
