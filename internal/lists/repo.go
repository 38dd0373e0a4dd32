package lists

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dormpack/dormpack-backend/pkg/db/models"
)

// Repository encapsulates packing list, category, and item persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a lists repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateList inserts a new packing list.
func (r *Repository) CreateList(ctx context.Context, list *models.PackingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

// FindListByID loads a list by its UUID.
func (r *Repository) FindListByID(ctx context.Context, id uuid.UUID) (*models.PackingList, error) {
	var list models.PackingList
	if err := r.db.WithContext(ctx).First(&list, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

type listCountsRecord struct {
	ListID        uuid.UUID `gorm:"column:list_id"`
	CategoryCount int       `gorm:"column:category_count"`
	ItemCount     int       `gorm:"column:item_count"`
}

// ListByUser returns the user's lists newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PackingList, error) {
	var rows []models.PackingList
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// CountsForLists returns category and item counts keyed by list ID.
func (r *Repository) CountsForLists(ctx context.Context, listIDs []uuid.UUID) (map[uuid.UUID][2]int, error) {
	out := make(map[uuid.UUID][2]int, len(listIDs))
	if len(listIDs) == 0 {
		return out, nil
	}

	var records []listCountsRecord
	err := r.db.WithContext(ctx).
		Table("categories c").
		Select("c.list_id AS list_id, COUNT(DISTINCT c.id) AS category_count, COUNT(i.id) AS item_count").
		Joins("LEFT JOIN items i ON i.category_id = c.id").
		Where("c.list_id IN ?", listIDs).
		Group("c.list_id").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		out[rec.ListID] = [2]int{rec.CategoryCount, rec.ItemCount}
	}
	return out, nil
}

// UpdateList applies the provided column updates to a list.
func (r *Repository) UpdateList(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&models.PackingList{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteList removes the list; categories and items cascade in the schema.
func (r *Repository) DeleteList(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.PackingList{}, "id = ?", id).Error
}

// CreateCategory inserts a category row.
func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// FindCategoryByID loads a category by its UUID.
func (r *Repository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories returns the categories for a list ordered by sort_order.
func (r *Repository) ListCategories(ctx context.Context, listID uuid.UUID) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// CountCategories returns how many categories a list has.
func (r *Repository) CountCategories(ctx context.Context, listID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("list_id = ?", listID).
		Count(&count).Error
	return count, err
}

// RenameCategory updates the category name.
func (r *Repository) RenameCategory(ctx context.Context, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		UpdateColumn("name", name).Error
}

// DeleteCategory removes a category; its items cascade in the schema.
func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}

// FindCategoryByListAndName performs an exact name match within a list.
func (r *Repository) FindCategoryByListAndName(ctx context.Context, listID uuid.UUID, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).
		Where("list_id = ? AND name = ?", listID, name).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateItem inserts an item row.
func (r *Repository) CreateItem(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindItemByID loads an item by its UUID.
func (r *Repository) FindItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns the items for a category ordered by sort_order.
func (r *Repository) ListItems(ctx context.Context, categoryID uuid.UUID) ([]models.Item, error) {
	var rows []models.Item
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// ListItemsForList returns every item under a list keyed by category.
func (r *Repository) ListItemsForList(ctx context.Context, listID uuid.UUID) (map[uuid.UUID][]models.Item, error) {
	var rows []models.Item
	err := r.db.WithContext(ctx).
		Joins("JOIN categories c ON c.id = items.category_id").
		Where("c.list_id = ?", listID).
		Order("items.sort_order ASC").
		Order("items.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	grouped := make(map[uuid.UUID][]models.Item)
	for _, item := range rows {
		grouped[item.CategoryID] = append(grouped[item.CategoryID], item)
	}
	return grouped, nil
}

// CountItems returns how many items a category has.
func (r *Repository) CountItems(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

// UpdateItem applies the provided column updates to an item.
func (r *Repository) UpdateItem(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteItem removes an item row.
func (r *Repository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Item{}, "id = ?", id).Error
}
