package suggestions

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dormpack/dormpack-backend/pkg/db/models"
	"github.com/dormpack/dormpack-backend/pkg/enums"
	"github.com/dormpack/dormpack-backend/pkg/pagination"
)

// Repository persists suggestions.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a suggestions repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new pending suggestion.
func (r *Repository) Create(ctx context.Context, suggestion *models.Suggestion) error {
	return r.db.WithContext(ctx).Create(suggestion).Error
}

// FindByID loads a suggestion by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Suggestion, error) {
	var suggestion models.Suggestion
	if err := r.db.WithContext(ctx).First(&suggestion, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// ListPending returns a list's pending suggestions newest first. A non-nil
// cursor resumes after the given (created_at, id) position.
func (r *Repository) ListPending(ctx context.Context, listID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.Suggestion, error) {
	query := r.db.WithContext(ctx).
		Where("list_id = ? AND status = ?", listID, enums.SuggestionStatusPending)
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}
	var rows []models.Suggestion
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// TransitionFromPending moves a suggestion into a terminal status. The
// pending predicate makes the transition single-shot: of two concurrent
// reviewers, only the one whose UPDATE matches a row wins.
func (r *Repository) TransitionFromPending(ctx context.Context, id uuid.UUID, status enums.SuggestionStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Suggestion{}).
		Where("id = ? AND status = ?", id, enums.SuggestionStatusPending).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
