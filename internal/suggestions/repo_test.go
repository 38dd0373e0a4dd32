package suggestions

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dormpack/dormpack-backend/pkg/db/models"
	"github.com/dormpack/dormpack-backend/pkg/enums"
	"github.com/dormpack/dormpack-backend/pkg/pagination"
)

func setupSuggestionsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS list_suggestions (
  id TEXT PRIMARY KEY,
  list_id TEXT NOT NULL,
  item_name TEXT NOT NULL,
  category_name TEXT,
  notes TEXT,
  suggested_by TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func insertSuggestion(t *testing.T, repo *Repository, listID uuid.UUID, name string, createdAt time.Time) *models.Suggestion {
	t.Helper()
	suggestion := &models.Suggestion{
		ID:          uuid.New(),
		ListID:      listID,
		ItemName:    name,
		SuggestedBy: uuid.New(),
		Status:      enums.SuggestionStatusPending,
		CreatedAt:   createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), suggestion))
	return suggestion
}

func TestTransitionFromPendingIsSingleShot(t *testing.T) {
	repo := NewRepository(setupSuggestionsTestDB(t))
	ctx := context.Background()

	suggestion := insertSuggestion(t, repo, uuid.New(), "Desk Lamp", time.Now().UTC())

	moved, err := repo.TransitionFromPending(ctx, suggestion.ID, enums.SuggestionStatusAccepted)
	require.NoError(t, err)
	assert.True(t, moved)

	// Losing reviewer: the row is no longer pending, so nothing matches.
	moved, err = repo.TransitionFromPending(ctx, suggestion.ID, enums.SuggestionStatusRejected)
	require.NoError(t, err)
	assert.False(t, moved)

	stored, err := repo.FindByID(ctx, suggestion.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.SuggestionStatusAccepted, stored.Status)
}

func TestListPendingFiltersAndPaginates(t *testing.T) {
	repo := NewRepository(setupSuggestionsTestDB(t))
	ctx := context.Background()

	listID := uuid.New()
	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	oldest := insertSuggestion(t, repo, listID, "Shower Caddy", base)
	middle := insertSuggestion(t, repo, listID, "Desk Lamp", base.Add(time.Minute))
	newest := insertSuggestion(t, repo, listID, "Power Strip", base.Add(2*time.Minute))

	// Noise: another list and a reviewed suggestion on this one.
	insertSuggestion(t, repo, uuid.New(), "Other List Item", base.Add(3*time.Minute))
	reviewed := insertSuggestion(t, repo, listID, "Already Accepted", base.Add(4*time.Minute))
	_, err := repo.TransitionFromPending(ctx, reviewed.ID, enums.SuggestionStatusAccepted)
	require.NoError(t, err)

	first, err := repo.ListPending(ctx, listID, nil, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, newest.ID, first[0].ID)
	assert.Equal(t, middle.ID, first[1].ID)

	cursor := &pagination.Cursor{CreatedAt: first[1].CreatedAt, ID: first[1].ID}
	second, err := repo.ListPending(ctx, listID, cursor, 2)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, oldest.ID, second[0].ID)
}
