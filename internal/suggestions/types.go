package suggestions

import (
	"time"

	"github.com/google/uuid"

	"github.com/dormpack/dormpack-backend/pkg/db/models"
	"github.com/dormpack/dormpack-backend/pkg/enums"
)

// SuggestionDTO is the transport shape of a suggestion.
type SuggestionDTO struct {
	ID           uuid.UUID              `json:"id"`
	ListID       uuid.UUID              `json:"list_id"`
	ItemName     string                 `json:"item_name"`
	CategoryName *string                `json:"category_name,omitempty"`
	Notes        *string                `json:"notes,omitempty"`
	SuggestedBy  uuid.UUID              `json:"suggested_by"`
	Status       enums.SuggestionStatus `json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
}

// SubmitRequest is the payload for proposing an item on a shared list.
type SubmitRequest struct {
	ItemName     string  `json:"item_name" validate:"required,min=1,max=200"`
	CategoryName *string `json:"category_name" validate:"omitempty,max=120"`
	Notes        *string `json:"notes" validate:"omitempty,max=1000"`
}

// PendingPage is one page of a list's open suggestions.
type PendingPage struct {
	Suggestions []SuggestionDTO `json:"suggestions"`
	NextCursor  string          `json:"next_cursor,omitempty"`
}

// ReviewResult reports the outcome of accepting a suggestion. ItemCreated is
// false when no category on the list matched the suggested category name; the
// suggestion is still accepted in that case. FailureDetail is set when the
// item insert failed after the accept committed.
type ReviewResult struct {
	Suggestion    SuggestionDTO `json:"suggestion"`
	ItemCreated   bool          `json:"item_created"`
	ItemID        *uuid.UUID    `json:"item_id,omitempty"`
	FailureDetail *string       `json:"failure_detail,omitempty"`
}

func fromModel(s *models.Suggestion) SuggestionDTO {
	return SuggestionDTO{
		ID:           s.ID,
		ListID:       s.ListID,
		ItemName:     s.ItemName,
		CategoryName: s.CategoryName,
		Notes:        s.Notes,
		SuggestedBy:  s.SuggestedBy,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
	}
}
