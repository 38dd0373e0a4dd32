package enums

import "fmt"

// SuggestionStatus maps to the suggestion_status enum in Postgres.
type SuggestionStatus string

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusAccepted SuggestionStatus = "accepted"
	SuggestionStatusRejected SuggestionStatus = "rejected"
)

var validSuggestionStatuses = []SuggestionStatus{
	SuggestionStatusPending,
	SuggestionStatusAccepted,
	SuggestionStatusRejected,
}

// IsValid checks whether the given status matches the canonical enum.
func (s SuggestionStatus) IsValid() bool {
	for _, candidate := range validSuggestionStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
// A suggestion moves from pending to exactly one terminal state.
func (s SuggestionStatus) IsTerminal() bool {
	return s == SuggestionStatusAccepted || s == SuggestionStatusRejected
}

// ParseSuggestionStatus converts raw strings into SuggestionStatus.
func ParseSuggestionStatus(value string) (SuggestionStatus, error) {
	for _, candidate := range validSuggestionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid suggestion status %q", value)
}
