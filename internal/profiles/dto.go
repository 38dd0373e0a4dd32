package profiles

import (
	"time"

	"github.com/google/uuid"

	"github.com/dormpack/dormpack-backend/pkg/db/models"
	"github.com/dormpack/dormpack-backend/pkg/theme"
)

// ProfileDTO is the transport shape for a user profile, including the
// color tokens the frontend derives from the selected college.
type ProfileDTO struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	DisplayName string            `json:"display_name"`
	College     *string           `json:"college,omitempty"`
	AvatarURL   *string           `json:"avatar_url,omitempty"`
	Email       string            `json:"email"`
	Theme       theme.ColorTokens `json:"theme"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// CreateProfileDTO holds the data required to persist a new profile.
type CreateProfileDTO struct {
	UserID      uuid.UUID
	DisplayName string
	College     *string
	Email       string
}

// UpdateProfileDTO carries the mutable profile fields; nil means unchanged.
type UpdateProfileDTO struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,min=1,max=80"`
	College     *string `json:"college,omitempty" validate:"omitempty,max=120"`
	AvatarURL   *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

func FromModel(p *models.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}

	college := ""
	if p.College != nil {
		college = *p.College
	}

	return &ProfileDTO{
		ID:          p.ID,
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		College:     p.College,
		AvatarURL:   p.AvatarURL,
		Email:       p.Email,
		Theme:       theme.TokensFor(college),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (c CreateProfileDTO) ToModel() *models.Profile {
	return &models.Profile{
		UserID:      c.UserID,
		DisplayName: c.DisplayName,
		College:     c.College,
		Email:       c.Email,
	}
}
