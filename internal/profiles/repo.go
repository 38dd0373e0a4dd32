package profiles

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dormpack/dormpack-backend/pkg/db/models"
)

// Repository exposes profile persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a profiles repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a profile row for a freshly registered user.
func (r *Repository) Create(ctx context.Context, dto CreateProfileDTO) (*models.Profile, error) {
	profile := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// FindByUserID loads the profile belonging to a user.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies the mutable profile fields and returns the stored row.
func (r *Repository) Update(ctx context.Context, userID uuid.UUID, dto UpdateProfileDTO) (*models.Profile, error) {
	updates := map[string]any{}
	if dto.DisplayName != nil {
		updates["display_name"] = *dto.DisplayName
	}
	if dto.College != nil {
		updates["college"] = dto.College
	}
	if dto.AvatarURL != nil {
		updates["avatar_url"] = dto.AvatarURL
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&models.Profile{}).
			Where("user_id = ?", userID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByUserID(ctx, userID)
}
