package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/dormpack/dormpack-backend/internal/profiles"
	"github.com/dormpack/dormpack-backend/internal/users"
	"github.com/dormpack/dormpack-backend/pkg/config"
	"github.com/dormpack/dormpack-backend/pkg/db/models"
	pkgerrors "github.com/dormpack/dormpack-backend/pkg/errors"
	"github.com/dormpack/dormpack-backend/pkg/security"
)

// RegisterRequest contains the payload required for onboarding a new user.
type RegisterRequest struct {
	DisplayName string  `json:"display_name" validate:"required,min=1,max=80"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	College     *string `json:"college,omitempty" validate:"omitempty,max=120"`
}

// RegisterService handles the onboarding transaction.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) error
}

type registerTxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type registerUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
}

type registerProfileRepository interface {
	Create(ctx context.Context, dto profiles.CreateProfileDTO) (*models.Profile, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	TxRunner           registerTxRunner
	UserRepoFactory    func(tx *gorm.DB) registerUserRepository
	ProfileRepoFactory func(tx *gorm.DB) registerProfileRepository
	PasswordConfig     config.PasswordConfig
}

type registerService struct {
	tx          registerTxRunner
	userRepos   func(tx *gorm.DB) registerUserRepository
	profRepos   func(tx *gorm.DB) registerProfileRepository
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.TxRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	if params.UserRepoFactory == nil {
		params.UserRepoFactory = func(tx *gorm.DB) registerUserRepository {
			return users.NewRepository(tx)
		}
	}
	if params.ProfileRepoFactory == nil {
		params.ProfileRepoFactory = func(tx *gorm.DB) registerProfileRepository {
			return profiles.NewRepository(tx)
		}
	}
	return &registerService{
		tx:          params.TxRunner,
		userRepos:   params.UserRepoFactory,
		profRepos:   params.ProfileRepoFactory,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "display name is required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := s.userRepos(tx)
		profileRepo := s.profRepos(tx)

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			Email:        email,
			PasswordHash: passwordHash,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}

		if _, err := profileRepo.Create(ctx, profiles.CreateProfileDTO{
			UserID:      user.ID,
			DisplayName: displayName,
			College:     req.College,
			Email:       email,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create profile")
		}

		return nil
	})
}
