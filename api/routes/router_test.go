package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dormpack/dormpack-backend/api/controllers"
	"github.com/dormpack/dormpack-backend/internal/auth"
	"github.com/dormpack/dormpack-backend/internal/lists"
	"github.com/dormpack/dormpack-backend/internal/profiles"
	"github.com/dormpack/dormpack-backend/internal/sharing"
	"github.com/dormpack/dormpack-backend/internal/suggestions"
	pkgAuth "github.com/dormpack/dormpack-backend/pkg/auth"
	"github.com/dormpack/dormpack-backend/pkg/auth/session"
	"github.com/dormpack/dormpack-backend/pkg/config"
	pkgerrors "github.com/dormpack/dormpack-backend/pkg/errors"
	"github.com/dormpack/dormpack-backend/pkg/logger"
	"github.com/dormpack/dormpack-backend/pkg/pagination"
	"github.com/dormpack/dormpack-backend/pkg/redis"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
}

func (stubAuthService) Refresh(ctx context.Context, accessToken, refreshToken string) (*auth.RefreshResponse, error) {
	return &auth.RefreshResponse{}, nil
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubRegisterService struct{}

func (stubRegisterService) Register(ctx context.Context, req auth.RegisterRequest) error {
	return nil
}

type stubProfileService struct{}

func (stubProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*profiles.ProfileDTO, error) {
	return &profiles.ProfileDTO{UserID: userID}, nil
}

func (stubProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req profiles.UpdateProfileDTO) (*profiles.ProfileDTO, error) {
	return &profiles.ProfileDTO{UserID: userID}, nil
}

type stubListService struct{}

func (stubListService) CreateList(ctx context.Context, userID uuid.UUID, req lists.CreateListRequest) (*lists.ListDTO, error) {
	return &lists.ListDTO{ID: uuid.New(), UserID: userID, Name: req.Name}, nil
}

func (stubListService) GetLists(ctx context.Context, userID uuid.UUID) ([]lists.ListDTO, error) {
	return []lists.ListDTO{}, nil
}

func (stubListService) GetList(ctx context.Context, userID, listID uuid.UUID) (*lists.ListDetailDTO, error) {
	return &lists.ListDetailDTO{}, nil
}

func (stubListService) UpdateList(ctx context.Context, userID, listID uuid.UUID, req lists.UpdateListRequest) (*lists.ListDTO, error) {
	return &lists.ListDTO{}, nil
}

func (stubListService) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	return nil
}

func (stubListService) UpdateSharing(ctx context.Context, userID, listID uuid.UUID, req lists.UpdateSharingRequest) (*lists.ShareInfoDTO, error) {
	return &lists.ShareInfoDTO{}, nil
}

func (stubListService) RotateShareToken(ctx context.Context, userID, listID uuid.UUID) (*lists.ShareInfoDTO, error) {
	return &lists.ShareInfoDTO{}, nil
}

func (stubListService) CopyList(ctx context.Context, userID, sourceListID uuid.UUID, token, name string) (*lists.CopyListResult, error) {
	return &lists.CopyListResult{}, nil
}

func (stubListService) InstallTemplate(ctx context.Context, userID, listID uuid.UUID, templateName string) (*lists.CategoryDTO, error) {
	return &lists.CategoryDTO{}, nil
}

func (stubListService) CreateCategory(ctx context.Context, userID, listID uuid.UUID, req lists.CreateCategoryRequest) (*lists.CategoryDTO, error) {
	return &lists.CategoryDTO{}, nil
}

func (stubListService) RenameCategory(ctx context.Context, userID, categoryID uuid.UUID, req lists.UpdateCategoryRequest) (*lists.CategoryDTO, error) {
	return &lists.CategoryDTO{}, nil
}

func (stubListService) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	return nil
}

func (stubListService) CreateItem(ctx context.Context, userID, categoryID uuid.UUID, req lists.CreateItemRequest) (*lists.ItemDTO, error) {
	return &lists.ItemDTO{}, nil
}

func (stubListService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req lists.UpdateItemRequest) (*lists.ItemDTO, error) {
	return &lists.ItemDTO{}, nil
}

func (stubListService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return nil
}

type stubSharingService struct{}

func (stubSharingService) ResolveAccess(ctx context.Context, listID uuid.UUID, token string, userID uuid.UUID) (*sharing.Access, error) {
	return nil, pkgerrors.New(pkgerrors.CodeForbidden, "access denied")
}

func (stubSharingService) GetSharedList(ctx context.Context, listID uuid.UUID, token string, userID uuid.UUID) (*sharing.SharedListDTO, error) {
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "access denied")
	}
	return &sharing.SharedListDTO{ID: listID}, nil
}

func (stubSharingService) GetSharedCategories(ctx context.Context, listID uuid.UUID, token string) ([]sharing.SharedCategoryDTO, error) {
	return []sharing.SharedCategoryDTO{}, nil
}

func (stubSharingService) GetSharedItems(ctx context.Context, listID uuid.UUID, token string) ([]sharing.SharedCategoryDTO, error) {
	return []sharing.SharedCategoryDTO{}, nil
}

func (stubSharingService) ToggleSharedItem(ctx context.Context, listID uuid.UUID, token string, itemID uuid.UUID, req sharing.ToggleItemRequest) (*sharing.SharedItemDTO, error) {
	return &sharing.SharedItemDTO{}, nil
}

type stubSuggestionService struct{}

func (stubSuggestionService) Submit(ctx context.Context, listID uuid.UUID, token string, authorID uuid.UUID, req suggestions.SubmitRequest) (*suggestions.SuggestionDTO, error) {
	if authorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	return &suggestions.SuggestionDTO{ID: uuid.New(), ListID: listID}, nil
}

func (stubSuggestionService) ListPending(ctx context.Context, ownerID, listID uuid.UUID, params pagination.Params) (*suggestions.PendingPage, error) {
	return &suggestions.PendingPage{Suggestions: []suggestions.SuggestionDTO{}}, nil
}

func (stubSuggestionService) Accept(ctx context.Context, ownerID, suggestionID uuid.UUID) (*suggestions.ReviewResult, error) {
	return &suggestions.ReviewResult{}, nil
}

func (stubSuggestionService) Reject(ctx context.Context, ownerID, suggestionID uuid.UUID) (*suggestions.SuggestionDTO, error) {
	return &suggestions.SuggestionDTO{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		map[string]controllers.Pinger{"postgres": stubPinger{}},
		(*redis.Client)(nil),
		nil, // prometheus registry
		nil, // http metrics
		stubSessionChecker{},
		stubAuthService{},
		stubRegisterService{},
		stubProfileService{},
		stubListService{},
		stubSharingService{},
		stubSuggestionService{},
	)
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "casey@college.edu",
		JTI:    session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLiveRoute(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestPrivateGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestPrivateGroupSucceedsWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestSharedSubtreeAllowsAnonymousViewers(t *testing.T) {
	router := newTestRouter(testConfig())
	listID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/shared/"+listID.String()+"?token=a1b2c3d4", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for tokened viewer got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), listID.String()) {
		t.Fatalf("expected list payload, got %s", resp.Body.String())
	}
}

func TestSharedSubtreeDeniesWithoutToken(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/shared/"+uuid.NewString(), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without token got %d", resp.Code)
	}
}

func TestSuggestionSubmitRequiresSignIn(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	listID := uuid.New()

	anon := httptest.NewRequest(http.MethodPost, "/shared/"+listID.String()+"/suggestions?token=a1b2c3d4",
		strings.NewReader(`{"item_name":"Desk Lamp"}`))
	anon.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, anon)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous suggestion got %d", resp.Code)
	}

	signedIn := httptest.NewRequest(http.MethodPost, "/shared/"+listID.String()+"/suggestions?token=a1b2c3d4",
		strings.NewReader(`{"item_name":"Desk Lamp"}`))
	signedIn.Header.Set("Content-Type", "application/json")
	signedIn.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, signedIn)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for signed-in author got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLogoutRequiresAuth(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
