package suggestions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dormpack/dormpack-backend/internal/sharing"
	"github.com/dormpack/dormpack-backend/pkg/db/models"
	"github.com/dormpack/dormpack-backend/pkg/enums"
	pkgerrors "github.com/dormpack/dormpack-backend/pkg/errors"
	"github.com/dormpack/dormpack-backend/pkg/pagination"
)

type fakeSuggestionRepo struct {
	rows map[uuid.UUID]*models.Suggestion
}

func newFakeSuggestionRepo() *fakeSuggestionRepo {
	return &fakeSuggestionRepo{rows: make(map[uuid.UUID]*models.Suggestion)}
}

func (f *fakeSuggestionRepo) Create(ctx context.Context, suggestion *models.Suggestion) error {
	if suggestion.ID == uuid.Nil {
		suggestion.ID = uuid.New()
	}
	copied := *suggestion
	f.rows[suggestion.ID] = &copied
	return nil
}

func (f *fakeSuggestionRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Suggestion, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeSuggestionRepo) ListPending(ctx context.Context, listID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.Suggestion, error) {
	var out []models.Suggestion
	for _, row := range f.rows {
		if row.ListID == listID && row.Status == enums.SuggestionStatusPending {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if cursor != nil {
		filtered := out[:0]
		for _, row := range out {
			if row.CreatedAt.Before(cursor.CreatedAt) {
				filtered = append(filtered, row)
			}
		}
		out = filtered
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSuggestionRepo) TransitionFromPending(ctx context.Context, id uuid.UUID, status enums.SuggestionStatus) (bool, error) {
	row, ok := f.rows[id]
	if !ok || row.Status != enums.SuggestionStatusPending {
		return false, nil
	}
	row.Status = status
	return true, nil
}

type fakeListStore struct {
	lists      map[uuid.UUID]*models.PackingList
	categories map[uuid.UUID]*models.Category
	items      map[uuid.UUID]*models.Item

	createItemErr error
}

func newFakeListStore() *fakeListStore {
	return &fakeListStore{
		lists:      make(map[uuid.UUID]*models.PackingList),
		categories: make(map[uuid.UUID]*models.Category),
		items:      make(map[uuid.UUID]*models.Item),
	}
}

func (f *fakeListStore) FindListByID(ctx context.Context, id uuid.UUID) (*models.PackingList, error) {
	list, ok := f.lists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *list
	return &copied, nil
}

func (f *fakeListStore) FindCategoryByListAndName(ctx context.Context, listID uuid.UUID, name string) (*models.Category, error) {
	for _, category := range f.categories {
		if category.ListID == listID && category.Name == name {
			copied := *category
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeListStore) CountItems(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, item := range f.items {
		if item.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (f *fakeListStore) CreateItem(ctx context.Context, item *models.Item) error {
	if f.createItemErr != nil {
		return f.createItemErr
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

// stubResolver mirrors the sharing gateway's decision table closely enough
// for the workflow tests.
type stubResolver struct {
	lists map[uuid.UUID]*models.PackingList
}

func (s *stubResolver) ResolveAccess(ctx context.Context, listID uuid.UUID, token string, userID uuid.UUID) (*sharing.Access, error) {
	list, ok := s.lists[listID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}
	if userID != uuid.Nil && list.UserID == userID {
		return &sharing.Access{ListID: listID, IsOwner: true, CanSuggest: true, CanEdit: true}, nil
	}
	if !list.IsShared || list.ShareToken == nil || *list.ShareToken != token {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, accessDeniedMessage)
	}
	return &sharing.Access{ListID: listID, CanSuggest: list.AllowSuggestions, CanEdit: list.AllowEditing}, nil
}

type workflowFixture struct {
	svc      Service
	repo     *fakeSuggestionRepo
	store    *fakeListStore
	owner    uuid.UUID
	author   uuid.UUID
	list     *models.PackingList
	category *models.Category
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()
	repo := newFakeSuggestionRepo()
	store := newFakeListStore()
	owner := uuid.New()
	token := "tok12345"
	list := &models.PackingList{
		ID:               uuid.New(),
		UserID:           owner,
		Name:             "Fall Move-In",
		IsShared:         true,
		ShareToken:       &token,
		AllowSuggestions: true,
	}
	store.lists[list.ID] = list
	category := &models.Category{ID: uuid.New(), ListID: list.ID, Name: "Bedding"}
	store.categories[category.ID] = category

	svc, err := NewService(ServiceParams{
		Repo:     repo,
		ListRepo: store,
		Resolver: &stubResolver{lists: store.lists},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return &workflowFixture{
		svc:      svc,
		repo:     repo,
		store:    store,
		owner:    owner,
		author:   uuid.New(),
		list:     list,
		category: category,
	}
}

func (fx *workflowFixture) submit(t *testing.T, categoryName *string) *SuggestionDTO {
	t.Helper()
	dto, err := fx.svc.Submit(context.Background(), fx.list.ID, "tok12345", fx.author, SubmitRequest{
		ItemName:     "Mattress Topper",
		CategoryName: categoryName,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return dto
}

func TestSubmitRequiresAuthentication(t *testing.T) {
	fx := newWorkflowFixture(t)
	_, err := fx.svc.Submit(context.Background(), fx.list.ID, "tok12345", uuid.Nil, SubmitRequest{ItemName: "Lamp"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestSubmitRejectedWhenSuggestionsOff(t *testing.T) {
	fx := newWorkflowFixture(t)
	fx.list.AllowSuggestions = false

	_, err := fx.svc.Submit(context.Background(), fx.list.ID, "tok12345", fx.author, SubmitRequest{ItemName: "Lamp"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if typed.Message() != accessDeniedMessage {
		t.Fatalf("denial message must be uniform, got %q", typed.Message())
	}
}

func TestSubmitTrimsAndStoresPending(t *testing.T) {
	fx := newWorkflowFixture(t)
	category := "Bedding"
	dto, err := fx.svc.Submit(context.Background(), fx.list.ID, "tok12345", fx.author, SubmitRequest{
		ItemName:     "  Mattress Topper  ",
		CategoryName: &category,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if dto.ItemName != "Mattress Topper" {
		t.Fatalf("expected trimmed name, got %q", dto.ItemName)
	}
	if dto.Status != enums.SuggestionStatusPending {
		t.Fatalf("expected pending status, got %q", dto.Status)
	}
	if dto.SuggestedBy != fx.author {
		t.Fatal("author not recorded")
	}

	_, err = fx.svc.Submit(context.Background(), fx.list.ID, "tok12345", fx.author, SubmitRequest{ItemName: "   "})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
}

func TestListPendingIsOwnerOnly(t *testing.T) {
	fx := newWorkflowFixture(t)
	fx.submit(t, nil)

	page, err := fx.svc.ListPending(context.Background(), fx.owner, fx.list.ID, pagination.Params{})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(page.Suggestions) != 1 {
		t.Fatalf("expected one pending suggestion, got %d", len(page.Suggestions))
	}
	if page.NextCursor != "" {
		t.Fatalf("expected no next cursor, got %q", page.NextCursor)
	}

	_, err = fx.svc.ListPending(context.Background(), fx.author, fx.list.ID, pagination.Params{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
}

func TestListPendingPaginates(t *testing.T) {
	fx := newWorkflowFixture(t)
	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		row := &models.Suggestion{
			ID:          uuid.New(),
			ListID:      fx.list.ID,
			ItemName:    fmt.Sprintf("Item %d", i),
			SuggestedBy: fx.author,
			Status:      enums.SuggestionStatusPending,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		fx.repo.rows[row.ID] = row
	}

	first, err := fx.svc.ListPending(context.Background(), fx.owner, fx.list.ID, pagination.Params{Limit: 2})
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(first.Suggestions) != 2 || first.NextCursor == "" {
		t.Fatalf("expected full first page with cursor, got %d/%q", len(first.Suggestions), first.NextCursor)
	}

	second, err := fx.svc.ListPending(context.Background(), fx.owner, fx.list.ID, pagination.Params{Limit: 2, Cursor: first.NextCursor})
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(second.Suggestions) != 1 || second.NextCursor != "" {
		t.Fatalf("expected final page of one, got %d/%q", len(second.Suggestions), second.NextCursor)
	}
	if second.Suggestions[0].ID == first.Suggestions[0].ID || second.Suggestions[0].ID == first.Suggestions[1].ID {
		t.Fatal("pages overlap")
	}
}

func TestAcceptMaterializesItemOnExactCategoryMatch(t *testing.T) {
	fx := newWorkflowFixture(t)
	category := "Bedding"
	dto := fx.submit(t, &category)

	result, err := fx.svc.Accept(context.Background(), fx.owner, dto.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if result.Suggestion.Status != enums.SuggestionStatusAccepted {
		t.Fatalf("expected accepted, got %q", result.Suggestion.Status)
	}
	if !result.ItemCreated || result.ItemID == nil {
		t.Fatal("expected item to be created")
	}
	created := fx.store.items[*result.ItemID]
	if created == nil || created.CategoryID != fx.category.ID || created.Name != "Mattress Topper" {
		t.Fatalf("unexpected created item %+v", created)
	}
	if created.Quantity != 1 || created.SortOrder != 0 {
		t.Fatalf("expected quantity 1 sort 0, got %d/%d", created.Quantity, created.SortOrder)
	}
}

func TestAcceptSkipsItemWhenCategoryNameDiffers(t *testing.T) {
	fx := newWorkflowFixture(t)

	// Case-sensitive exact match only.
	lower := "bedding"
	dto := fx.submit(t, &lower)
	result, err := fx.svc.Accept(context.Background(), fx.owner, dto.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if result.Suggestion.Status != enums.SuggestionStatusAccepted {
		t.Fatalf("suggestion should still be accepted, got %q", result.Suggestion.Status)
	}
	if result.ItemCreated || result.ItemID != nil {
		t.Fatal("no item should be created without an exact category match")
	}
	if len(fx.store.items) != 0 {
		t.Fatalf("expected no items, got %d", len(fx.store.items))
	}

	// Same when no category name was supplied at all.
	dto = fx.submit(t, nil)
	result, err = fx.svc.Accept(context.Background(), fx.owner, dto.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if result.ItemCreated {
		t.Fatal("no item should be created without a category name")
	}
}

func TestAcceptSurvivesItemInsertFailure(t *testing.T) {
	fx := newWorkflowFixture(t)
	category := "Bedding"
	dto := fx.submit(t, &category)

	fx.store.createItemErr = errors.New("disk full")

	// The accept commits before the insert runs, so the caller must get
	// the accepted suggestion back with the failure attached rather than
	// an error that suggests retrying.
	result, err := fx.svc.Accept(context.Background(), fx.owner, dto.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if result.Suggestion.Status != enums.SuggestionStatusAccepted {
		t.Fatalf("expected accepted, got %q", result.Suggestion.Status)
	}
	if result.ItemCreated || result.ItemID != nil {
		t.Fatal("no item should be reported created")
	}
	if result.FailureDetail == nil || !strings.Contains(*result.FailureDetail, "disk full") {
		t.Fatalf("expected failure detail naming the cause, got %v", result.FailureDetail)
	}

	// A retry still reports already-reviewed; the transition stuck.
	_, err = fx.svc.Accept(context.Background(), fx.owner, dto.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict on retry, got %v", err)
	}
}

func TestReviewTransitionsAreSingleShot(t *testing.T) {
	fx := newWorkflowFixture(t)
	dto := fx.submit(t, nil)

	if _, err := fx.svc.Accept(context.Background(), fx.owner, dto.ID); err != nil {
		t.Fatalf("first accept: %v", err)
	}

	_, err := fx.svc.Accept(context.Background(), fx.owner, dto.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict on second accept, got %v", err)
	}
	_, err = fx.svc.Reject(context.Background(), fx.owner, dto.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict on reject after accept, got %v", err)
	}
}

func TestRejectLeavesNoSideEffects(t *testing.T) {
	fx := newWorkflowFixture(t)
	category := "Bedding"
	dto := fx.submit(t, &category)

	rejected, err := fx.svc.Reject(context.Background(), fx.owner, dto.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != enums.SuggestionStatusRejected {
		t.Fatalf("expected rejected, got %q", rejected.Status)
	}
	if len(fx.store.items) != 0 {
		t.Fatal("reject must not create items")
	}
}

func TestReviewByNonOwnerDenied(t *testing.T) {
	fx := newWorkflowFixture(t)
	dto := fx.submit(t, nil)

	_, err := fx.svc.Accept(context.Background(), fx.author, dto.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}

	// Unknown suggestions fail the same way.
	_, errUnknown := fx.svc.Accept(context.Background(), fx.owner, uuid.New())
	if pkgerrors.As(errUnknown) == nil || pkgerrors.As(errUnknown).Message() != typed.Message() {
		t.Fatalf("unknown and foreign suggestions must fail identically, got %v", errUnknown)
	}
}
