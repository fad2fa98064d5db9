package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/gsjs-tp/volunteer-service/internal/domain"
	"github.com/gsjs-tp/volunteer-service/internal/events"
	"github.com/gsjs-tp/volunteer-service/internal/repository"
	apperrors "github.com/gsjs-tp/volunteer-service/pkg/util/errorutil"
)

type fakeMemberRepo struct {
	listViewsFn         func(ctx context.Context, filter repository.MemberFilter) ([]domain.MemberView, error)
	getViewByIDFn       func(ctx context.Context, id int64) (*domain.MemberView, error)
	getByIDFn           func(ctx context.Context, id int64) (*domain.Member, error)
	updateStatusFn      func(ctx context.Context, id int64, status domain.MemberStatus) error
	deleteFn            func(ctx context.Context, id int64, userID *int64) error
	createWithAccountFn func(ctx context.Context, member *domain.Member, account *domain.UserAccount) error
}

func (f *fakeMemberRepo) ListViews(ctx context.Context, filter repository.MemberFilter) ([]domain.MemberView, error) {
	return f.listViewsFn(ctx, filter)
}

func (f *fakeMemberRepo) GetViewByID(ctx context.Context, id int64) (*domain.MemberView, error) {
	return f.getViewByIDFn(ctx, id)
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeMemberRepo) UpdateStatus(ctx context.Context, id int64, status domain.MemberStatus) error {
	return f.updateStatusFn(ctx, id, status)
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id int64, userID *int64) error {
	return f.deleteFn(ctx, id, userID)
}

func (f *fakeMemberRepo) CreateWithAccount(ctx context.Context, member *domain.Member, account *domain.UserAccount) error {
	return f.createWithAccountFn(ctx, member, account)
}

func newTestMemberService(repo repository.MemberRepository) *MemberService {
	return NewMemberService(repo, events.NewInMemoryDispatcher(), zap.NewNop())
}

func assertDomainErrorCode(t *testing.T, err error, code string) *apperrors.DomainError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T: %v", err, err)
	}
	if domainErr.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, domainErr.Code, domainErr.Message)
	}
	return domainErr
}

func TestNormalizePhotoPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"foto.jpg", "uploads/foto.jpg"},
		{"/foto.jpg", "uploads/foto.jpg"},
		{"public/foto.jpg", "uploads/foto.jpg"},
		{"/public/uploads/foto.jpg", "uploads/foto.jpg"},
		{"uploads/foto.jpg", "uploads/foto.jpg"},
	}
	for _, tc := range cases {
		if got := normalizePhotoPath(tc.in); got != tc.want {
			t.Errorf("normalizePhotoPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	// idempotent: applying twice never stacks prefixes
	for _, tc := range cases {
		once := normalizePhotoPath(tc.in)
		if twice := normalizePhotoPath(once); twice != once {
			t.Errorf("normalizePhotoPath not idempotent for %q: %q then %q", tc.in, once, twice)
		}
	}
}

func TestListMembers_BuildsFilter(t *testing.T) {
	var captured repository.MemberFilter
	repo := &fakeMemberRepo{
		listViewsFn: func(_ context.Context, filter repository.MemberFilter) ([]domain.MemberView, error) {
			captured = filter
			return nil, nil
		},
	}
	svc := newTestMemberService(repo)

	_, err := svc.ListMembers(context.Background(), MemberListQuery{
		Search:     "andi",
		DivisionID: "3",
		Status:     "Active",
	})
	if err != nil {
		t.Fatalf("ListMembers returned err: %v", err)
	}
	if captured.Search == nil || *captured.Search != "andi" {
		t.Fatalf("search filter not forwarded: %+v", captured.Search)
	}
	if captured.DivisionID == nil || *captured.DivisionID != 3 {
		t.Fatalf("division filter not forwarded: %+v", captured.DivisionID)
	}
	if captured.Status == nil || *captured.Status != domain.MemberStatusActive {
		t.Fatalf("status filter not forwarded: %+v", captured.Status)
	}
}

func TestListMembers_InvalidDivisionID(t *testing.T) {
	repo := &fakeMemberRepo{
		listViewsFn: func(context.Context, repository.MemberFilter) ([]domain.MemberView, error) {
			t.Fatal("repository must not be reached for an invalid divisi_id")
			return nil, nil
		},
	}
	svc := newTestMemberService(repo)

	_, err := svc.ListMembers(context.Background(), MemberListQuery{DivisionID: "abc"})
	domainErr := assertDomainErrorCode(t, err, apperrors.CodeValidation)
	if domainErr.Details["receivedDivisiId"] != "abc" {
		t.Fatalf("expected receivedDivisiId detail, got %+v", domainErr.Details)
	}
}

func TestListMembers_DecoratesViews(t *testing.T) {
	photo := "/public/foto.jpg"
	repo := &fakeMemberRepo{
		listViewsFn: func(context.Context, repository.MemberFilter) ([]domain.MemberView, error) {
			return []domain.MemberView{
				{ID: 1, Name: "Andi", Photo: &photo, Status: ""},
			}, nil
		},
	}
	svc := newTestMemberService(repo)

	views, err := svc.ListMembers(context.Background(), MemberListQuery{})
	if err != nil {
		t.Fatalf("ListMembers returned err: %v", err)
	}
	if *views[0].Photo != "uploads/foto.jpg" {
		t.Fatalf("photo not normalized: %q", *views[0].Photo)
	}
	if views[0].Status != domain.MemberStatusActive {
		t.Fatalf("empty status must default to Active, got %q", views[0].Status)
	}
}

func TestGetMember_NonNumericIDIsNotFound(t *testing.T) {
	svc := newTestMemberService(&fakeMemberRepo{})

	_, err := svc.GetMember(context.Background(), "abc")
	assertDomainErrorCode(t, err, apperrors.CodeNotFound)
}

func TestGetMember_MissingRowIsNotFound(t *testing.T) {
	repo := &fakeMemberRepo{
		getViewByIDFn: func(context.Context, int64) (*domain.MemberView, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := newTestMemberService(repo)

	_, err := svc.GetMember(context.Background(), "42")
	domainErr := assertDomainErrorCode(t, err, apperrors.CodeNotFound)
	if domainErr.Message != "Anggota tidak ditemukan" {
		t.Fatalf("unexpected message: %q", domainErr.Message)
	}
}

func TestUpdateStatus_RejectsInvalidLiteralBeforeID(t *testing.T) {
	svc := newTestMemberService(&fakeMemberRepo{})

	// both the status and the id are invalid; the status check must win
	_, err := svc.UpdateStatus(context.Background(), "abc", "active")
	domainErr := assertDomainErrorCode(t, err, apperrors.CodeValidation)
	if domainErr.Details["receivedStatus"] != "active" {
		t.Fatalf("expected receivedStatus detail, got %+v", domainErr.Details)
	}
}

func TestUpdateStatus_RejectsEmptyStatus(t *testing.T) {
	svc := newTestMemberService(&fakeMemberRepo{})

	_, err := svc.UpdateStatus(context.Background(), "1", "")
	assertDomainErrorCode(t, err, apperrors.CodeValidation)
}

func TestUpdateStatus_InvalidID(t *testing.T) {
	svc := newTestMemberService(&fakeMemberRepo{})

	_, err := svc.UpdateStatus(context.Background(), "-1", "Active")
	domainErr := assertDomainErrorCode(t, err, apperrors.CodeValidation)
	if domainErr.Details["receivedId"] != "-1" {
		t.Fatalf("expected receivedId detail, got %+v", domainErr.Details)
	}
}

func TestUpdateStatus_MemberNotFound(t *testing.T) {
	repo := &fakeMemberRepo{
		getByIDFn: func(context.Context, int64) (*domain.Member, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := newTestMemberService(repo)

	_, err := svc.UpdateStatus(context.Background(), "42", "Inactive")
	assertDomainErrorCode(t, err, apperrors.CodeNotFound)
}

func TestUpdateStatus_ReportsOldAndNewStatus(t *testing.T) {
	var gotID int64
	var gotStatus domain.MemberStatus
	repo := &fakeMemberRepo{
		getByIDFn: func(_ context.Context, id int64) (*domain.Member, error) {
			return &domain.Member{ID: id, Name: "Andi", Status: domain.MemberStatusActive}, nil
		},
		updateStatusFn: func(_ context.Context, id int64, status domain.MemberStatus) error {
			gotID, gotStatus = id, status
			return nil
		},
	}
	svc := newTestMemberService(repo)

	change, err := svc.UpdateStatus(context.Background(), "5", "Inactive")
	if err != nil {
		t.Fatalf("UpdateStatus returned err: %v", err)
	}
	if gotID != 5 || gotStatus != domain.MemberStatusInactive {
		t.Fatalf("repository called with (%d, %s)", gotID, gotStatus)
	}
	if change.OldStatus != domain.MemberStatusActive || change.NewStatus != domain.MemberStatusInactive {
		t.Fatalf("unexpected change: %+v", change)
	}
	if change.MemberName != "Andi" || change.MemberID != 5 {
		t.Fatalf("unexpected change identity: %+v", change)
	}
}

func TestUpdateStatus_SameStatusIsNormalUpdate(t *testing.T) {
	repo := &fakeMemberRepo{
		getByIDFn: func(_ context.Context, id int64) (*domain.Member, error) {
			return &domain.Member{ID: id, Name: "Andi", Status: domain.MemberStatusActive}, nil
		},
		updateStatusFn: func(context.Context, int64, domain.MemberStatus) error {
			return nil
		},
	}
	svc := newTestMemberService(repo)

	change, err := svc.UpdateStatus(context.Background(), "5", "Active")
	if err != nil {
		t.Fatalf("UpdateStatus returned err: %v", err)
	}
	if change.OldStatus != change.NewStatus {
		t.Fatalf("expected identical old and new status, got %+v", change)
	}
}

func TestUpdateStatus_RowVanishedDuringUpdate(t *testing.T) {
	repo := &fakeMemberRepo{
		getByIDFn: func(_ context.Context, id int64) (*domain.Member, error) {
			return &domain.Member{ID: id, Name: "Andi", Status: domain.MemberStatusActive}, nil
		},
		updateStatusFn: func(context.Context, int64, domain.MemberStatus) error {
			return sql.ErrNoRows
		},
	}
	svc := newTestMemberService(repo)

	_, err := svc.UpdateStatus(context.Background(), "5", "Inactive")
	domainErr := assertDomainErrorCode(t, err, apperrors.CodeNotFound)
	if domainErr.Message != "Gagal mengubah status anggota" {
		t.Fatalf("unexpected message: %q", domainErr.Message)
	}
}

func TestDeleteMember_PassesLinkedAccountID(t *testing.T) {
	userID := int64(9)
	var gotUserID *int64
	repo := &fakeMemberRepo{
		getByIDFn: func(_ context.Context, id int64) (*domain.Member, error) {
			return &domain.Member{ID: id, Name: "Andi", UserID: &userID}, nil
		},
		deleteFn: func(_ context.Context, _ int64, uid *int64) error {
			gotUserID = uid
			return nil
		},
	}
	svc := newTestMemberService(repo)

	deleted, err := svc.DeleteMember(context.Background(), "5")
	if err != nil {
		t.Fatalf("DeleteMember returned err: %v", err)
	}
	if gotUserID == nil || *gotUserID != userID {
		t.Fatalf("linked account id not forwarded: %+v", gotUserID)
	}
	if deleted.ID != 5 || deleted.Name != "Andi" {
		t.Fatalf("unexpected deleted member: %+v", deleted)
	}
}

func TestDeleteMember_WithoutAccount(t *testing.T) {
	called := false
	repo := &fakeMemberRepo{
		getByIDFn: func(_ context.Context, id int64) (*domain.Member, error) {
			return &domain.Member{ID: id, Name: "Budi"}, nil
		},
		deleteFn: func(_ context.Context, _ int64, uid *int64) error {
			called = true
			if uid != nil {
				t.Fatalf("expected nil user id, got %d", *uid)
			}
			return nil
		},
	}
	svc := newTestMemberService(repo)

	if _, err := svc.DeleteMember(context.Background(), "5"); err != nil {
		t.Fatalf("DeleteMember returned err: %v", err)
	}
	if !called {
		t.Fatal("repository delete not invoked")
	}
}

func TestDeleteMember_NotFound(t *testing.T) {
	repo := &fakeMemberRepo{
		getByIDFn: func(context.Context, int64) (*domain.Member, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := newTestMemberService(repo)

	_, err := svc.DeleteMember(context.Background(), "42")
	assertDomainErrorCode(t, err, apperrors.CodeNotFound)
}
