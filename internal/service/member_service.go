package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gsjs-tp/volunteer-service/internal/domain"
	"github.com/gsjs-tp/volunteer-service/internal/events"
	"github.com/gsjs-tp/volunteer-service/internal/repository"
	apperrors "github.com/gsjs-tp/volunteer-service/pkg/util/errorutil"
)

const uploadPrefix = "uploads/"

// MemberService implements the member query, status-update and delete flows.
type MemberService struct {
	members    repository.MemberRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// MemberListQuery carries the raw filter values from the request.
type MemberListQuery struct {
	Search     string
	DivisionID string
	Status     string
}

// NewMemberService constructs the service.
func NewMemberService(members repository.MemberRepository, dispatcher events.Dispatcher, logger *zap.Logger) *MemberService {
	return &MemberService{members: members, dispatcher: dispatcher, logger: logger}
}

// ListMembers returns the joined member views matching all given filters,
// ordered by name ascending.
func (s *MemberService) ListMembers(ctx context.Context, query MemberListQuery) ([]domain.MemberView, error) {
	filter := repository.MemberFilter{}
	if query.Search != "" {
		filter.Search = &query.Search
	}
	if query.DivisionID != "" {
		divisionID, err := strconv.ParseInt(query.DivisionID, 10, 64)
		if err != nil {
			return nil, apperrors.NewValidationError("ID divisi tidak valid", map[string]any{
				"receivedDivisiId": query.DivisionID,
			})
		}
		filter.DivisionID = &divisionID
	}
	if query.Status != "" {
		status := domain.MemberStatus(query.Status)
		filter.Status = &status
	}

	views, err := s.members.ListViews(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	for i := range views {
		decorateView(&views[i])
	}
	return views, nil
}

// GetMember fetches a single member view. Identifiers that do not resolve
// to a row, including non-numeric ones, yield not-found.
func (s *MemberService) GetMember(ctx context.Context, idParam string) (*domain.MemberView, error) {
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperrors.NewNotFound("Anggota tidak ditemukan", nil)
	}

	view, err := s.members.GetViewByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("Anggota tidak ditemukan", nil)
		}
		return nil, apperrors.MapError(err)
	}
	decorateView(view)
	return view, nil
}

// UpdateStatus transitions a member between Active and Inactive. Validation
// order: status literal, then identifier, then existence. The update itself
// binds both values as parameters.
func (s *MemberService) UpdateStatus(ctx context.Context, idParam, statusParam string) (*domain.MemberStatusChange, error) {
	status := domain.MemberStatus(statusParam)
	if !status.Valid() {
		return nil, apperrors.NewValidationError("Status tidak valid. Gunakan 'Active' atau 'Inactive'", map[string]any{
			"receivedStatus": statusParam,
		})
	}

	id, err := parseMemberID(idParam)
	if err != nil {
		return nil, err
	}

	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("Anggota tidak ditemukan", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if err := s.members.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// record disappeared between the existence check and the update
			return nil, apperrors.NewNotFound("Gagal mengubah status anggota", nil)
		}
		return nil, apperrors.MapError(err)
	}

	change := &domain.MemberStatusChange{
		MemberID:   id,
		MemberName: member.Name,
		OldStatus:  member.Status,
		NewStatus:  status,
	}
	s.publish(ctx, events.Event{
		Type:     events.EventMemberStatusChanged,
		MemberID: id,
		Payload: events.MemberStatusChangedPayload{
			OldStatus: change.OldStatus,
			NewStatus: change.NewStatus,
		},
	})
	return change, nil
}

// DeleteMember removes a member row and its linked user account atomically.
func (s *MemberService) DeleteMember(ctx context.Context, idParam string) (*domain.DeletedMember, error) {
	id, err := parseMemberID(idParam)
	if err != nil {
		return nil, err
	}

	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("Anggota tidak ditemukan", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if err := s.members.Delete(ctx, id, member.UserID); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:     events.EventMemberDeleted,
		MemberID: id,
		Payload: events.MemberDeletedPayload{
			Name:           member.Name,
			AccountRemoved: member.UserID != nil,
		},
	})
	return &domain.DeletedMember{ID: id, Name: member.Name}, nil
}

func (s *MemberService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

func parseMemberID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("ID anggota tidak valid", map[string]any{
			"receivedId": raw,
		})
	}
	return id, nil
}

func decorateView(view *domain.MemberView) {
	if view.Photo != nil {
		normalized := normalizePhotoPath(*view.Photo)
		view.Photo = &normalized
	}
	if view.Status == "" {
		view.Status = domain.MemberStatusActive
	}
}

// normalizePhotoPath strips leading slashes and a redundant "public/"
// segment, then guarantees the uploads/ prefix. Idempotent.
func normalizePhotoPath(path string) string {
	clean := strings.TrimLeft(path, "/")
	clean = strings.TrimPrefix(clean, "public/")
	if !strings.HasPrefix(clean, uploadPrefix) {
		clean = uploadPrefix + clean
	}
	return clean
}
