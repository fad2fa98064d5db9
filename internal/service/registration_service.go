package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gsjs-tp/volunteer-service/internal/auth"
	"github.com/gsjs-tp/volunteer-service/internal/domain"
	"github.com/gsjs-tp/volunteer-service/internal/events"
	"github.com/gsjs-tp/volunteer-service/internal/mail"
	"github.com/gsjs-tp/volunteer-service/internal/observability"
	"github.com/gsjs-tp/volunteer-service/internal/repository"
	apperrors "github.com/gsjs-tp/volunteer-service/pkg/util/errorutil"
)

// RegistrationInput carries the fields for a new volunteer.
type RegistrationInput struct {
	Name       string
	Email      string
	Position   string
	Contact    string
	Photo      *string
	DivisionID *int64
	RoleID     *int64
}

// RegistrationService creates volunteer accounts: it generates a credential,
// stores the user and member rows atomically, and sends the welcome email.
type RegistrationService struct {
	members    repository.MemberRepository
	accounts   repository.UserAccountRepository
	divisions  repository.DivisionRepository
	mailer     *mail.Dispatcher
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	bcryptCost int
}

// RegistrationDependencies bundles collaborators for the service.
type RegistrationDependencies struct {
	MemberRepo   repository.MemberRepository
	AccountRepo  repository.UserAccountRepository
	DivisionRepo repository.DivisionRepository
	Mailer       *mail.Dispatcher
	Dispatcher   events.Dispatcher
	Metrics      *observability.Metrics
	Logger       *zap.Logger
	BcryptCost   int
}

// NewRegistrationService builds the service.
func NewRegistrationService(deps RegistrationDependencies) *RegistrationService {
	return &RegistrationService{
		members:    deps.MemberRepo,
		accounts:   deps.AccountRepo,
		divisions:  deps.DivisionRepo,
		mailer:     deps.Mailer,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
		bcryptCost: deps.BcryptCost,
	}
}

// RegisterVolunteer creates the user account and member row in one
// transaction, then delivers the welcome email. Email failure does not
// fail the registration; the structured result reports the outcome.
func (s *RegistrationService) RegisterVolunteer(ctx context.Context, input RegistrationInput) (*domain.MemberView, mail.SendResult, error) {
	if input.Name == "" || input.Email == "" {
		return nil, mail.SendResult{}, apperrors.NewValidationError("Nama dan email wajib diisi", nil)
	}

	if existing, err := s.accounts.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, mail.SendResult{}, apperrors.NewConflict("Email sudah terdaftar", map[string]any{"email": input.Email})
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, mail.SendResult{}, apperrors.MapError(err)
	}

	if input.DivisionID != nil {
		if _, err := s.divisions.GetByID(ctx, *input.DivisionID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, mail.SendResult{}, apperrors.NewValidationError("Divisi tidak valid", map[string]any{
					"receivedDivisiId": *input.DivisionID,
				})
			}
			return nil, mail.SendResult{}, apperrors.MapError(err)
		}
	}

	password, err := mail.GeneratePassword(mail.DefaultPasswordLength)
	if err != nil {
		return nil, mail.SendResult{}, apperrors.NewInternalError(err)
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, mail.SendResult{}, apperrors.NewInternalError(err)
	}

	member := &domain.Member{
		Name:       input.Name,
		Photo:      input.Photo,
		DivisionID: input.DivisionID,
		Position:   input.Position,
		Contact:    input.Contact,
		Status:     domain.MemberStatusActive,
	}
	account := &domain.UserAccount{
		Email:        input.Email,
		PasswordHash: hash,
		RoleID:       input.RoleID,
	}
	if err := s.members.CreateWithAccount(ctx, member, account); err != nil {
		return nil, mail.SendResult{}, apperrors.MapError(err)
	}

	view, err := s.members.GetViewByID(ctx, member.ID)
	if err != nil {
		return nil, mail.SendResult{}, apperrors.MapError(err)
	}
	decorateView(view)

	result := s.mailer.SendWelcome(ctx, mail.Volunteer{
		Name:     view.Name,
		Email:    input.Email,
		Role:     stringOrEmpty(view.Role),
		Division: stringOrEmpty(view.Division),
		Position: view.Position,
	}, password)
	s.metrics.RecordMailDelivery(result.Success)
	if !result.Success {
		s.logger.Warn("welcome email not delivered",
			zap.Int64("member_id", member.ID),
			zap.String("error", result.Error))
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventMemberRegistered,
			MemberID:  member.ID,
			Timestamp: time.Now(),
			Payload: events.MemberRegisteredPayload{
				Name:      view.Name,
				Email:     input.Email,
				Division:  stringOrEmpty(view.Division),
				EmailSent: result.Success,
			},
		})
	}

	return view, result, nil
}

func stringOrEmpty(val *string) string {
	if val == nil {
		return ""
	}
	return *val
}
