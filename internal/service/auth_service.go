package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gsjs-tp/volunteer-service/internal/auth"
	"github.com/gsjs-tp/volunteer-service/internal/config"
	"github.com/gsjs-tp/volunteer-service/internal/domain"
	"github.com/gsjs-tp/volunteer-service/internal/repository"
	apperrors "github.com/gsjs-tp/volunteer-service/pkg/util/errorutil"
)

// AuthService authenticates admin user accounts.
type AuthService struct {
	accounts repository.UserAccountRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, accounts repository.UserAccountRepository) *AuthService {
	return &AuthService{
		accounts: accounts,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login verifies credentials and issues a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.UserAccount, string, time.Time, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(account.ID, account.Email, account.RoleName)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return account, token, exp, nil
}
