package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gsjs-tp/volunteer-service/internal/api/dto"
	"github.com/gsjs-tp/volunteer-service/internal/service"
	apperrors "github.com/gsjs-tp/volunteer-service/pkg/util/errorutil"
)

// AuthHandler exposes admin login.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	account, token, exp, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"account": dto.AccountResponse{
				ID:    account.ID,
				Email: account.Email,
				Role:  account.RoleName,
			},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}
