package dto

import "time"

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AccountResponse describes the authenticated account.
type AccountResponse struct {
	ID    int64   `json:"id"`
	Email string  `json:"email"`
	Role  *string `json:"role"`
}
