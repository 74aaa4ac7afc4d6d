package auth

import "time"

// LoginRequest captures the credentials sent to the admin login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse carries the bearer token for back-office calls.
type AdminLoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Email       string    `json:"email"`
}
