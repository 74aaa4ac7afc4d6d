package auth

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	pkgAuth "github.com/emberwick/storefront-api/pkg/auth"
	"github.com/emberwick/storefront-api/pkg/config"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
	"github.com/emberwick/storefront-api/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"

// Service defines the behavior needed by the auth controller.
type Service interface {
	AdminLogin(ctx context.Context, req LoginRequest) (*AdminLoginResponse, error)
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Admin     config.AdminConfig
	JWTConfig config.JWTConfig
	Password  config.PasswordConfig
	Logger    *logger.Logger
	Now       func() time.Time
}

type service struct {
	adminEmail   string
	passwordHash string
	jwtCfg       config.JWTConfig
	passwordCfg  config.PasswordConfig
	logg         *logger.Logger
	now          func() time.Time
}

// NewService constructs the admin login service for the single configured account.
func NewService(params ServiceParams) (Service, error) {
	email := normalizeEmail(params.Admin.Email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "admin email is required")
	}
	if strings.TrimSpace(params.Admin.PasswordHash) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "admin password hash is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		adminEmail:   email,
		passwordHash: strings.TrimSpace(params.Admin.PasswordHash),
		jwtCfg:       params.JWTConfig,
		passwordCfg:  params.Password,
		logg:         params.Logger,
		now:          now,
	}, nil
}

func (s *service) AdminLogin(ctx context.Context, req LoginRequest) (*AdminLoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	// Always verify the hash, even for an unknown e-mail.
	valid, err := security.VerifyPassword(req.Password, s.passwordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	emailMatches := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	if !valid || !emailMatches {
		s.logg.Warn(s.logg.WithField(ctx, "email", email), "admin login rejected")
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	if security.NeedsRehash(s.passwordHash, s.passwordCfg) {
		s.logg.Warn(ctx, "admin password hash uses outdated argon2 parameters; regenerate it with admin-hash")
	}

	now := s.now().UTC()
	token, expiresAt, err := pkgAuth.MintAdminToken(s.jwtCfg, now, pkgAuth.AdminTokenPayload{
		Email: s.adminEmail,
		Role:  pkgAuth.RoleAdmin,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	s.logg.Info(s.logg.WithAdmin(ctx, s.adminEmail), "admin login succeeded")
	return &AdminLoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Email:       s.adminEmail,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
