package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/emberwick/storefront-api/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// MintAdminToken issues a signed JWT for the provided payload using the configured TTL.
func MintAdminToken(cfg config.JWTConfig, now time.Time, payload AdminTokenPayload) (string, time.Time, error) {
	if cfg.Secret == "" {
		return "", time.Time{}, fmt.Errorf("jwt secret is required")
	}
	if cfg.Issuer == "" {
		return "", time.Time{}, fmt.Errorf("jwt issuer is required")
	}
	if cfg.ExpirationMinutes <= 0 {
		return "", time.Time{}, fmt.Errorf("jwt expiration minutes must be positive")
	}
	email := strings.TrimSpace(payload.Email)
	if email == "" {
		return "", time.Time{}, fmt.Errorf("admin email is required")
	}
	role := payload.Role
	if role == "" {
		role = RoleAdmin
	}
	if role != RoleAdmin {
		return "", time.Time{}, fmt.Errorf("invalid admin role %q", payload.Role)
	}

	expiresAt := now.Add(time.Duration(cfg.ExpirationMinutes) * time.Minute)

	jti := strings.TrimSpace(payload.JTI)
	if jti == "" {
		jti = uuid.NewString()
	}

	claims := AdminTokenClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing jwt: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseAdminToken validates the JWT string and returns typed claims.
func ParseAdminToken(cfg config.JWTConfig, tokenString string) (*AdminTokenClaims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	claims := &AdminTokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if claims.Role != RoleAdmin {
		return nil, fmt.Errorf("token role %q is not allowed", claims.Role)
	}

	return claims, nil
}
