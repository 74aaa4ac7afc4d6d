package auth

import (
	"bytes"
	"context"
	"testing"
	"time"

	pkgAuth "github.com/emberwick/storefront-api/pkg/auth"
	"github.com/emberwick/storefront-api/pkg/config"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
	"github.com/emberwick/storefront-api/pkg/security"
)

var fastArgon = config.PasswordConfig{
	ArgonMemoryKB:    8,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     16,
	ArgonKeyLen:      32,
}

var jwtCfg = config.JWTConfig{Secret: "test-secret", Issuer: "emberwick", ExpirationMinutes: 30}

func newAuthService(t *testing.T, logs *bytes.Buffer) Service {
	t.Helper()
	hash, err := security.HashPassword("correct horse", fastArgon)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	svc, err := NewService(ServiceParams{
		Admin:     config.AdminConfig{Email: "Owner@Emberwick.test", PasswordHash: hash},
		JWTConfig: jwtCfg,
		Password:  fastArgon,
		Logger:    logger.New(logger.Options{ServiceName: "test", Output: logs}),
		Now:       func() time.Time { return time.Now() },
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestAdminLoginSuccess(t *testing.T) {
	svc := newAuthService(t, &bytes.Buffer{})

	resp, err := svc.AdminLogin(context.Background(), LoginRequest{Email: " owner@emberwick.test ", Password: "correct horse"})
	if err != nil {
		t.Fatalf("expected login to succeed: %v", err)
	}
	if resp.TokenType != "Bearer" || resp.AccessToken == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	claims, err := pkgAuth.ParseAdminToken(jwtCfg, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse minted token: %v", err)
	}
	if claims.Email != "owner@emberwick.test" || claims.Role != pkgAuth.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	logs := &bytes.Buffer{}
	svc := newAuthService(t, logs)

	cases := []LoginRequest{
		{Email: "owner@emberwick.test", Password: "wrong"},
		{Email: "intruder@emberwick.test", Password: "correct horse"},
		{Email: "", Password: "correct horse"},
	}
	for _, req := range cases {
		_, err := svc.AdminLogin(context.Background(), req)
		if !pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
			t.Fatalf("expected unauthorized for %+v, got %v", req, err)
		}
	}
	if !bytes.Contains(logs.Bytes(), []byte("admin login rejected")) {
		t.Fatalf("expected rejection to be logged, got %s", logs.String())
	}
}

func TestNewServiceRequiresAdminAccount(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test", Output: &bytes.Buffer{}})
	if _, err := NewService(ServiceParams{Logger: logg}); err == nil {
		t.Fatal("expected missing admin email to fail")
	}
	if _, err := NewService(ServiceParams{Admin: config.AdminConfig{Email: "a@b.c"}, Logger: logg}); err == nil {
		t.Fatal("expected missing hash to fail")
	}
}
