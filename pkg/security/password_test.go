package security_test

import (
	"testing"

	"github.com/emberwick/storefront-api/pkg/config"
	"github.com/emberwick/storefront-api/pkg/security"
)

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := config.PasswordConfig{
		ArgonMemoryKB:    32768,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}

	hash, err := security.HashPassword("very-secure-password", cfg)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword returned empty string")
	}

	ok, err := security.VerifyPassword("very-secure-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error for valid hash: %v", err)
	}
	if !ok {
		t.Fatal("VerifyPassword failed for the correct password")
	}

	ok, err = security.VerifyPassword("bogus-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error for invalid password: %v", err)
	}
	if ok {
		t.Fatal("VerifyPassword returned true for incorrect password")
	}
}

func TestVerifyPasswordBadHash(t *testing.T) {
	if _, err := security.VerifyPassword("irrelevant", "not-a-hash"); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}

func TestNeedsRehash(t *testing.T) {
	weak := config.PasswordConfig{ArgonMemoryKB: 8192, ArgonTime: 1, ArgonParallelism: 1, ArgonSaltLen: 16, ArgonKeyLen: 32}
	strong := config.PasswordConfig{ArgonMemoryKB: 65536, ArgonTime: 3, ArgonParallelism: 2, ArgonSaltLen: 16, ArgonKeyLen: 32}

	hash, err := security.HashPassword("candles-all-day", weak)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if security.NeedsRehash(hash, weak) {
		t.Fatal("hash made with current params should not need rehash")
	}
	if !security.NeedsRehash(hash, strong) {
		t.Fatal("hash made with weaker params should need rehash")
	}
	if !security.NeedsRehash("garbage", weak) {
		t.Fatal("malformed hash should need rehash")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := security.HashPassword("", config.PasswordConfig{}); err == nil {
		t.Fatal("expected empty password error")
	}
}
