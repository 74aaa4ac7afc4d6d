package gcp

import (
	"testing"

	"github.com/emberwick/storefront-api/pkg/config"
)

func TestClientOptions(t *testing.T) {
	if opts := ClientOptions(config.GCPConfig{}); len(opts) != 0 {
		t.Fatalf("expected no options without credentials, got %d", len(opts))
	}
	if opts := ClientOptions(config.GCPConfig{CredentialsJSON: `{"type":"service_account"}`}); len(opts) != 1 {
		t.Fatalf("expected json credentials option, got %d", len(opts))
	}
	if opts := ClientOptions(config.GCPConfig{ApplicationCredentials: "/tmp/sa.json"}); len(opts) != 1 {
		t.Fatalf("expected file credentials option, got %d", len(opts))
	}
}
