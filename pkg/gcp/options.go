package gcp

import (
	"strings"

	"github.com/emberwick/storefront-api/pkg/config"
	"google.golang.org/api/option"
)

// ClientOptions resolves explicit credentials from config. With neither field set the
// Google clients fall back to application default credentials.
func ClientOptions(cfg config.GCPConfig) []option.ClientOption {
	var opts []option.ClientOption
	switch {
	case strings.TrimSpace(cfg.CredentialsJSON) != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case strings.TrimSpace(cfg.ApplicationCredentials) != "":
		opts = append(opts, option.WithCredentialsFile(cfg.ApplicationCredentials))
	}
	return opts
}
