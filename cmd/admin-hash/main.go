package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/emberwick/storefront-api/pkg/config"
	"github.com/emberwick/storefront-api/pkg/logger"
	"github.com/emberwick/storefront-api/pkg/security"
)

// admin-hash reads a password from stdin and prints the Argon2id hash to put in
// STOREFRONT_ADMIN_PASSWORD_HASH. Argon parameters follow the STOREFRONT_ARGON_* settings.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "admin-hash", Output: os.Stderr})

	_ = godotenv.Load()

	var params config.PasswordConfig
	if err := envconfig.Process(config.EnvPrefix, &params); err != nil {
		logg.Error(ctx, "failed to load password settings", err)
		os.Exit(1)
	}

	password, err := readPassword(bufio.NewReader(os.Stdin))
	if err != nil {
		logg.Error(ctx, "failed to read password", err)
		os.Exit(1)
	}

	hash, err := security.HashPassword(password, params)
	if err != nil {
		logg.Error(ctx, "failed to hash password", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

func readPassword(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("no password on stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
