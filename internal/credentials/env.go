package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	gitrunnererrors "github.com/NicabarNimble/go-gitrunner/internal/errors"
)

const (
	// EnvPrefix is the prefix used for all credential environment variables
	EnvPrefix = "GIT_CREDENTIAL_"
)

// EnvStore implements Store using environment variables. This is the primary
// storage implementation for production use, especially in headless and
// containerized environments. Records are stored as JSON-encoded strings in
// environment variables with the GIT_CREDENTIAL_ prefix.
//
// Example Usage:
//
//	export GIT_CREDENTIAL_ORIGIN='{"Username":"deploy","Password":"s3cret"}'
//
// In Docker:
//
//	docker run -e GIT_CREDENTIAL_ORIGIN='{"Username":"..."}'
type EnvStore struct{}

// NewEnvStore creates a new environment variable-based credential store
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// Store saves a credential record as a JSON-encoded environment variable
func (e *EnvStore) Store(ctx context.Context, name string, creds Credentials) error {
	if !IsValid(creds) {
		return gitrunnererrors.ErrCredentialInvalid
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := os.Setenv(e.FormatEnvKey(name), string(data)); err != nil {
		return fmt.Errorf("failed to set environment variable: %w", err)
	}

	return nil
}

// Retrieve gets a credential record by its name from environment variables
func (e *EnvStore) Retrieve(ctx context.Context, name string) (Credentials, error) {
	data := os.Getenv(e.FormatEnvKey(name))
	if data == "" {
		return Credentials{}, gitrunnererrors.ErrCredentialNotFound
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(data), &creds); err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", gitrunnererrors.ErrCredentialInvalid, err)
	}

	if !IsValid(creds) {
		return Credentials{}, gitrunnererrors.ErrCredentialInvalid
	}

	return creds, nil
}

// Delete removes a credential record by unsetting its environment variable
func (e *EnvStore) Delete(ctx context.Context, name string) error {
	if err := os.Unsetenv(e.FormatEnvKey(name)); err != nil {
		return fmt.Errorf("failed to unset environment variable: %w", err)
	}
	return nil
}

// List returns all stored record names from environment variables
func (e *EnvStore) List(ctx context.Context) ([]string, error) {
	var names []string
	for _, env := range os.Environ() {
		if parts := strings.SplitN(env, "=", 2); len(parts) > 0 {
			key := parts[0]
			if strings.HasPrefix(key, EnvPrefix) {
				names = append(names, strings.TrimPrefix(key, EnvPrefix))
			}
		}
	}
	return names, nil
}

// FormatEnvKey converts a record name into an environment variable name.
// This is exported to allow users to predict and verify variable names.
func (e *EnvStore) FormatEnvKey(name string) string {
	// Uppercase the name and replace any non-alphanumeric characters with underscores
	sanitized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToUpper(name))

	return EnvPrefix + sanitized
}
