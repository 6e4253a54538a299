package credentials

import (
	"context"
)

// Store defines the interface for credential storage implementations
type Store interface {
	// Store saves a credential record under the given name
	// If a record already exists for the name, it will be overwritten
	Store(ctx context.Context, name string, creds Credentials) error

	// Retrieve gets a credential record by its name
	// Returns ErrCredentialNotFound if the record doesn't exist
	Retrieve(ctx context.Context, name string) (Credentials, error)

	// Delete removes a credential record by its name
	// Returns nil if the record was successfully deleted or didn't exist
	Delete(ctx context.Context, name string) error

	// List returns all stored record names
	// The returned slice will be empty if no records are stored
	List(ctx context.Context) ([]string, error)
}

// IsValid performs basic validation of a credential record
func IsValid(creds Credentials) bool {
	// A username alone is enough; some remotes take token-as-username
	return creds.Username != "" || creds.Password != ""
}
