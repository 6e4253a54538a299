// Package credentials resolves the username/password pair a work item wants
// to use for its remote operations.
//
// Storage Strategy
//
// Stored credential records live in a pluggable Store. Two implementations
// are provided:
//
// 1. Environment Variables (Primary Production Storage):
//   - Recommended for production, headless, and Docker environments
//   - Uses GIT_CREDENTIAL_* prefixed environment variables
//   - No system dependencies or user interaction required
//   - Cross-platform compatible
//
// 2. Memory Storage (Testing/Ephemeral Use):
//   - Suitable for testing and short-lived operations
//   - No persistence between program restarts
//
// Environment Variable Usage:
//
//	export GIT_CREDENTIAL_ORIGIN='{"Username":"deploy","Password":"s3cret"}'
package credentials

import (
	"context"
	"fmt"

	gitrunnererrors "github.com/NicabarNimble/go-gitrunner/internal/errors"
)

// Mode selects where a work item's credentials come from
type Mode string

const (
	// ModeNone performs unauthenticated operations
	ModeNone Mode = "none"

	// ModeStored looks up a named record in the credential store
	ModeStored Mode = "stored"

	// ModeCustom takes username and password directly from the work item
	ModeCustom Mode = "custom"
)

// Credentials is a username/password (or token) pair. Values are held only
// for the duration of a single command build and are never persisted here.
type Credentials struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// Request describes what a single work item asked for
type Request struct {
	Mode     Mode
	Name     string // record name, stored mode only
	Username string // custom mode only
	Password string // custom mode only
}

// Resolver turns a Request into Credentials. Every call re-resolves; there
// is no caching, since the request can vary per item.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver backed by the given store
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the credentials for a request, or nil for ModeNone.
// An unknown mode is treated as ModeNone so items without an authentication
// parameter run unauthenticated.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Credentials, error) {
	switch req.Mode {
	case ModeStored:
		if req.Name == "" {
			return nil, fmt.Errorf("%w: credential name", gitrunnererrors.ErrMissingParameter)
		}
		creds, err := r.store.Retrieve(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("credential %q: %w", req.Name, err)
		}
		return &creds, nil
	case ModeCustom:
		return &Credentials{Username: req.Username, Password: req.Password}, nil
	default:
		return nil, nil
	}
}
