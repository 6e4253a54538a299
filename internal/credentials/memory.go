package credentials

import (
	"context"
	"sync"

	gitrunnererrors "github.com/NicabarNimble/go-gitrunner/internal/errors"
)

// MemoryStore provides an in-memory implementation of the Store interface.
// This implementation is primarily intended for testing and as a reference
// implementation. Records are lost when the program exits.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Credentials
}

// NewMemoryStore creates a new instance of MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Credentials),
	}
}

// Store implements Store.Store
func (m *MemoryStore) Store(_ context.Context, name string, creds Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !IsValid(creds) {
		return gitrunnererrors.ErrCredentialInvalid
	}

	m.records[name] = creds
	return nil
}

// Retrieve implements Store.Retrieve
func (m *MemoryStore) Retrieve(_ context.Context, name string) (Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	creds, exists := m.records[name]
	if !exists {
		return Credentials{}, gitrunnererrors.ErrCredentialNotFound
	}

	return creds, nil
}

// Delete implements Store.Delete
func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, name)
	return nil
}

// List implements Store.List
func (m *MemoryStore) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.records))
	for name := range m.records {
		names = append(names, name)
	}
	return names, nil
}
