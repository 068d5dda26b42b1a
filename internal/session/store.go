// internal/session/store.go
package session

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when a session id has no record
var ErrNotFound = errors.New("session not found")

// Store is the key-value persistence behind terminal sessions. Besides
// the session record it carries one cart-snapshot slot per session,
// the hand-off the catalog and cart screens share.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Set(ctx context.Context, s *Session) error
	Clear(ctx context.Context, id string) error

	GetCart(ctx context.Context, id string) ([]byte, error)
	SetCart(ctx context.Context, id string, snapshot []byte) error
	ClearCart(ctx context.Context, id string) error
}

// MemoryStore is an in-process Store for tests and single-terminal
// development runs.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	carts    map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		carts:    make(map[string][]byte),
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) Set(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	delete(m.carts, id)
	return nil
}

func (m *MemoryStore) GetCart(_ context.Context, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.carts[id], nil
}

func (m *MemoryStore) SetCart(_ context.Context, id string, snapshot []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[id] = snapshot
	return nil
}

func (m *MemoryStore) ClearCart(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, id)
	return nil
}
