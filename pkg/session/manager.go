package session

import (
	"errors"
	"sync"

	"github.com/whalekit/strategist/pkg/models"
)

// ErrSessionNotFound is returned when a session id matches no live session.
var ErrSessionNotFound = errors.New("session not found")

// Manager is an in-memory registry of live wizard sessions. Each client
// context owns exactly one session; nothing is shared across sessions and
// nothing survives a process restart.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Store
}

// NewManager creates an empty session registry.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Store),
	}
}

// Create registers a fresh session store and returns it.
func (m *Manager) Create() *Store {
	store := NewStore()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[store.ID()] = store

	return store
}

// Get returns the live session with the given id.
func (m *Manager) Get(id string) (*Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	store, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return store, nil
}

// Delete drops the session with the given id.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}

	delete(m.sessions, id)

	return nil
}

// List returns a snapshot of every live session.
func (m *Manager) List() []models.Session {
	m.mu.RLock()
	stores := make([]*Store, 0, len(m.sessions))

	for _, store := range m.sessions {
		stores = append(stores, store)
	}
	m.mu.RUnlock()

	snapshots := make([]models.Session, 0, len(stores))

	for _, store := range stores {
		snapshots = append(snapshots, store.Snapshot())
	}

	return snapshots
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
