package session

import (
	"sync"
)

// SnapshotStore persists the non-sensitive identity projection between
// application loads. Implementations must tolerate Clear on an already
// empty store.
type SnapshotStore interface {
	// Save replaces the persisted snapshot.
	Save(identity Identity) error

	// Load returns the persisted snapshot; ok is false when none exists.
	Load() (identity Identity, ok bool, err error)

	// Clear removes the persisted snapshot.
	Clear() error
}

// MemorySnapshotStore implements SnapshotStore in process memory. Used in
// tests and when persistence across loads is not wanted.
type MemorySnapshotStore struct {
	mu       sync.RWMutex
	identity *Identity
}

// NewMemorySnapshotStore creates an empty in-memory snapshot store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (m *MemorySnapshotStore) Save(identity Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = &identity
	return nil
}

func (m *MemorySnapshotStore) Load() (Identity, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.identity == nil {
		return Identity{}, false, nil
	}
	return *m.identity, true, nil
}

func (m *MemorySnapshotStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = nil
	return nil
}
