package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileSnapshotStore persists the identity snapshot as a JSON file. Writes
// are atomic (temp file plus rename) so a crash mid-write cannot leave a
// truncated snapshot behind.
type FileSnapshotStore struct {
	mu   sync.Mutex
	path string
}

// NewFileSnapshotStore creates a snapshot store writing to path. Parent
// directories are created on first save.
func NewFileSnapshotStore(path string) *FileSnapshotStore {
	return &FileSnapshotStore{path: path}
}

func (f *FileSnapshotStore) Save(identity Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(identity)
	if err != nil {
		return errors.Join(ErrSnapshotWrite, err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Join(ErrSnapshotWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".snapshot-*")
	if err != nil {
		return errors.Join(ErrSnapshotWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Join(ErrSnapshotWrite, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrSnapshotWrite, err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrSnapshotWrite, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrSnapshotWrite, err)
	}
	return nil
}

func (f *FileSnapshotStore) Load() (Identity, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Identity{}, false, nil
		}
		return Identity{}, false, fmt.Errorf("session: read snapshot: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return Identity{}, false, errors.Join(ErrSnapshotDecode, err)
	}
	return identity, true, nil
}

func (f *FileSnapshotStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: remove snapshot: %w", err)
	}
	return nil
}
