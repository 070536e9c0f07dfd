package auth

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// MemoryStore keeps session state for the lifetime of the process. Used in
// tests and anywhere persistence across restarts is unwanted.
type MemoryStore struct {
	state *SessionState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (*SessionState, error) {
	if m.state == nil {
		return nil, nil
	}
	copied := *m.state
	return &copied, nil
}

func (m *MemoryStore) Save(state SessionState) error {
	m.state = &state
	return nil
}

func (m *MemoryStore) Clear() error {
	m.state = nil
	return nil
}

// FileStore keeps session state as a JSON file, mode 0600 since it holds a
// bearer token.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() (*SessionState, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading session file %s", f.path)
	}

	var state SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		// A corrupt session file means signed out, not a broken app.
		return nil, nil
	}
	return &state, nil
}

func (f *FileStore) Save(state SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "encoding session state")
	}
	if err := os.WriteFile(f.path, raw, 0600); err != nil {
		return errors.Wrapf(err, "writing session file %s", f.path)
	}
	return nil
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing session file %s", f.path)
	}
	return nil
}
