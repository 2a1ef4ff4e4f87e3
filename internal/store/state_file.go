package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/DiogoPalharini/mtfa/models"
)

// stateFile persists the session mirror and the last-sync-attempt timestamp
// as a small JSON file next to the database. The in-memory copy is the
// authority; every mutation rewrites the whole file.
type stateFile struct {
	path string

	mu    sync.Mutex
	state persistedState
}

type persistedState struct {
	Session    *models.Session `json:"session,omitempty"`
	LastSyncAt *time.Time      `json:"last_sync_at,omitempty"`
}

// NewStateFile loads (or lazily creates) the state file at path.
func NewStateFile(path string) (StateStore, error) {
	s := &stateFile{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *stateFile) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read state file: %w", err)
	}

	var st persistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode state file: %w", err)
	}

	s.state = st
	return nil
}

func (s *stateFile) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

func (s *stateFile) Session() (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Session == nil {
		return models.Session{}, ErrSessionStateNotFound
	}
	return *s.state.Session, nil
}

func (s *stateFile) SaveSession(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Session = &session
	return s.persist()
}

func (s *stateFile) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Session == nil {
		return nil
	}
	s.state.Session = nil
	return s.persist()
}

func (s *stateFile) SetLastSyncAt(t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.LastSyncAt = &t
	return s.persist()
}

func (s *stateFile) LastSyncAt() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.LastSyncAt == nil {
		return time.Time{}, nil
	}
	return *s.state.LastSyncAt, nil
}
