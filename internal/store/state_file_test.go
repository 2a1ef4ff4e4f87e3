package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DiogoPalharini/mtfa/models"
)

func TestStateFile_SessionSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first, err := NewStateFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session := models.Session{
		User:      models.User{ID: 7, Name: "John", Email: "john@farm.example"},
		Token:     "sess-1",
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
	}
	if err = first.SaveSession(session); err != nil {
		t.Fatalf("save session: %v", err)
	}

	second, err := NewStateFile(path)
	if err != nil {
		t.Fatalf("reload state file: %v", err)
	}

	restored, err := second.Session()
	if err != nil {
		t.Fatalf("read restored session: %v", err)
	}
	if restored.User.Email != session.User.Email || restored.Token != session.Token {
		t.Errorf("restored session differs: %+v", restored)
	}
}

func TestStateFile_MissingSession(t *testing.T) {
	s, err := NewStateFile(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = s.Session(); !errors.Is(err, ErrSessionStateNotFound) {
		t.Fatalf("expected ErrSessionStateNotFound, got %v", err)
	}

	// Clearing when nothing is stored must be a no-op.
	if err = s.ClearSession(); err != nil {
		t.Fatalf("clear on empty state: %v", err)
	}
}

func TestStateFile_LastSyncAtRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewStateFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.LastSyncAt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected zero time before any sync, got %v", got)
	}

	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	if err = s.SetLastSyncAt(at); err != nil {
		t.Fatalf("set last sync: %v", err)
	}

	reloaded, err := NewStateFile(path)
	if err != nil {
		t.Fatalf("reload state file: %v", err)
	}
	got, err = reloaded.LastSyncAt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(at) {
		t.Errorf("expected %v, got %v", at, got)
	}
}
