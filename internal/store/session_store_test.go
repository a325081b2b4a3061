package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"micromarket/internal/domain"
	"micromarket/internal/store"
)

func TestSession_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()

	var s domain.SessionStore = store.NewSessionFileStore(home)

	user := domain.User{ID: "1", Email: "a@x.com", Name: "A", Role: domain.RoleVendor}
	if err := s.SaveSession("T1", user); err != nil {
		t.Fatalf("save session: %v", err)
	}

	token, got, err := s.LoadSession()
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if token != "T1" {
		t.Fatalf("token = %q, want %q", token, "T1")
	}
	if got == nil || got.ID != user.ID || got.Email != user.Email || got.Role != user.Role {
		t.Fatalf("user mismatch after load: %+v", got)
	}
}

func TestSession_LoadEmpty(t *testing.T) {
	var s domain.SessionStore = store.NewSessionFileStore(t.TempDir())

	token, user, err := s.LoadSession()
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if token != "" || user != nil {
		t.Fatalf("expected empty record, got token=%q user=%+v", token, user)
	}
}

func TestSession_Clear_RemovesBothEntries(t *testing.T) {
	home := t.TempDir()
	s := store.NewSessionFileStore(home)

	if err := s.SaveSession("T1", domain.User{ID: "1"}); err != nil {
		t.Fatalf("save session: %v", err)
	}
	if err := s.ClearSession(); err != nil {
		t.Fatalf("clear session: %v", err)
	}

	for _, name := range []string{"token", "user.json"} {
		if _, err := os.Stat(filepath.Join(home, name)); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("%s still present after clear", name)
		}
	}

	// Idempotent on an already-empty store.
	if err := s.ClearSession(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestSession_MalformedUser(t *testing.T) {
	home := t.TempDir()
	s := store.NewSessionFileStore(home)

	if err := os.WriteFile(filepath.Join(home, "token"), []byte("T1"), 0o600); err != nil {
		t.Fatalf("write token: %v", err)
	}
	if err := os.WriteFile(filepath.Join(home, "user.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write user: %v", err)
	}

	token, user, err := s.LoadSession()
	if !errors.Is(err, domain.ErrMalformedStoredSession) {
		t.Fatalf("err = %v, want ErrMalformedStoredSession", err)
	}
	if user != nil {
		t.Fatalf("user = %+v, want nil", user)
	}
	if token != "T1" {
		t.Fatalf("token = %q, want the stored token back for diagnostics", token)
	}
}

func TestSession_TokenWithoutUser(t *testing.T) {
	home := t.TempDir()
	s := store.NewSessionFileStore(home)

	if err := os.WriteFile(filepath.Join(home, "token"), []byte("T1"), 0o600); err != nil {
		t.Fatalf("write token: %v", err)
	}

	token, user, err := s.LoadSession()
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if token != "T1" || user != nil {
		t.Fatalf("got token=%q user=%+v", token, user)
	}
}
