package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"micromarket/internal/domain"
)

const (
	tokenFile = "token"     // raw bearer string
	userFile  = "user.json" // serialized user record
)

// SessionFileStore persists the bearer token and user record to disk.
//
// The two entries are written together and removed together so the store is
// never partially populated after a healthy operation.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

// SaveSession writes both entries.
func (s *SessionFileStore) SaveSession(token string, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, userFile), raw, 0o600)
}

// LoadSession reads the stored record.
//
// A missing record yields ("", nil, nil). A user entry that fails to parse
// yields domain.ErrMalformedStoredSession; callers discard the record and
// proceed unauthenticated.
func (s *SessionFileStore) LoadSession() (string, *domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rawToken, err := readFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return "", nil, err
	}
	token := strings.TrimSpace(string(rawToken))
	if token == "" {
		return "", nil, nil
	}

	rawUser, err := readFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return token, nil, err
	}
	if rawUser == nil {
		return token, nil, nil
	}
	var user domain.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return token, nil, fmt.Errorf("parse %s: %w", userFile, domain.ErrMalformedStoredSession)
	}
	return token, &user, nil
}

// ClearSession removes both entries. Idempotent.
func (s *SessionFileStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := removeFile(filepath.Join(s.dir, tokenFile)); err != nil {
		return err
	}
	return removeFile(filepath.Join(s.dir, userFile))
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
