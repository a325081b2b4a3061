package interfaces

import domaintypes "micromarket/internal/domain/types"

// SessionStore persists the bearer token and user record across runs.
//
// The two entries are written together and removed together; a healthy
// store is never partially populated.
type SessionStore interface {
	// SaveSession writes both entries.
	SaveSession(token string, user domaintypes.User) error
	// LoadSession reads the stored record. A missing record yields
	// ("", nil, nil). A stored user entry that fails to parse yields
	// ErrMalformedStoredSession so the caller can discard the record.
	LoadSession() (token string, user *domaintypes.User, err error)
	// ClearSession removes both entries. Idempotent.
	ClearSession() error
}
