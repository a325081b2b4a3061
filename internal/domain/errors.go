package domain

import "errors"

// Sentinel errors shared across services. Wrap with fmt.Errorf("%w") when
// returning so callers can test with errors.Is.
var (
	// ErrAuthenticationRequired rejects a cart mutation attempted without
	// an active session. The cart is left untouched.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrMalformedStoredSession marks a persisted session record that
	// failed to parse. Handled internally by discarding the record; never
	// shown to the user.
	ErrMalformedStoredSession = errors.New("stored session is malformed")
)

// detailer is implemented by transport errors that carry a backend-supplied
// human-readable message.
type detailer interface {
	ErrorDetail() string
}

// AuthFailure wraps err as an AuthError, preferring the backend's own
// message over fallback when the transport error carries one.
func AuthFailure(fallback string, err error) *AuthError {
	msg := fallback
	var d detailer
	if errors.As(err, &d) && d.ErrorDetail() != "" {
		msg = d.ErrorDetail()
	}
	return &AuthError{Message: msg, Err: err}
}

// AuthError is a login or registration failure with a display-ready message:
// the backend's detail when it sent one, else the operation's fallback.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

// MirrorError reports that the backend cart write failed after the local
// mutation was already applied. The local cart stands; callers should treat
// this as a warning, not a failure.
type MirrorError struct {
	Err error
}

func (e *MirrorError) Error() string { return "cart not synced to backend: " + e.Err.Error() }

func (e *MirrorError) Unwrap() error { return e.Err }
