package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"micromarket/internal/domain"
)

const (
	loginFallback    = "Login failed"
	registerFallback = "Registration failed"
)

// Service is the authoritative in-process holder of authentication state and
// the sole writer of the durable session record.
//
// The in-memory snapshot is guarded by a mutex. Racing Login against Logout
// is last-completion-wins; acceptable for a single-user client and not
// coordinated further here.
type Service struct {
	store   domain.SessionStore
	backend domain.BackendClient
	log     zerolog.Logger

	mu      sync.RWMutex
	current domain.Session
	loading bool
}

// New returns a Service backed by the given store and backend client. The
// loading flag starts true and is cleared by the first Restore call.
func New(store domain.SessionStore, backend domain.BackendClient, log zerolog.Logger) *Service {
	return &Service{store: store, backend: backend, log: log, loading: true}
}

// Login exchanges credentials for a bearer token, fetches the profile it
// belongs to, and persists both.
//
// The backend returns only a token, so a follow-up authenticated profile
// fetch completes the session. On any failure the state is unchanged and the
// error carries a display-ready message: the backend's detail when present,
// else "Login failed".
func (s *Service) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return &domain.AuthError{Message: "email and password are required"}
	}

	token, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.log.Debug().Err(err).Str("email", email).Msg("login rejected")
		return domain.AuthFailure(loginFallback, err)
	}
	user, err := s.backend.Me(ctx, token)
	if err != nil {
		return domain.AuthFailure(loginFallback, err)
	}

	if err := s.store.SaveSession(token, user); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.current = domain.Session{Token: token, User: &user}
	s.mu.Unlock()

	s.log.Info().Str("user_id", user.ID.String()).Str("role", user.Role.String()).Msg("logged in")
	return nil
}

// Register creates an account, then logs in with the same credentials;
// registration alone does not authenticate.
func (s *Service) Register(
	ctx context.Context,
	name, email, password string,
	role domain.Role,
) error {
	if name == "" || email == "" || password == "" {
		return &domain.AuthError{Message: "name, email and password are required"}
	}
	if !role.Valid() {
		return &domain.AuthError{
			Message: fmt.Sprintf("role must be %q or %q", domain.RoleVendor, domain.RoleSupplier),
		}
	}

	if err := s.backend.Register(ctx, name, email, password, role); err != nil {
		s.log.Debug().Err(err).Str("email", email).Msg("registration rejected")
		return domain.AuthFailure(registerFallback, err)
	}
	return s.Login(ctx, email, password)
}

// Logout clears the in-memory state and removes the durable record. Safe to
// call when already logged out.
func (s *Service) Logout() error {
	s.mu.Lock()
	s.current = domain.Session{}
	s.mu.Unlock()
	return s.store.ClearSession()
}

// Restore adopts the persisted session, once, at startup.
//
// A malformed stored user record is discarded (both entries removed) and the
// client starts unauthenticated; corruption is never surfaced as a
// user-facing failure. The loading flag is cleared exactly once on every
// path.
func (s *Service) Restore() error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, user, err := s.store.LoadSession()
	if errors.Is(err, domain.ErrMalformedStoredSession) {
		s.log.Warn().Err(err).Msg("discarding unreadable session record")
		return s.store.ClearSession()
	}
	if err != nil {
		return fmt.Errorf("read session record: %w", err)
	}
	if token == "" {
		// Sweep any orphaned user entry; no-op on a healthy empty store.
		return s.store.ClearSession()
	}
	if user == nil {
		// A token without user data must not surface as authenticated.
		return s.store.ClearSession()
	}

	s.mu.Lock()
	s.current = domain.Session{Token: token, User: user}
	s.mu.Unlock()
	return nil
}

// Current returns a snapshot of the session state.
func (s *Service) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.current
	if snap.User != nil {
		u := *snap.User
		snap.User = &u
	}
	return snap
}

// Token returns the active bearer token, if any.
func (s *Service) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token, s.current.Authenticated()
}

// IsAuthenticated reports whether a user is logged in.
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Authenticated()
}

// Loading reports whether the initial restore is still pending.
func (s *Service) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)

// Compile-time assertion that Service can hand tokens to the cart.
var _ domain.TokenSource = (*Service)(nil)
