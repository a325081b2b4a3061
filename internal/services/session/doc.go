// Package session owns the client's authentication state.
//
// It performs login and registration against the backend, persists the
// resulting token and user record through the session store, restores them
// at startup, and exposes read access for the rest of the CLI.
package session
