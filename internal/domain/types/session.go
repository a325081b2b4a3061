package types

// Session is a point-in-time snapshot of the client's authentication state.
// User is non-nil exactly when Token is non-empty: a token that could not be
// exchanged for user data is treated as absent.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Authenticated reports whether the snapshot represents a logged-in user.
func (s Session) Authenticated() bool { return s.Token != "" && s.User != nil }
