package domain

// SessionState type
type SessionState string

const (
	// SessionStateAnonymous const
	SessionStateAnonymous SessionState = "ANONYMOUS"
	// SessionStateAuthenticated const
	SessionStateAuthenticated SessionState = "AUTHENTICATED"
)

// Session represents the client's authentication state.
// Principal is an opaque identifier standing in for the user; the login
// token is the identifier itself. Both fields are persisted and cleared together.
type Session struct {
	Principal     string `json:"principal"`
	Authenticated bool   `json:"authenticated"`
}

// State returns the state machine position of the session
func (s Session) State() SessionState {
	if s.Authenticated && s.Principal != "" {
		return SessionStateAuthenticated
	}
	return SessionStateAnonymous
}

// IsAuthenticated reports whether the session holds a usable principal
func (s Session) IsAuthenticated() bool {
	return s.State() == SessionStateAuthenticated
}
