package models

// Session is the per-browser session context passed to views and clients.
type Session struct {
	ID    string // Opaque session identifier carried in the signed cookie
	Token string // API token; empty when signed out
}

// Authenticated reports whether a token is present. Validity is never checked.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
