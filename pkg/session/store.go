package session

import "github.com/kamataryo/sandbox-same-site-cookies/pkg/credentials"

// Store is the subset of the credential store the manager mutates.
// *credentials.Store satisfies it.
type Store interface {
	// SetSession replaces the token and bound origin for username
	SetSession(username, token, origin string) error

	// ClearSession removes the session for username
	ClearSession(username string) error

	// Session returns the current session for username
	Session(username string) (credentials.Session, bool)
}
