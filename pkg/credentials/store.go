package credentials

import (
	"crypto/subtle"
	"slices"
	"sync"
)

// Session is the server-side record of a successful login.
type Session struct {
	Token  string
	Origin string
}

// User is a registered identity together with its current session, if any.
type User struct {
	Username string
	Password string
	Session  *Session
}

// HasSession reports whether the user currently holds a session token.
func (u User) HasSession() bool {
	return u.Session != nil && u.Session.Token != ""
}

// Store is a concurrency-safe in-memory user table.
type Store struct {
	mu    sync.RWMutex
	users map[string]*User
}

// New creates a store seeded with username/password pairs.
func New(users map[string]string) *Store {
	s := &Store{users: make(map[string]*User, len(users))}
	for name, password := range users {
		s.users[name] = &User{Username: name, Password: password}
	}
	return s
}

// Lookup returns a copy of the user record.
func (s *Store) Lookup(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return User{}, false
	}
	return copyUser(u), true
}

// Authenticate checks the password for username.
func (s *Store) Authenticate(username, password string) error {
	s.mu.RLock()
	u, ok := s.users[username]
	var stored string
	if ok {
		stored = u.Password
	}
	s.mu.RUnlock()

	if !ok {
		return ErrUnknownUser
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return ErrCredentialMismatch
	}
	return nil
}

// SetSession replaces the user's session token and bound origin.
func (s *Store) SetSession(username, token, origin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return ErrUnknownUser
	}
	u.Session = &Session{Token: token, Origin: origin}
	return nil
}

// ClearSession removes the user's session. Clearing an anonymous user is a no-op.
func (s *Store) ClearSession(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return ErrUnknownUser
	}
	u.Session = nil
	return nil
}

// Session returns a copy of the user's current session.
func (s *Store) Session(username string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok || u.Session == nil {
		return Session{}, false
	}
	return *u.Session, true
}

// Users returns the registered usernames in sorted order.
func (s *Store) Users() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.users))
	for name := range s.users {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func copyUser(u *User) User {
	c := *u
	if u.Session != nil {
		sess := *u.Session
		c.Session = &sess
	}
	return c
}
