package session

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"io"

	"github.com/kamataryo/sandbox-same-site-cookies/pkg/credentials"
)

const (
	// DefaultTokenLength is the number of characters in a token
	DefaultTokenLength = 16

	// DefaultAlphabet is the lowercase hex alphabet
	DefaultAlphabet = "abcdef0123456789"
)

// Manager issues, validates and revokes session tokens against a Store.
type Manager struct {
	store      Store
	length     int
	alphabet   string
	bindOrigin bool
	rand       io.Reader
}

// New creates a session manager over store.
func New(store Store, opts ...Option) *Manager {
	if store == nil {
		panic("session: store is required")
	}

	m := &Manager{
		store:    store,
		length:   DefaultTokenLength,
		alphabet: DefaultAlphabet,
		rand:     rand.Reader,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Issue generates a token for username, stores it together with origin and
// returns it. Any previous token for the user stops validating.
func (m *Manager) Issue(ctx context.Context, username, origin string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	token, err := m.generateToken()
	if err != nil {
		return "", err
	}

	if err := m.store.SetSession(username, token, origin); err != nil {
		if errors.Is(err, credentials.ErrUnknownUser) {
			return "", errors.Join(ErrUnknownUser, err)
		}
		return "", err
	}

	return token, nil
}

// Validate returns nil when token is the current session of username and,
// with origin binding enabled, origin matches the issuing host.
// Every other outcome is ErrSessionInvalid.
func (m *Manager) Validate(ctx context.Context, username, token, origin string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if username == "" || token == "" {
		return ErrSessionInvalid
	}

	sess, ok := m.store.Session(username)
	if !ok || sess.Token == "" {
		return ErrSessionInvalid
	}

	if subtle.ConstantTimeCompare([]byte(sess.Token), []byte(token)) != 1 {
		return ErrSessionInvalid
	}

	if m.bindOrigin && sess.Origin != origin {
		return ErrSessionInvalid
	}

	return nil
}

// Revoke deletes the session of username. Revoking a user without a session
// is a no-op.
func (m *Manager) Revoke(ctx context.Context, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := m.store.ClearSession(username); err != nil {
		if errors.Is(err, credentials.ErrUnknownUser) {
			return errors.Join(ErrUnknownUser, err)
		}
		return err
	}
	return nil
}

// OriginBinding reports whether sessions are scoped to their issuing host.
func (m *Manager) OriginBinding() bool {
	return m.bindOrigin
}

// Unbiased reports whether the byte-to-character mapping is uniform.
// Tokens map each random byte b to alphabet[b % len(alphabet)], which only
// yields a uniform distribution when len(alphabet) divides 256.
func (m *Manager) Unbiased() bool {
	return 256%len(m.alphabet) == 0
}

// generateToken draws length random bytes and maps each onto the alphabet.
// Not a general-purpose unbiased sampler; see Unbiased.
func (m *Manager) generateToken() (string, error) {
	buf := make([]byte, m.length)
	if _, err := io.ReadFull(m.rand, buf); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}

	n := len(m.alphabet)
	for i, b := range buf {
		buf[i] = m.alphabet[int(b)%n]
	}
	return string(buf), nil
}
