package session

import (
	"fmt"
	"io"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithTokenLength sets the number of characters per token.
func WithTokenLength(n int) Option {
	if n <= 0 {
		panic("WithTokenLength: length must be > 0")
	}
	return func(m *Manager) {
		m.length = n
	}
}

// WithAlphabet sets the characters tokens are drawn from.
// Every character must be a printable ASCII byte allowed in a cookie value.
func WithAlphabet(alphabet string) Option {
	if err := validateAlphabet(alphabet); err != nil {
		panic("WithAlphabet: " + err.Error())
	}
	return func(m *Manager) {
		m.alphabet = alphabet
	}
}

func validateAlphabet(alphabet string) error {
	if alphabet == "" || len(alphabet) > 256 {
		return fmt.Errorf("alphabet length must be in [1, 256], got %d", len(alphabet))
	}
	for i := 0; i < len(alphabet); i++ {
		if !isCookieOctet(alphabet[i]) {
			return fmt.Errorf("character %q is not allowed in a cookie value", alphabet[i])
		}
	}
	return nil
}

// WithOriginBinding scopes each session to the host that issued it.
func WithOriginBinding(enabled bool) Option {
	return func(m *Manager) {
		m.bindOrigin = enabled
	}
}

// WithRandSource replaces crypto/rand as the byte source. Intended for tests.
func WithRandSource(r io.Reader) Option {
	if r == nil {
		panic("WithRandSource: nil reader")
	}
	return func(m *Manager) {
		m.rand = r
	}
}

// isCookieOctet reports whether b may appear unquoted in a cookie value (RFC 6265 cookie-octet).
func isCookieOctet(b byte) bool {
	switch {
	case b == 0x21:
		return true
	case b >= 0x23 && b <= 0x2B:
		return true
	case b >= 0x2D && b <= 0x3A:
		return true
	case b >= 0x3C && b <= 0x5B:
		return true
	case b >= 0x5D && b <= 0x7E:
		return true
	}
	return false
}
