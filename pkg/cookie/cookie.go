package cookie

import (
	"net/http"
	"strings"
)

const (
	// DefaultMaxAge is one day
	DefaultMaxAge = 86400
	// DefaultPath scopes cookies to the whole origin
	DefaultPath = "/"
)

// Manager builds Set-Cookie directives from a set of default options.
type Manager struct {
	defaults Options
}

func New(opts ...Option) *Manager {
	defaults := Options{
		Path:   DefaultPath,
		MaxAge: DefaultMaxAge,
	}

	return &Manager{
		defaults: applyOptions(defaults, opts),
	}
}

// Issue returns a directive that sets name to value.
func (m *Manager) Issue(name, value string, opts ...Option) Directive {
	options := applyOptions(m.defaults, opts)
	return Directive{
		Name:     name,
		Value:    value,
		MaxAge:   options.MaxAge,
		Path:     options.Path,
		SameSite: options.SameSite,
	}
}

// Expire returns the deletion directive for name: empty value and Max-Age=0.
func (m *Manager) Expire(name string, opts ...Option) Directive {
	options := applyOptions(m.defaults, opts)
	return Directive{
		Name:     name,
		Path:     options.Path,
		SameSite: options.SameSite,
	}
}

// Get returns the value of the named request cookie, or ErrCookieNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	value, ok := FromRequest(r)[name]
	if !ok {
		return "", ErrCookieNotFound
	}
	return value, nil
}

// FromRequest parses every Cookie header on r.
func FromRequest(r *http.Request) map[string]string {
	return Parse(strings.Join(r.Header.Values("Cookie"), "; "))
}
