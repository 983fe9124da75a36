package auth

import (
	"log/slog"

	"github.com/kamataryo/sandbox-same-site-cookies/pkg/cookie"
)

// DefaultMaxBodyBytes caps the login request body.
const DefaultMaxBodyBytes int64 = 1 << 20

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for access logs and auth events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCookieManager overrides the cookie defaults (path and issuance Max-Age).
func WithCookieManager(m *cookie.Manager) Option {
	if m == nil {
		panic("auth: WithCookieManager: nil manager")
	}
	return func(s *Service) { s.cookies = m }
}

// WithStrictLogout toggles the 400 response for logouts without a valid session.
func WithStrictLogout(strict bool) Option {
	return func(s *Service) { s.strictLogout = strict }
}

// WithLoginFailedView toggles the distinct login-failed view.
func WithLoginFailedView(enabled bool) Option {
	return func(s *Service) { s.loginFailedView = enabled }
}

// WithLoginHint sets the credentials advertised to anonymous visitors.
func WithLoginHint(hint string) Option {
	return func(s *Service) { s.loginHint = hint }
}

// WithTrustProxy makes the access log take the client address from
// X-Forwarded-For and X-Real-IP.
func WithTrustProxy(trust bool) Option {
	return func(s *Service) { s.trustProxy = trust }
}

// WithMaxBodyBytes caps the login request body. Panics if n <= 0.
func WithMaxBodyBytes(n int64) Option {
	if n <= 0 {
		panic("auth: WithMaxBodyBytes: n must be > 0")
	}
	return func(s *Service) { s.maxBodyBytes = n }
}
