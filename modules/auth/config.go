package auth

// Config holds environment-driven dispatcher settings.
type Config struct {
	// StrictLogout answers a logout without a valid session with the 400 view.
	// When false the logout view is rendered and deletion cookies are sent anyway.
	StrictLogout bool `env:"AUTH_STRICT_LOGOUT" envDefault:"true"`

	// LoginFailedView renders the login-failed view with 401 on bad credentials
	// instead of the login-success view without cookies.
	LoginFailedView bool `env:"AUTH_LOGIN_FAILED_VIEW" envDefault:"false"`

	// LoginHint is the "user:password" pair advertised to anonymous visitors.
	LoginHint string `env:"AUTH_LOGIN_HINT" envDefault:"admin:admin"`

	// TrustProxy reads the client address from proxy headers in access logs.
	TrustProxy bool `env:"AUTH_TRUST_PROXY" envDefault:"false"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		StrictLogout: true,
		LoginHint:    "admin:admin",
	}
}

// NewFromConfig creates a Service from cfg. Extra options run last.
func NewFromConfig(cfg Config, creds Authenticator, sessions SessionManager, sites SiteLookup, views Renderer, opts ...Option) *Service {
	base := []Option{
		WithStrictLogout(cfg.StrictLogout),
		WithLoginFailedView(cfg.LoginFailedView),
		WithTrustProxy(cfg.TrustProxy),
	}
	if cfg.LoginHint != "" {
		base = append(base, WithLoginHint(cfg.LoginHint))
	}
	return New(creds, sessions, sites, views, append(base, opts...)...)
}
