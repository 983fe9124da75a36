package auth

import (
	"context"
	"log/slog"

	"github.com/kamataryo/sandbox-same-site-cookies/handler"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/cookie"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/site"
)

// Cookie names shared with the browser.
const (
	SessionCookie  = "Session-Id"
	UsernameCookie = "Username"
)

// Authenticator checks a username/password pair.
type Authenticator interface {
	Authenticate(username, password string) error
}

// SessionManager issues, validates and revokes session tokens.
type SessionManager interface {
	Issue(ctx context.Context, username, origin string) (string, error)
	Validate(ctx context.Context, username, token, origin string) error
	Revoke(ctx context.Context, username string) error
}

// SiteLookup resolves the serving site for a request host.
type SiteLookup interface {
	Lookup(host string) (site.Site, error)
	All() []site.Site
}

// Renderer is the view collaborator.
type Renderer interface {
	Render(name string, vars map[string]string) ([]byte, error)
}

// Service wires the auth routes to their collaborators.
type Service struct {
	creds    Authenticator
	sessions SessionManager
	sites    SiteLookup
	views    Renderer
	cookies  *cookie.Manager
	log      *slog.Logger

	strictLogout    bool
	loginFailedView bool
	loginHint       string
	maxBodyBytes    int64
	trustProxy      bool

	footer       string
	errorHandler handler.ErrorHandler[handler.Context]
}

// New creates the auth service. All collaborators are required.
func New(creds Authenticator, sessions SessionManager, sites SiteLookup, views Renderer, opts ...Option) *Service {
	if creds == nil || sessions == nil || sites == nil || views == nil {
		panic("auth: credentials, sessions, sites and views are required")
	}

	s := &Service{
		creds:        creds,
		sessions:     sessions,
		sites:        sites,
		views:        views,
		cookies:      cookie.New(),
		log:          slog.New(slog.DiscardHandler),
		strictLogout: true,
		loginHint:    "admin:admin",
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.With(slogComponent)
	s.footer = renderFragment(footerLinks(sites.All()))
	s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
		ErrorPage: s.errorPage,
		RequestID: RequestID,
	})
	return s
}
