package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kamataryo/sandbox-same-site-cookies/handler"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/requestid"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/site"
)

var stateKey = handler.NewContextKey("auth.request_state")

// UnknownPolicy is shown as the sameSite view variable for hosts outside the
// registry. Cookies for those hosts carry no SameSite attribute.
const UnknownPolicy = "unspecified"

// RequestState is everything the dispatcher learns about a request before a
// handler runs. It is built once per request and never shared.
type RequestState struct {
	ID       string
	Host     string
	Site     site.Site
	SiteErr  error
	Username string
	Token    string

	// SessionErr is nil iff the presented session validated.
	SessionErr error
}

// Authenticated reports whether the request carried a valid session.
func (st *RequestState) Authenticated() bool {
	return st.SessionErr == nil
}

// KnownSite reports whether Host matched a registry entry.
func (st *RequestState) KnownSite() bool {
	return st.SiteErr == nil
}

// SameSite is the cookie attribute for this origin, empty for unknown hosts.
func (st *RequestState) SameSite() string {
	if !st.KnownSite() {
		return ""
	}
	return st.Site.Policy.String()
}

// SiteName is the registry display name, or the raw host for unknown hosts.
func (st *RequestState) SiteName() string {
	if !st.KnownSite() {
		return st.Host
	}
	return st.Site.Name
}

// State returns the request state stored by the dispatcher middleware.
// Outside that middleware it returns an anonymous state for an unknown host.
func State(ctx context.Context) *RequestState {
	if st, ok := handler.ContextValueOK[*RequestState](ctx, stateKey); ok && st != nil {
		return st
	}
	return &RequestState{
		SiteErr:    site.ErrSiteNotFound,
		SessionErr: errNoState,
	}
}

var errNoState = errors.New("auth.state_missing")

// RequestID returns the id assigned to the current request, if any.
func RequestID(ctx context.Context) string {
	return requestid.FromContext(ctx)
}

// RequestIDExtractor adds request_id to every log record written with a
// request context.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	return requestid.LoggerExtractor(ctx)
}

// newState parses the request and checks the presented session exactly once.
func (s *Service) newState(r *http.Request) *RequestState {
	st := &RequestState{
		ID:   requestid.FromContext(r.Context()),
		Host: r.Host,
	}
	st.Site, st.SiteErr = s.sites.Lookup(r.Host)
	// a missing cookie leaves the field empty and fails validation below
	st.Username, _ = s.cookies.Get(r, UsernameCookie)
	st.Token, _ = s.cookies.Get(r, SessionCookie)
	st.SessionErr = s.sessions.Validate(r.Context(), st.Username, st.Token, st.Host)
	return st
}

// withState stores a fresh RequestState in the request context.
func (s *Service) withState(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := s.newState(r)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), stateKey, st)))
	})
}
