package auth

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/kamataryo/sandbox-same-site-cookies/handler"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/cookie"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/view"
)

// page is the outcome of a route: a view, its variables, a status and the
// cookies to set.
type page struct {
	view    string
	vars    map[string]string
	status  int
	cookies []cookie.Directive
}

// response turns p into a handler.Response rendered through the view collaborator.
func (s *Service) response(p page) handler.Response {
	opts := make([]handler.TemplOption, 0, len(p.cookies)+1)
	opts = append(opts, handler.WithStatus(p.status))
	for _, d := range p.cookies {
		opts = append(opts, handler.WithHeader("Set-Cookie", d.String()))
	}
	return handler.Templ(view.Component(s.views, p.view, p.vars), opts...)
}

// vars builds the view variables for st. Request-derived values are escaped;
// username is only present for an authenticated request.
func (s *Service) vars(st *RequestState) map[string]string {
	sameSite := st.SameSite()
	if sameSite == "" {
		sameSite = UnknownPolicy
	}

	v := map[string]string{
		"host":           templ.EscapeString(st.Host),
		"siteName":       templ.EscapeString(st.SiteName()),
		"sameSite":       sameSite,
		"footerLinkList": s.footer,
		"loginHint":      templ.EscapeString(s.loginHint),
	}
	if st.Authenticated() {
		s.authenticate(v, st.Username, st.Host)
	} else {
		v["loginHeader"] = renderFragment(anonymousHeader(s.loginHint))
	}
	return v
}

// authenticate switches v to the signed-in variant for username.
func (s *Service) authenticate(v map[string]string, username, host string) {
	v["username"] = templ.EscapeString(username)
	v["loginHeader"] = renderFragment(loginHeader(username, host))
}

// sessionCookies scopes both cookies with the site's SameSite policy.
func (s *Service) sessionCookies(st *RequestState, username, token string) []cookie.Directive {
	policy := cookie.WithSameSite(st.SameSite())
	return []cookie.Directive{
		s.cookies.Issue(SessionCookie, token, policy),
		s.cookies.Issue(UsernameCookie, username, policy),
	}
}

// expiredCookies deletes both cookies: empty value and Max-Age=0.
func (s *Service) expiredCookies(st *RequestState) []cookie.Directive {
	policy := cookie.WithSameSite(st.SameSite())
	return []cookie.Directive{
		s.cookies.Expire(SessionCookie, policy),
		s.cookies.Expire(UsernameCookie, policy),
	}
}

// errorView picks the status page for code.
func errorView(code int) string {
	switch {
	case code == http.StatusNotFound:
		return view.NotFound
	case code == http.StatusMethodNotAllowed:
		return view.MethodNotAllowed
	case code >= 400 && code < 500:
		return view.BadRequest
	default:
		return view.InternalError
	}
}

// errorPage renders the status view for the error handler. The request state
// is read at render time from the request context.
func (s *Service) errorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v := s.vars(State(ctx))
		v["status"] = strconv.Itoa(p.StatusCode)
		v["requestId"] = p.RequestID
		return view.Component(s.views, errorView(p.StatusCode), v).Render(ctx, w)
	})
}
