package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kamataryo/sandbox-same-site-cookies/modules/auth"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/credentials"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/session"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/site"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/view"
)

// stubViews renders a marker plus the variables each test cares about.
func stubViews() *view.Templates {
	return view.FromMap(map[string]string{
		view.Home:             "[home] %siteName %sameSite",
		view.HomeUser:         "[home-user] %username %siteName",
		view.Login:            "[login] %loginHint",
		view.LoginSuccess:     "[login-success] %username",
		view.LoginFailed:      "[login-failed]",
		view.Logout:           "[logout]",
		view.BadRequest:       "[400] %status",
		view.NotFound:         "[404] %host",
		view.MethodNotAllowed: "[405]",
		view.InternalError:    "[500]",
	})
}

type fixture struct {
	t        *testing.T
	store    *credentials.Store
	sessions *session.Manager
	handler  http.Handler
}

type fixtureConfig struct {
	bindOrigin bool
	views      auth.Renderer
	opts       []auth.Option
}

func newFixture(t *testing.T, cfg fixtureConfig) *fixture {
	t.Helper()
	store := credentials.New(map[string]string{
		"admin": "admin",
		"user1": "user1",
		"user2": "user2",
	})
	sessions := session.New(store, session.WithOriginBinding(cfg.bindOrigin))
	views := cfg.views
	if views == nil {
		views = stubViews()
	}
	svc := auth.New(store, sessions, site.Default(), views, cfg.opts...)
	return &fixture{t: t, store: store, sessions: sessions, handler: svc.Handle()}
}

// do sends a request with the given Host and cookies.
func (f *fixture) do(method, target, host, body string, cookies map[string]string) *httptest.ResponseRecorder {
	f.t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	r.Host = host

	pairs := make([]string, 0, len(cookies))
	for k, v := range cookies {
		pairs = append(pairs, k+"="+v)
	}
	if len(pairs) > 0 {
		r.Header.Set("Cookie", strings.Join(pairs, "; "))
	}

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, r)
	return w
}

// login posts credentials and returns the response.
func (f *fixture) login(host, username, password string) *httptest.ResponseRecorder {
	f.t.Helper()
	return f.do(http.MethodPost, "/login", host, "username="+username+"&password="+password, nil)
}

// jar returns the name=value pairs set by a response.
func jar(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	out := map[string]string{}
	for _, line := range w.Header().Values("Set-Cookie") {
		first, _, _ := strings.Cut(line, ";")
		name, value, ok := strings.Cut(first, "=")
		require.True(t, ok, "malformed Set-Cookie %q", line)
		out[name] = value
	}
	return out
}
