package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamataryo/sandbox-same-site-cookies/modules/auth"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/cookie"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/credentials"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/session"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/site"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	store := credentials.New(map[string]string{"guest": "guest"})
	sessions := session.New(store)
	cfg := auth.DefaultConfig()
	cfg.StrictLogout = false
	cfg.LoginHint = "guest:guest"

	svc := auth.NewFromConfig(cfg, store, sessions, site.Default(), stubViews(),
		auth.WithCookieManager(cookie.New(cookie.WithMaxAge(60), cookie.WithPath("/demo"))),
	)
	f := &fixture{t: t, store: store, sessions: sessions, handler: svc.Handle()}

	assert.Equal(t, "[login] guest:guest", f.do(http.MethodGet, "/login", "lax.test", "", nil).Body.String())

	w := f.login("lax.test", "guest", "guest")
	assert.Equal(t, "Username=guest; Max-Age=60; Path=/demo; SameSite=Lax", w.Header().Values("Set-Cookie")[1])

	logout := f.do(http.MethodGet, "/logout", "lax.test", "", nil)
	assert.Equal(t, http.StatusOK, logout.Code, "lenient logout")
}

func TestNew_Panics(t *testing.T) {
	t.Parallel()

	store := credentials.New(nil)
	assert.Panics(t, func() { auth.New(nil, session.New(store), site.Default(), stubViews()) })
	assert.Panics(t, func() { auth.WithMaxBodyBytes(0) })
	assert.Panics(t, func() { auth.WithMaxBodyBytes(-1) })
	assert.NotPanics(t, func() { auth.WithTrustProxy(true) })
	assert.Panics(t, func() { auth.WithCookieManager(nil) })
}
