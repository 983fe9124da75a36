package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamataryo/sandbox-same-site-cookies/pkg/view"
)

func fragmentViews() *view.Templates {
	return view.FromMap(map[string]string{
		view.Home:             "%loginHeader|%footerLinkList",
		view.HomeUser:         "%loginHeader",
		view.Login:            "[login]",
		view.LoginSuccess:     "[login-success]",
		view.LoginFailed:      "[login-failed]",
		view.Logout:           "[logout]",
		view.BadRequest:       "[400]",
		view.NotFound:         "[404]",
		view.MethodNotAllowed: "[405]",
		view.InternalError:    "[500]",
	})
}

func TestFragments(t *testing.T) {
	t.Parallel()
	f := newFixture(t, fixtureConfig{views: fragmentViews()})

	t.Run("anonymous header and footer", func(t *testing.T) {
		w := f.do(http.MethodGet, "/", "lax.test", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, `<p>You can login with <code>admin:admin</code></p>|`)
		assert.Contains(t, body, `<h2>Switch Site</h2>`)
		for _, tt := range []struct{ host, name, policy string }{
			{"strict.test", "website A", "Strict"},
			{"lax.test", "website B", "Lax"},
			{"none.test", "website C", "None"},
		} {
			assert.Contains(t, body, "<li>"+tt.name+" <code>SameSite="+tt.policy+"</code>")
			assert.Contains(t, body, `<a href="http://`+tt.host+`">GET</a>`)
			assert.Contains(t, body, `<form action="http://`+tt.host+`" method="POST"><button>POST</button></form>`)
		}
	})

	t.Run("login header names user and host", func(t *testing.T) {
		cookies := jar(t, f.login("lax.test", "user1", "user1"))
		w := f.do(http.MethodGet, "/", "lax.test", "", cookies)
		assert.Equal(t,
			`<header style="background:gray;color:white;margin:none"><span>Hello, <em>user1!</em>Your site is lax.test</span></header>`,
			w.Body.String())
	})
}
