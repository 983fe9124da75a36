package auth

import (
	"errors"
	"net/http"

	"github.com/kamataryo/sandbox-same-site-cookies/handler"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/logger"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/session"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/view"
)

// home serves GET and POST "/": the signed-in view for a valid session,
// the anonymous one otherwise.
func (s *Service) home(ctx handler.Context, _ struct{}) handler.Response {
	st := State(ctx)
	name := view.Home
	if st.Authenticated() {
		name = view.HomeUser
	}
	return s.response(page{view: name, vars: s.vars(st)})
}

func (s *Service) loginForm(ctx handler.Context, _ struct{}) handler.Response {
	return s.response(page{view: view.Login, vars: s.vars(State(ctx))})
}

// login checks the credentials, issues a session bound to the request host
// and sets both cookies with the site's SameSite policy.
func (s *Service) login(ctx handler.Context, req LoginForm) handler.Response {
	st := State(ctx)

	if err := s.creds.Authenticate(req.Username, req.Password); err != nil {
		return s.loginFailed(ctx, st, req.Username, err)
	}

	token, err := s.sessions.Issue(ctx, req.Username, st.Host)
	if err != nil {
		if errors.Is(err, session.ErrUnknownUser) {
			return s.loginFailed(ctx, st, req.Username, err)
		}
		return handler.Fail(err)
	}

	s.log.InfoContext(ctx, "login succeeded",
		logger.Username(req.Username),
		logger.Host(st.Host),
		logger.SameSite(st.SameSite()),
		logger.Event("login"),
	)

	v := s.vars(st)
	s.authenticate(v, req.Username, st.Host)
	return s.response(page{
		view:    view.LoginSuccess,
		vars:    v,
		cookies: s.sessionCookies(st, req.Username, token),
	})
}

// loginFailed never tells unknown users and wrong passwords apart.
// By default it answers with the success view and no cookies; the distinct
// failure view is opt-in.
func (s *Service) loginFailed(ctx handler.Context, st *RequestState, username string, err error) handler.Response {
	s.log.WarnContext(ctx, "login failed",
		logger.Username(username),
		logger.Host(st.Host),
		logger.Error(err),
		logger.Event("login_failed"),
	)

	if s.loginFailedView {
		return s.response(page{
			view:   view.LoginFailed,
			vars:   s.vars(st),
			status: http.StatusUnauthorized,
		})
	}
	return s.response(page{view: view.LoginSuccess, vars: s.vars(st)})
}

// logout revokes a valid session and deletes both cookies. Without a valid
// session it answers 400 in strict mode and is a no-op logout otherwise.
func (s *Service) logout(ctx handler.Context, _ struct{}) handler.Response {
	st := State(ctx)

	if !st.Authenticated() {
		if s.strictLogout {
			return handler.Fail(errors.Join(handler.ErrBadRequest, st.SessionErr))
		}
		return s.response(page{
			view:    view.Logout,
			vars:    s.vars(st),
			cookies: s.expiredCookies(st),
		})
	}

	if err := s.sessions.Revoke(ctx, st.Username); err != nil {
		return handler.Fail(err)
	}

	s.log.InfoContext(ctx, "logout",
		logger.Username(st.Username),
		logger.Host(st.Host),
		logger.Event("logout"),
	)

	// the page reflects the state after logout
	after := *st
	after.SessionErr = session.ErrSessionInvalid
	return s.response(page{
		view:    view.Logout,
		vars:    s.vars(&after),
		cookies: s.expiredCookies(st),
	})
}

func (s *Service) notFound(handler.Context, struct{}) handler.Response {
	return handler.Fail(handler.ErrNotFound)
}

func (s *Service) methodNotAllowed(handler.Context, struct{}) handler.Response {
	return handler.Fail(handler.ErrMethodNotAllowed)
}
