package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kamataryo/sandbox-same-site-cookies/handler"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/clientip"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/logger"
	"github.com/kamataryo/sandbox-same-site-cookies/pkg/requestid"
)

var slogComponent = logger.Component("auth")

// Handle returns the router. Paths match exactly; a known path with another
// method gets the 405 view and everything else the 404 view. HEAD is not
// implied by GET.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware(s.trustProxy), s.withState, s.accessLog, s.recoverer)

	r.Get("/", wrap(s, s.home))
	r.Post("/", wrap(s, s.home))

	r.Get("/login", wrap(s, s.loginForm))
	r.Post("/login", handler.Wrap(s.login,
		handler.WithBinder[handler.Context, LoginForm](loginFormBinder(s.maxBodyBytes)),
		handler.WithErrorHandler[handler.Context, LoginForm](s.errorHandler),
	))

	r.Get("/logout", wrap(s, s.logout))

	r.NotFound(wrap(s, s.notFound))
	r.MethodNotAllowed(wrap(s, s.methodNotAllowed))

	return r
}

// wrap mounts a handler that takes no request payload.
func wrap(s *Service, h handler.HandlerFunc[handler.Context, struct{}]) http.HandlerFunc {
	return handler.Wrap(h, handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler))
}

// accessLog writes one record per request after the response is complete.
func (s *Service) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		s.log.LogAttrs(r.Context(), level, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Host(r.Host),
			logger.ClientIP(clientip.FromContext(r.Context())),
			logger.Status(status),
			logger.Duration(time.Since(start)),
		)
	})
}

// recoverer turns a handler panic into the rendered 500 view.
func (s *Service) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			s.log.ErrorContext(r.Context(), "panic recovered",
				slog.String("panic", fmt.Sprint(rec)),
				logger.Event("panic"),
			)
			s.errorHandler(handler.NewContext(w, r), handler.ErrInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
