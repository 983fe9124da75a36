package handler

import (
	"errors"
	"net/http"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
// Example:
//
//	login := handler.HandlerFunc[handler.Context, LoginForm](
//		func(ctx handler.Context, req LoginForm) handler.Response {
//			return handler.Templ(page, handler.WithStatus(http.StatusOK))
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations set headers, status code and body. A returned error is
// passed to the ErrorHandler, so implementations must not write anything
// before they know rendering succeeds.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

// wrapConfig holds configuration for Wrap.
type wrapConfig[C Context, R any] struct {
	binder       Bind
	errorHandler ErrorHandler[C]
}

// WithBinder sets the request binder. A binder returning
// ErrBinderNotApplicable leaves the request value zero.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binder = b
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// defaultErrorHandler writes the status text of the error's HTTP status.
// Errors that are not HTTPError values become 500 without leaking details.
func defaultErrorHandler[C Context](ctx C, err error) {
	code := StatusCode(err)
	http.Error(ctx.ResponseWriter(), http.StatusText(code), code)
}

// newContext builds the standard Context. C must be satisfied by it.
func newContext[C Context](w http.ResponseWriter, r *http.Request) C {
	c, ok := any(NewContext(w, r)).(C)
	if !ok {
		panic("handler: context type is not satisfied by handler.Context")
	}
	return c
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinder[handler.Context, LoginForm](bindLoginForm),
//		handler.WithErrorHandler[handler.Context, LoginForm](errHandler),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := newContext[C](w, r)

		var req R
		if cfg.binder != nil {
			if err := cfg.binder(r, &req); err != nil && !errors.Is(err, ErrBinderNotApplicable) {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
