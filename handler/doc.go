// Package handler provides type-safe HTTP request handling on top of net/http.
//
// Handlers are generic functions that receive a typed request value and return
// a Response. Wrap turns them into http.HandlerFunc values that any router can
// mount, running the configured binder first and routing every failure
// through a single ErrorHandler:
//
//	type LoginForm struct {
//		Username string
//		Password string
//	}
//
//	func login(ctx handler.Context, req LoginForm) handler.Response {
//		return handler.Templ(page, handler.WithHeader("Set-Cookie", c))
//	}
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinder[handler.Context, LoginForm](bindLoginForm),
//	))
//
// # Architecture
//
//  1. HandlerFunc - generic function that accepts typed requests and returns responses
//  2. Response - common interface for everything that can write itself
//  3. Context - request context plus access to the request and response writer
//  4. ErrorHandler - maps errors to a rendered status page
//
// # Responses
//
// Templ renders an HTML component. The body is buffered so a render failure
// never leaves a half-written page behind:
//
//	handler.Templ(component)
//	handler.Templ(component, handler.WithStatus(http.StatusBadRequest))
//
// # Errors
//
// HTTPError values carry the status code that error handlers use:
//
//	handler.ErrBadRequest      // 400
//	handler.ErrNotFound        // 404
//	handler.ErrMethodNotAllowed // 405
//
// NewErrorHandler logs the error and renders a configured error page.
package handler
