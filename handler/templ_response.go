package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// TemplComponent represents a templ component interface.
// This matches github.com/a-h/templ.Component without importing it.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures a templ response.
type TemplOption func(*templResponse)

// WithStatus sets the response status code (default 200).
func WithStatus(code int) TemplOption {
	return func(t *templResponse) {
		if code > 0 {
			t.status = code
		}
	}
}

// WithHeader adds a header value. Repeated keys accumulate, which is how
// several Set-Cookie lines end up on one response.
func WithHeader(key, value string) TemplOption {
	return func(t *templResponse) {
		t.headers = append(t.headers, [2]string{key, value})
	}
}

// WithContentType overrides the default "text/html" content type.
func WithContentType(ct string) TemplOption {
	return func(t *templResponse) {
		if ct != "" {
			t.contentType = ct
		}
	}
}

// templResponse wraps a templ component to implement Response
type templResponse struct {
	component   TemplComponent
	status      int
	contentType string
	headers     [][2]string
}

// Templ creates a response that renders component as an HTML page.
//
// The component is rendered into a buffer first, so a failing component
// leaves the ResponseWriter untouched and the ErrorHandler can still
// choose the status code.
func Templ(component TemplComponent, opts ...TemplOption) Response {
	t := &templResponse{
		component:   component,
		status:      http.StatusOK,
		contentType: "text/html",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render outputs the component body with the configured headers and status.
func (t *templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	if t.component != nil {
		if err := t.component.Render(r.Context(), &buf); err != nil {
			return err
		}
	}

	h := w.Header()
	h.Set("Content-Type", t.contentType)
	for _, kv := range t.headers {
		h.Add(kv[0], kv[1])
	}
	w.WriteHeader(t.status)
	_, err := buf.WriteTo(w)
	return err
}
