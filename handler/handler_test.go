package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamataryo/sandbox-same-site-cookies/handler"
)

type greetRequest struct {
	Name string
}

func queryBinder(r *http.Request, v any) error {
	req, ok := v.(*greetRequest)
	if !ok {
		return handler.ErrBinderNotApplicable
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		return handler.ErrBadRequest
	}
	req.Name = name
	return nil
}

func greet(_ handler.Context, req greetRequest) handler.Response {
	return handler.Templ(textComponent("hello " + req.Name))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(greet, handler.WithBinder[handler.Context, greetRequest](queryBinder))

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/?name=admin", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hello admin", w.Body.String())
	})

	t.Run("binder error goes to the error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(greet,
			handler.WithBinder[handler.Context, greetRequest](queryBinder),
			handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(handler.StatusCode(err))
			}),
		)

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrBadRequest)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not applicable binder leaves the request zero", func(t *testing.T) {
		t.Parallel()
		skip := func(*http.Request, any) error { return handler.ErrBinderNotApplicable }
		h := handler.Wrap(greet, handler.WithBinder[handler.Context, greetRequest](skip))

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/?name=user1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hello ", w.Body.String())
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(
			func(handler.Context, struct{}) handler.Response { return nil },
			handler.WithErrorHandler[handler.Context, struct{}](func(_ handler.Context, err error) { got = err }),
		)
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("default error handler hides internal errors", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
			return failingResponse{}
		})

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret")
	})
}

type failingResponse struct{}

func (failingResponse) Render(http.ResponseWriter, *http.Request) error {
	return errors.New("secret connection string")
}

func TestFail(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(
		func(handler.Context, struct{}) handler.Response { return handler.Fail(handler.ErrNotFound) },
		handler.WithErrorHandler[handler.Context, struct{}](func(_ handler.Context, err error) { got = err }),
	)
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, got, handler.ErrNotFound)

	err := handler.Fail(nil).Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, handler.ErrInternalServerError)
}
