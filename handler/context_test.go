package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamataryo/sandbox-same-site-cookies/handler"
)

func TestContextKey_String(t *testing.T) {
	t.Parallel()

	key := handler.NewContextKey("request-state")
	assert.Equal(t, "request-state", key.String())
}

func TestContextValue(t *testing.T) {
	t.Parallel()

	type state struct {
		Host string
	}

	t.Run("pointer value", func(t *testing.T) {
		t.Parallel()
		key := handler.NewContextKey("state")
		s := &state{Host: "lax.test"}
		ctx := context.WithValue(context.Background(), key, s)

		got := handler.ContextValue[*state](ctx, key)
		require.NotNil(t, got)
		assert.Equal(t, "lax.test", got.Host)
	})

	t.Run("missing key returns zero value", func(t *testing.T) {
		t.Parallel()
		key := handler.NewContextKey("missing")
		assert.Nil(t, handler.ContextValue[*state](context.Background(), key))
	})

	t.Run("wrong type returns zero value", func(t *testing.T) {
		t.Parallel()
		key := handler.NewContextKey("state")
		ctx := context.WithValue(context.Background(), key, "not a state")
		assert.Nil(t, handler.ContextValue[*state](ctx, key))
	})

	t.Run("keys with the same name do not collide", func(t *testing.T) {
		t.Parallel()
		k1 := handler.NewContextKey("same")
		k2 := handler.NewContextKey("same")
		ctx := context.WithValue(context.Background(), k1, "one")
		assert.Empty(t, handler.ContextValue[string](ctx, k2))
	})
}

func TestContextValueOK(t *testing.T) {
	t.Parallel()

	key := handler.NewContextKey("count")

	got, ok := handler.ContextValueOK[int](context.WithValue(context.Background(), key, 0), key)
	assert.True(t, ok)
	assert.Equal(t, 0, got)

	_, ok = handler.ContextValueOK[int](context.Background(), key)
	assert.False(t, ok)
}

func TestNewContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	reqCtx, cancel := context.WithCancel(req.Context())
	key := handler.NewContextKey("test")
	req = req.WithContext(context.WithValue(reqCtx, key, "value"))
	w := httptest.NewRecorder()

	ctx := handler.NewContext(w, req)
	assert.Equal(t, req, ctx.Request())
	assert.Equal(t, w, ctx.ResponseWriter())
	assert.Equal(t, "value", ctx.Value(key))

	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)
	require.NoError(t, ctx.Err())

	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
