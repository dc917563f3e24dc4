// FILE: src/correlate/correlate_test.go
package correlate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		ctx := WithID(context.Background(), "req-7")

		id, ok := FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-7", id)
	})

	t.Run("Absent", func(t *testing.T) {
		_, ok := FromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("NilContext", func(t *testing.T) {
		_, ok := FromContext(nil)
		assert.False(t, ok)
	})

	t.Run("EmptyIDIsAbsent", func(t *testing.T) {
		_, ok := FromContext(WithID(context.Background(), ""))
		assert.False(t, ok)
	})

	t.Run("ScopeEndsWithContext", func(t *testing.T) {
		parent := context.Background()
		_ = WithID(parent, "req-7")

		_, ok := FromContext(parent)
		assert.False(t, ok, "the parent context must not leak the id")
	})
}

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestContextSource(t *testing.T) {
	src := ContextSource{}

	id, ok := src.CorrelationID(WithID(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "abc", id)

	_, ok = src.CorrelationID(context.Background())
	assert.False(t, ok)
}

func TestMiddleware(t *testing.T) {
	t.Run("HonorsIncomingHeader", func(t *testing.T) {
		var seen string
		handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = FromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(Header, "req-7")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-7", seen)
		assert.Equal(t, "req-7", rec.Header().Get(Header))
	})

	t.Run("GeneratesWhenMissing", func(t *testing.T) {
		var seen string
		handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = FromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(Header))
	})
}
