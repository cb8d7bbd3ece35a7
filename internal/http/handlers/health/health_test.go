package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	t.Run("storage available", func(t *testing.T) {
		w := httptest.NewRecorder()
		New(sl.Discard(), pingerFunc(func(context.Context) error { return nil })).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
	})

	t.Run("storage unavailable", func(t *testing.T) {
		w := httptest.NewRecorder()
		New(sl.Discard(), pingerFunc(func(context.Context) error { return errors.New("down") })).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"Error","error":"storage is unavailable"}`, w.Body.String())
	})
}
