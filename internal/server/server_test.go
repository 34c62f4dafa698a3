package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zof-project/zof/internal/infrastructure/config"
)

func TestServerWiring(t *testing.T) {
	// one server per binary: prometheus collectors register globally
	srv := New(config.Default())

	t.Run("Health route", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Metrics route", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "zof_")
	})

	t.Run("Solve route", func(t *testing.T) {
		body := strings.NewReader(`{"expression": "x^2 - 2", "method": "secant", "x0": 1, "x1": 2}`)
		req := httptest.NewRequest(http.MethodPost, "/solve", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"converged":true`)
	})
}
