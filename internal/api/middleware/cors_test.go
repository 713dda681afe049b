package middleware

import (
	"net/http"
	"testing"

	"github.com/phrazzld/bibliotheque-api/internal/config"
	"github.com/phrazzld/bibliotheque-api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func testCORSConfig() config.CORSConfig {
	return config.CORSConfig{
		AllowOrigin:  config.DefaultAllowOrigin,
		AllowHeaders: config.DefaultAllowHeaders,
		MaxAge:       config.DefaultCORSMaxAge,
	}
}

func TestCORSMiddleware_HeadersOnEveryResponse(t *testing.T) {
	statuses := []int{http.StatusOK, http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			})
			handler := NewCORSMiddleware(testCORSConfig())(next)

			rec := testutils.DoRequest(t, handler, http.MethodGet, "/books", nil, nil)

			assert.Equal(t, status, rec.Code)
			assert.Equal(t, "http://localhost:4200", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "Authorization,Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
			assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	handler := NewCORSMiddleware(testCORSConfig())(next)

	rec := testutils.DoRequest(t, handler, http.MethodOptions, "/books/1", nil,
		map[string]string{"Origin": "http://localhost:4200"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called, "preflight must not reach the router")
	assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "http://localhost:4200", rec.Header().Get("Access-Control-Allow-Origin"))
}
