package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/phrazzld/bibliotheque-api/internal/config"
)

// AllowedMethods is advertised on preflight responses.
var AllowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodOptions,
}

// NewCORSMiddleware returns middleware that writes the static CORS headers on
// every response, whether or not the request carried an Origin header.
// OPTIONS requests are answered 200 here and never reach the router.
func NewCORSMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	allowHeaders := strings.Join(cfg.AllowHeaders, ",")
	maxAge := strconv.Itoa(cfg.MaxAge)
	allowMethods := strings.Join(AllowedMethods, ",")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
			h.Set("Access-Control-Allow-Headers", allowHeaders)
			h.Set("Access-Control-Max-Age", maxAge)

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", allowMethods)
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
