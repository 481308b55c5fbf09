package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

var (
	corsAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}
	corsAllowedHeaders = []string{"Content-Type", "Authorization", traceIDHeader}
	corsExposedHeaders = []string{"Authorization", traceIDHeader}
)

// withCORS allows the single configured browser origin to call the API with
// credentials. Preflight requests pass through to the router, where the
// catch-all OPTIONS route answers them with 200.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:     []string{h.cfg.AllowedOrigin},
		AllowedMethods:     corsAllowedMethods,
		AllowedHeaders:     corsAllowedHeaders,
		ExposedHeaders:     corsExposedHeaders,
		AllowCredentials:   true,
		MaxAge:             300,
		OptionsPassthrough: true,
	})
}

// options answers every OPTIONS request with 200 and the fixed CORS policy,
// whatever Origin or requested method the request carries.
func (h *Handler) options(w http.ResponseWriter, r *http.Request) {
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", h.cfg.AllowedOrigin)
	header.Set("Access-Control-Allow-Methods", strings.Join(corsAllowedMethods, ", ")+", "+http.MethodOptions)
	header.Set("Access-Control-Allow-Headers", strings.Join(corsAllowedHeaders, ", "))
	header.Set("Access-Control-Expose-Headers", strings.Join(corsExposedHeaders, ", "))
	header.Set("Access-Control-Allow-Credentials", "true")
	w.WriteHeader(http.StatusOK)
}
