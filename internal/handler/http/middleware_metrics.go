package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// withMetrics records in-flight requests and request durations labelled with
// the chi route pattern, so that path parameters never explode the label
// cardinality.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.metrics.HTTPInFlight.Inc()
		defer h.metrics.HTTPInFlight.Dec()

		start := time.Now()
		lw := wrapResponseWriter(w)

		next.ServeHTTP(lw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		h.metrics.HTTPDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(lw.Status())).
			Observe(time.Since(start).Seconds())
	})
}
