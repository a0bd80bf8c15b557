package middleware

import (
	"net/http"
	"strconv"

	"eventattend/internal/metrics"
)

// MetricsMiddleware counts requests by method, route pattern, and status.
// The pattern (not the raw path) keeps label cardinality bounded.
func MetricsMiddleware(m *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		pattern := r.Pattern
		if pattern == "" {
			pattern = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(r.Method, pattern, strconv.Itoa(wrapped.status)).Inc()
	})
}
