package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

// Middleware records request counts, durations and in-flight connections.
// Metrics for the /metrics endpoint itself are skipped.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		timer := prometheus.NewTimer(HttpRequestDuration.WithLabelValues(path, r.Method))
		HttpRequestsTotal.WithLabelValues(path, r.Method).Inc()
		ActiveConnections.Inc()

		next.ServeHTTP(w, r)

		timer.ObserveDuration()
		ActiveConnections.Dec()
	})
}
