// Package metrics exposes HTTP-level Prometheus instrumentation shared by all
// routes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics holds request counters and latency histograms.
type HTTPMetrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// New creates and registers HTTP metrics on reg.
func New(reg prometheus.Registerer) *HTTPMetrics {
	f := promauto.With(reg)
	return &HTTPMetrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "agrotour_http_requests_total",
			Help: "HTTP requests by route pattern, method and status",
		}, []string{"route", "method", "status"}),
		Latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agrotour_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// Middleware records one observation per request, labelled with the chi
// route pattern rather than the raw path.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.Latency.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
