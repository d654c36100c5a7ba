package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "attivita",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})

	requestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "attivita",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by method and status.",
	}, []string{"method", "status"})
)

func init() {
	prometheus.MustRegister(requestDuration, requestTotal)
}

// Metrics records request counts and latencies for every handled request.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := strconv.Itoa(ww.Status())
		requestDuration.WithLabelValues(r.Method, status).Observe(time.Since(start).Seconds())
		requestTotal.WithLabelValues(r.Method, status).Inc()
	})
}
