// Package metrics provides Prometheus instrumentation.
//
// Wire it up once in the route table:
//
//	r.Use(metrics.Middleware())
//	r.Get("/metrics", "metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks HTTP request latency by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "turboost",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "turboost",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks requests currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "turboost",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// UploadsTotal counts media uploads by destination folder and outcome.
	UploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "turboost",
			Subsystem: "storage",
			Name:      "uploads_total",
			Help:      "Total media uploads to the object store.",
		},
		[]string{"folder", "status"}, // "ok" | "error"
	)

	// PaymentPreferencesTotal counts gateway preference creations by outcome.
	PaymentPreferencesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "turboost",
			Subsystem: "payments",
			Name:      "preferences_total",
			Help:      "Total payment preferences created at the gateway.",
		},
		[]string{"status"}, // "ok" | "error"
	)
)

// DefaultRegistry is the registry everything above registers against.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		UploadsTotal,
		PaymentPreferencesTotal,
	)
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records duration, totals, and in-flight count per request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			status := strconv.Itoa(rr.status)
			RequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		})
	}
}

// Handler exposes the metrics page; mount on GET /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{})
	return h.ServeHTTP
}
