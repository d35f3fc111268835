// Package metrics provides Prometheus instrumentation for the storefront.
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
	// RequestDuration tracks HTTP request latency by method, path and status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cartinhas",
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
			Namespace: "cartinhas",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks requests currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cartinhas",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// OrdersCreated counts checkouts that produced an order.
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cartinhas",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total orders created through checkout.",
	})

	// CartMutations counts cart changes by operation.
	CartMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cartinhas",
			Subsystem: "cart",
			Name:      "mutations_total",
			Help:      "Total cart mutations.",
		},
		[]string{"operation"}, // "add" | "remove" | "set_quantity" | "clear"
	)

	// SearchRequests counts upstream card searches by result.
	SearchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cartinhas",
			Subsystem: "search",
			Name:      "requests_total",
			Help:      "Total card search requests against the upstream API.",
		},
		[]string{"result"}, // "hit" | "empty" | "error" | "cached"
	)

	// QueueJobsProcessed counts processed queue jobs by status.
	QueueJobsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cartinhas",
			Subsystem: "queue",
			Name:      "jobs_processed_total",
			Help:      "Total queue jobs processed.",
		},
		[]string{"status"}, // "success" | "failed"
	)

	// FeedSubscribers tracks live feed subscribers by transport.
	FeedSubscribers = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "cartinhas",
			Subsystem: "feed",
			Name:      "subscribers",
			Help:      "Current live feed subscribers.",
		},
		[]string{"transport"}, // "sse" | "websocket"
	)
)

// DefaultRegistry is the registry all storefront metrics live in.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		OrdersCreated,
		CartMutations,
		SearchRequests,
		QueueJobsProcessed,
		FeedSubscribers,
	)
}

// MustRegister adds custom collectors to the storefront registry.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Middleware records duration, total and in-flight for every request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			status := strconv.Itoa(rr.status)
			RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler exposes the metrics page. Mount it on GET /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}

// RecordQueueJob records one processed queue job.
func RecordQueueJob(status string) {
	QueueJobsProcessed.WithLabelValues(status).Inc()
}
