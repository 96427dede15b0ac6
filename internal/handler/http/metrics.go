package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsdesk/internal/handler/http/responsewriter"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Buckets cover fast JSON endpoints up through slow search queries, so
	// p95/p99 stay measurable at both ends.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	loginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)

	articlesPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_published_total",
			Help: "Total number of news articles created",
		},
	)
)

// RecordLoginAttempt counts a login outcome ("success" or "failure").
func RecordLoginAttempt(outcome string) {
	loginAttemptsTotal.WithLabelValues(outcome).Inc()
}

// RecordArticlePublished counts a created article.
func RecordArticlePublished() {
	articlesPublishedTotal.Inc()
}

// Metrics returns middleware that records request count, latency, and
// in-flight gauge per method/path/status.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		start := time.Now()
		wrapped := responsewriter.Wrap(w)
		next.ServeHTTP(wrapped, r)

		status := strconv.Itoa(wrapped.StatusCode())
		path := normalizePath(r.URL.Path)
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).
			Observe(time.Since(start).Seconds())
	})
}

// normalizePath collapses numeric ID segments so the path label stays low
// cardinality.
func normalizePath(path string) string {
	out := make([]byte, 0, len(path))
	i := 0
	for i < len(path) {
		if path[i] == '/' {
			out = append(out, '/')
			i++
			start := i
			numeric := i < len(path)
			for i < len(path) && path[i] != '/' {
				if path[i] < '0' || path[i] > '9' {
					numeric = false
				}
				i++
			}
			if numeric && i > start {
				out = append(out, ':', 'i', 'd')
			} else {
				out = append(out, path[start:i]...)
			}
			continue
		}
		out = append(out, path[i])
		i++
	}
	return string(out)
}

// MetricsHandler exposes the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
