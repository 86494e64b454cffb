// Package metrics exposes the auth core counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "inspection/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "inspection"

// Metrics owns a private registry so tests can build as many instances as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	authRejections      *prometheus.CounterVec
	signIns             *prometheus.CounterVec
	rateLimited         *prometheus.CounterVec
	sessionTouchErrors  prometheus.Counter
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latencies in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		authRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_rejections_total",
				Help:      "Requests rejected by the session validator or role gate, by error code.",
			},
			[]string{"code"},
		),
		signIns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sign_ins_total",
				Help:      "Sign-in attempts by resolved platform and outcome code.",
			},
			[]string{"platform", "outcome"},
		),
		rateLimited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the rate limiter, by tier.",
			},
			[]string{"tier"},
		),
		sessionTouchErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "session_touch_errors_total",
				Help:      "Failed best-effort last-session writes.",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.authRejections,
		m.signIns,
		m.rateLimited,
		m.sessionTouchErrors,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Instrument records request count and latency per route template.
func (m *Metrics) Instrument(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// Errors are rendered later by the HTTP error handler, so derive the status here.
		status := c.Response().Status
		if err != nil {
			status = statusOf(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		labels := []string{c.Request().Method, route, strconv.Itoa(status)}
		m.httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		m.httpRequestsTotal.WithLabelValues(labels...).Inc()

		return err
	}
}

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// AuthRejected counts a rejected authentication or authorization decision.
func (m *Metrics) AuthRejected(code string) {
	m.authRejections.WithLabelValues(code).Inc()
}

// SignIn counts a sign-in attempt.
func (m *Metrics) SignIn(platform, outcome string) {
	m.signIns.WithLabelValues(platform, outcome).Inc()
}

// RateLimited counts a request rejected by the rate limiter.
func (m *Metrics) RateLimited(tier string) {
	m.rateLimited.WithLabelValues(tier).Inc()
}

// SessionTouchFailed counts a failed last-session write.
func (m *Metrics) SessionTouchFailed() {
	m.sessionTouchErrors.Inc()
}
