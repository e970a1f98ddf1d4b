// Package metrics Prometheus-метрики сервиса мастера бронирования
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор коллекторов сервиса в собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	transitions         *prometheus.CounterVec
	submissions         *prometheus.CounterVec
	activeSessions      prometheus.Gauge
}

// New создает и регистрирует коллекторы с префиксом serviceName
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "wizard_operations_total",
			Help:      "Wizard operations by outcome.",
		}, []string{"operation", "outcome"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "gateway_submissions_total",
			Help:      "Bookings handed to the submission gateway.",
		}, []string{"outcome"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "active_sessions",
			Help:      "Wizard sessions currently held in memory.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpRequestDuration,
		m.transitions,
		m.submissions,
		m.activeSessions,
	)
	return m
}

// Handler отдает метрики реестра
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest учитывает один HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveOperation учитывает операцию мастера (next, submit, ...) с исходом (advanced, invalid, rejected, ...)
func (m *Metrics) ObserveOperation(operation, outcome string) {
	m.transitions.WithLabelValues(operation, outcome).Inc()
}

// ObserveSubmission учитывает ответ шлюза
func (m *Metrics) ObserveSubmission(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}

// SetActiveSessions выставляет число активных сессий
func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}
