package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge

	UsersRegisteredTotal prometheus.Counter
	VitalsLoggedTotal    prometheus.Counter
	RiskEvaluationsTotal *prometheus.CounterVec
	AlertsRaisedTotal    *prometheus.CounterVec
}

// NewCollector registers every metric on a private registry, so collectors
// built in tests never collide with each other.
func NewCollector(serviceName string) *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)
	serviceName = metricNamespace(serviceName)

	return &Collector{
		registry: registry,

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "route", "status"}),

		InFlightGauge: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		UsersRegisteredTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "auth",
			Name:      "users_registered_total",
			Help:      "Total number of accounts created.",
		}),

		VitalsLoggedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "health",
			Name:      "vitals_logged_total",
			Help:      "Total vitals readings accepted.",
		}),

		RiskEvaluationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "health",
			Name:      "risk_evaluations_total",
			Help:      "Risk evaluations by resulting level.",
		}, []string{"level"}),

		AlertsRaisedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "health",
			Name:      "alerts_raised_total",
			Help:      "Alerts persisted by type and severity.",
		}, []string{"type", "severity"}),
	}
}

func (m *Collector) UserRegistered() {
	m.UsersRegisteredTotal.Inc()
}

func (m *Collector) VitalsLogged() {
	m.VitalsLoggedTotal.Inc()
}

func (m *Collector) RiskEvaluated(level string) {
	m.RiskEvaluationsTotal.WithLabelValues(level).Inc()
}

func (m *Collector) AlertRaised(alertType string, severity string) {
	m.AlertsRaisedTotal.WithLabelValues(alertType, severity).Inc()
}

func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Collector) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Middleware records request counts and latency labelled by the matched
// route pattern rather than the raw path.
func (m *Collector) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.InFlightGauge.Inc()
		defer m.InFlightGauge.Dec()

		chainErr := c.Next()

		status := c.Response().StatusCode()
		if fiberErr, ok := chainErr.(*fiber.Error); ok {
			status = fiberErr.Code
		} else if chainErr != nil {
			status = fiber.StatusInternalServerError
		}

		labels := []string{c.Method(), c.Route().Path, strconv.Itoa(status)}
		m.RequestsTotal.WithLabelValues(labels...).Inc()
		m.RequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		return chainErr
	}
}

// metricNamespace maps an app name onto the metric name charset.
func metricNamespace(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(name))
}
