// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Booking results recorded on BookingsTotal
const (
	ResultConfirmed      = "confirmed"
	ResultExhausted      = "exhausted"
	ResultDoctorRejected = "doctor_rejected"
	ResultError          = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	BookingsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	TokensSwept     prometheus.Counter
}

// New creates the collectors on a private registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		BookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Booking attempts by bed type and result.",
		}, []string{"bed_type", "result"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		TokensSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "refresh_tokens_swept_total",
			Help: "Expired or revoked refresh tokens removed by the sweeper.",
		}),
	}

	reg.MustRegister(
		m.BookingsTotal,
		m.RequestDuration,
		m.TokensSwept,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveBooking counts one booking attempt
func (m *Metrics) ObserveBooking(bedType, result string) {
	m.BookingsTotal.WithLabelValues(bedType, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
