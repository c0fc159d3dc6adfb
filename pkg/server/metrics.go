package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	eventsTotal      *prometheus.CounterVec
	validationsTotal *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

func newMetrics(cfg config) *metrics {
	factory := promauto.With(cfg.registerer)

	return &metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "events_total",
			Help:      "Total number of field operations applied, by field and event",
		}, []string{"field", "event"}),

		validationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "validations_total",
			Help:      "Total number of validations, by field and outcome",
		}, []string{"field", "outcome"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds, by route pattern",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *metrics) event(name, event string) {
	m.eventsTotal.WithLabelValues(name, event).Inc()
}

func (m *metrics) validation(name string, valid bool) {
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.validationsTotal.WithLabelValues(name, outcome).Inc()
}
