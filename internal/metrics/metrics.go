// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "retrohub"

// Upload outcomes used as the "outcome" label.
const (
	OutcomeSaved    = "saved"
	OutcomeRejected = "rejected"
	OutcomeBlocked  = "blocked"
	OutcomeFailed   = "failed"
)

// Metrics is the set of collectors for one registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	uploadsTotal *prometheus.CounterVec
	uploadBytes  prometheus.Histogram
	httpRequests *prometheus.CounterVec
}

// New registers the collectors on a fresh registry together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		uploadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Attachment uploads by outcome",
		}, []string{"outcome"}),

		uploadBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_bytes",
			Help:      "Size of stored attachments in bytes",
			Buckets:   []float64{1 << 10, 10 << 10, 100 << 10, 1 << 20, 2 << 20, 5 << 20},
		}),

		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route template and status code",
		}, []string{"method", "route", "code"}),
	}
}

// ObserveUpload counts one upload attempt. size is only recorded for saved files.
func (m *Metrics) ObserveUpload(outcome string, size int64) {
	if m == nil {
		return
	}
	m.uploadsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSaved {
		m.uploadBytes.Observe(float64(size))
	}
}

// ObserveRequest counts one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, code int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// UploadCount returns the current counter value for outcome.
func (m *Metrics) UploadCount(outcome string) float64 {
	if m == nil {
		return 0
	}
	return counterValue(m.uploadsTotal.WithLabelValues(outcome))
}

// RequestCount returns the current counter value for one label set.
func (m *Metrics) RequestCount(method, route string, code int) float64 {
	if m == nil {
		return 0
	}
	return counterValue(m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)))
}
