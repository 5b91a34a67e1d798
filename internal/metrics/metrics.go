// Package metrics exposes Prometheus counters for submission traffic.
//
// Metrics live on a private registry so tests and multiple servers in
// one process never collide on the global default registerer.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes recorded by the submissions_total counter.
const (
	OutcomeStored    = "stored"
	OutcomeInvalid   = "invalid"
	OutcomeStoreFail = "store_error"
	OutcomeInternal  = "internal_error"
)

type Metrics struct {
	registry *prometheus.Registry

	submissions   *prometheus.CounterVec
	storeDuration *prometheus.HistogramVec
	notifyErrors  prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry: reg,
		submissions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "contact_form_submissions_total",
			Help: "Contact form submissions by outcome",
		}, []string{"outcome"}),
		storeDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contact_form_store_create_duration_seconds",
			Help:    "Time taken by the store to create a submission document",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"driver"}),
		notifyErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "contact_form_notification_enqueue_errors_total",
			Help: "Submission notifications that could not be enqueued",
		}),
	}
}

// ObserveSubmission counts one submission attempt. Safe on a nil receiver.
func (m *Metrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveStoreCreate(driver string, d time.Duration) {
	if m == nil {
		return
	}
	m.storeDuration.WithLabelValues(driver).Observe(d.Seconds())
}

func (m *Metrics) NotificationFailed() {
	if m == nil {
		return
	}
	m.notifyErrors.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
