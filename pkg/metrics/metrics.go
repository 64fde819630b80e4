package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "submissions"

// Metrics holds the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	created         prometheus.Counter
	deleted         prometheus.Counter
	imagesStored    *prometheus.CounterVec
	storageFailures *prometheus.CounterVec
	rejected        *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "created_total", Help: "Number of persisted submissions.",
		}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "deleted_total", Help: "Number of deleted submissions.",
		}),
		imagesStored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "images_stored_total", Help: "Number of images written to the storage backend.",
		}, []string{"backend"}),
		storageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "storage_failures_total", Help: "Number of failed storage backend calls.",
		}, []string{"backend", "op"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "rejected_total", Help: "Number of create requests rejected by validation.",
		}, []string{"reason"}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.created,
		m.deleted,
		m.imagesStored,
		m.storageFailures,
		m.rejected,
	)

	return m
}

func (m *Metrics) SubmissionCreated() {
	if m == nil {
		return
	}
	m.created.Inc()
}

func (m *Metrics) SubmissionDeleted() {
	if m == nil {
		return
	}
	m.deleted.Inc()
}

func (m *Metrics) ImageStored(backend string) {
	if m == nil {
		return
	}
	m.imagesStored.WithLabelValues(backend).Inc()
}

func (m *Metrics) StorageFailed(backend, op string) {
	if m == nil {
		return
	}
	m.storageFailures.WithLabelValues(backend, op).Inc()
}

func (m *Metrics) Rejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}
