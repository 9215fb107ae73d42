package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	JobsProcessed *prometheus.CounterVec
	JobSeconds    *prometheus.HistogramVec
	ActiveWorkers prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		JobsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geokit_batch_jobs_processed_total",
			Help: "Total number of batch jobs evaluated.",
		}, []string{"op"}),
		JobSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "geokit_batch_job_duration_seconds",
			Help:    "Duration of a single batch job.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 7),
		}, []string{"op"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "geokit_batch_active_workers",
			Help: "Current number of batch workers.",
		}),
	}
}

func (m *Metrics) observe(op string, d time.Duration) {
	if m == nil {
		return
	}
	m.JobsProcessed.WithLabelValues(op).Inc()
	m.JobSeconds.WithLabelValues(op).Observe(d.Seconds())
}

func (m *Metrics) workerStarted() {
	if m != nil {
		m.ActiveWorkers.Inc()
	}
}

func (m *Metrics) workerDone() {
	if m != nil {
		m.ActiveWorkers.Dec()
	}
}
