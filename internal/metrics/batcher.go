package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

var (
	batcherSourceTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "masumi",
		Subsystem: "batcher",
		Name:      "source_pass_total",
		Help:      "Count of per-source batching passes.",
	}, []string{"network", "status"})

	batcherSourceDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "masumi",
		Subsystem: "batcher",
		Name:      "source_pass_duration_seconds",
		Help:      "Duration of per-source batching passes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	batcherSubmissionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "masumi",
		Subsystem: "batcher",
		Name:      "submission_total",
		Help:      "Count of lock transaction submissions.",
	}, []string{"status"})

	batcherSubmissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "masumi",
		Subsystem: "batcher",
		Name:      "submission_duration_seconds",
		Help:      "Duration of lock transaction submissions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

type Batcher struct{}

func NewBatcher() *Batcher {
	return &Batcher{}
}

func (m Batcher) ObserveSourceBatch(err error, network model.Network, started time.Time) {
	status := statusLabel(err)
	batcherSourceTotal.WithLabelValues(string(network), status).Inc()
	batcherSourceDuration.WithLabelValues(string(network), status).
		Observe(time.Since(started).Seconds())
}

func (m Batcher) ObserveSubmission(err error, started time.Time) {
	status := statusLabel(err)
	batcherSubmissionTotal.WithLabelValues(status).Inc()
	batcherSubmissionDuration.WithLabelValues(status).
		Observe(time.Since(started).Seconds())
}
