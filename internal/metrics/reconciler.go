// Package metrics exposes Prometheus instrumentation for the settlement
// engines and executors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

var (
	reconcilerSourceSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "masumi",
		Subsystem: "reconciler",
		Name:      "source_sync_total",
		Help:      "Count of per-source reconciliation scans.",
	}, []string{"network", "status"})

	reconcilerSourceSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "masumi",
		Subsystem: "reconciler",
		Name:      "source_sync_duration_seconds",
		Help:      "Duration of per-source reconciliation scans.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	reconcilerTransactionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "masumi",
		Subsystem: "reconciler",
		Name:      "transaction_total",
		Help:      "Count of ingested chain transactions by classification.",
	}, []string{"kind", "status"})

	reconcilerTransactionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "masumi",
		Subsystem: "reconciler",
		Name:      "transaction_duration_seconds",
		Help:      "Duration of processing a single chain transaction.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})
)

type Reconciler struct{}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

func (m Reconciler) ObserveSourceSync(err error, network model.Network, started time.Time) {
	status := statusLabel(err)
	reconcilerSourceSyncTotal.WithLabelValues(string(network), status).Inc()
	reconcilerSourceSyncDuration.WithLabelValues(string(network), status).
		Observe(time.Since(started).Seconds())
}

func (m Reconciler) ObserveTransaction(err error, kind string, started time.Time) {
	status := statusLabel(err)
	reconcilerTransactionTotal.WithLabelValues(kind, status).Inc()
	reconcilerTransactionDuration.WithLabelValues(kind, status).
		Observe(time.Since(started).Seconds())
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
