package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

var (
	executorPassTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "masumi",
		Subsystem: "executor",
		Name:      "source_pass_total",
		Help:      "Count of per-source executor passes.",
	}, []string{"action", "network", "status"})

	executorPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "masumi",
		Subsystem: "executor",
		Name:      "source_pass_duration_seconds",
		Help:      "Duration of per-source executor passes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action", "network", "status"})
)

type Executor struct{}

func NewExecutor() *Executor {
	return &Executor{}
}

func (m Executor) ObserveExecution(err error, action string, network model.Network, started time.Time) {
	status := statusLabel(err)
	executorPassTotal.WithLabelValues(action, string(network), status).Inc()
	executorPassDuration.WithLabelValues(action, string(network), status).
		Observe(time.Since(started).Seconds())
}
