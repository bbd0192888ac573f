package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

var (
	batchFetcherFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenicon",
		Subsystem: "batch_fetcher",
		Name:      "flush_total",
		Help:      "Count of coin metadata batches flushed.",
	}, []string{"network", "status"})

	batchFetcherFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tokenicon",
		Subsystem: "batch_fetcher",
		Name:      "flush_duration_seconds",
		Help:      "Duration of flushing a coin metadata batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	batchFetcherFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tokenicon",
		Subsystem: "batch_fetcher",
		Name:      "flush_size",
		Help:      "Number of coin types requested per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"network"})
)

// BatchFetcher tracks metrics for the batched coin metadata fetcher.
type BatchFetcher struct{}

func NewBatchFetcher() *BatchFetcher {
	return &BatchFetcher{}
}

// ObserveFlush records a flushed batch.
func (m BatchFetcher) ObserveFlush(network model.Network, err error, size int, started time.Time) {
	status := statusOf(err)
	if network == "" {
		network = "unknown"
	}

	batchFetcherFlushTotal.WithLabelValues(string(network), status).Inc()
	batchFetcherFlushDuration.WithLabelValues(string(network), status).Observe(time.Since(started).Seconds())
	batchFetcherFlushSize.WithLabelValues(string(network)).Observe(float64(size))
}
