package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

var (
	resolverResolvedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenicon",
		Subsystem: "resolver",
		Name:      "resolved_total",
		Help:      "Count of icon resolutions by the stage that produced the source.",
	}, []string{"network", "stage"})

	resolverResolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tokenicon",
		Subsystem: "resolver",
		Name:      "resolve_duration_seconds",
		Help:      "Duration of icon resolutions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "stage"})

	resolverCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenicon",
		Subsystem: "resolver",
		Name:      "cache_total",
		Help:      "Count of cache lookups by outcome: hit or miss.",
	}, []string{"network", "outcome"})
)

// Resolver tracks metrics for the icon resolution pipeline.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// ObserveResolve records which stage settled a resolution and how long it took.
func (m Resolver) ObserveResolve(network model.Network, stage string, started time.Time) {
	if network == "" {
		network = "unknown"
	}
	resolverResolvedTotal.WithLabelValues(string(network), stage).Inc()
	resolverResolveDuration.WithLabelValues(string(network), stage).Observe(time.Since(started).Seconds())
}

// ObserveCache records a cache lookup outcome.
func (m Resolver) ObserveCache(network model.Network, outcome string) {
	if network == "" {
		network = "unknown"
	}
	resolverCacheTotal.WithLabelValues(string(network), outcome).Inc()
}
