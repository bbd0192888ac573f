package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registryLoadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenicon",
		Subsystem: "registry_loader",
		Name:      "load_total",
		Help:      "Count of remote registry load attempts.",
	}, []string{"registry", "network", "status"})

	registryLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tokenicon",
		Subsystem: "registry_loader",
		Name:      "load_duration_seconds",
		Help:      "Duration of remote registry loads.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"registry", "network", "status"})

	registryEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "tokenicon",
		Subsystem: "registry_loader",
		Name:      "entries",
		Help:      "Number of entries in the last successfully loaded registry.",
	}, []string{"registry", "network"})
)

// RegistryLoader tracks metrics for loading the curated and verified registries.
type RegistryLoader struct{}

func NewRegistryLoader() *RegistryLoader {
	return &RegistryLoader{}
}

// ObserveLoad records a registry load attempt.
func (m RegistryLoader) ObserveLoad(registry, network string, entries int, err error, started time.Time) {
	status := statusOf(err)
	if network == "" {
		network = "unknown"
	}

	registryLoadTotal.WithLabelValues(registry, network, status).Inc()
	registryLoadDuration.WithLabelValues(registry, network, status).Observe(time.Since(started).Seconds())
	if err == nil {
		registryEntries.WithLabelValues(registry, network).Set(float64(entries))
	}
}
