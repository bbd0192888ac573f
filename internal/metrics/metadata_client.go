package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

var (
	metadataClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenicon",
		Subsystem: "metadata_client",
		Name:      "operations_total",
		Help:      "Count of coin metadata API operations.",
	}, []string{"operation", "network", "status"})
	metadataClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tokenicon",
		Subsystem: "metadata_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of coin metadata API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// MetadataClient tracks metrics for calls to the coin metadata API.
type MetadataClient struct{}

func NewMetadataClient() *MetadataClient {
	return &MetadataClient{}
}

// Observe records a single API call outcome and duration.
func (m MetadataClient) Observe(operation string, network model.Network, err error, started time.Time) {
	status := statusOf(err)
	if network == "" {
		network = "unknown"
	}

	metadataClientRequestsTotal.WithLabelValues(operation, string(network), status).Inc()
	metadataClientRequestDuration.WithLabelValues(operation, string(network), status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
