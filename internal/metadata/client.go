package metadata

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

const coinMetadataPath = "/api/v1/coin-metadata"

// Client reads coin metadata from the remote API:
// GET {base}/api/v1/coin-metadata?network=...&type_list=a,b,c.
type Client struct {
	endpoint string
	http     JSONGetter
	metrics  ClientMetrics
	logger   *zap.Logger
}

func NewClient(baseURL string, http JSONGetter, metrics ClientMetrics, logger *zap.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("metadata base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse metadata base url: %w", err)
	}
	if http == nil {
		return nil, errors.New("metadata http client is required")
	}
	if metrics == nil {
		return nil, errors.New("metadata client metrics is required")
	}
	return &Client{
		endpoint: strings.TrimRight(baseURL, "/") + coinMetadataPath,
		http:     http,
		metrics:  metrics,
		logger:   logger.Named("metadataClient"),
	}, nil
}

// FetchCoinMetadata returns the metadata of a single type.
func (c *Client) FetchCoinMetadata(ctx context.Context, network model.Network, coinType string) (model.CoinMetadata, error) {
	return fetchOne(ctx, c, network, coinType)
}

// FetchMany returns metadata keyed by type. Types the API does not know are absent.
func (c *Client) FetchMany(ctx context.Context, network model.Network, types []string) (result map[string]model.CoinMetadata, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("fetch_many", network, err, started)
	}()

	types = uniqueTypes(types)
	result = make(map[string]model.CoinMetadata, len(types))
	if len(types) == 0 {
		return result, nil
	}

	params := url.Values{}
	params.Set("network", string(network))
	params.Set("type_list", strings.Join(types, ","))

	var items []model.CoinMetadata
	if err = c.http.GetJSON(ctx, c.endpoint, params, &items); err != nil {
		return nil, fmt.Errorf("fetch coin metadata: %w", err)
	}

	requested := make(map[string]struct{}, len(types))
	for _, t := range types {
		requested[t] = struct{}{}
	}
	for _, item := range items {
		if _, ok := requested[item.Type]; !ok {
			continue
		}
		item.Network = network
		result[item.Type] = item
	}

	c.logger.Debug("coin metadata fetched",
		zap.String("network", string(network)),
		zap.Int("requested", len(types)),
		zap.Int("found", len(result)),
	)
	return result, nil
}
