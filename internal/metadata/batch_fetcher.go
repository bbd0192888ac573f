package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
	"github.com/goodnatureofminers/tokenicon-backend/pkg/batcher"
)

// BatchConfig tunes how single lookups are grouped into FetchMany calls.
type BatchConfig struct {
	Networks      []model.Network
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// BatchFetcher coalesces concurrent single-type lookups into one FetchMany
// request per network. Networks outside the config are fetched directly.
type BatchFetcher struct {
	source   ManyFetcher
	batchers map[model.Network]*batcher.Batcher[string, model.CoinMetadata]
	logger   *zap.Logger
}

func NewBatchFetcher(source ManyFetcher, cfg BatchConfig, metrics FlushMetrics, logger *zap.Logger) (*BatchFetcher, error) {
	if source == nil {
		return nil, errors.New("batch fetcher source is required")
	}
	if metrics == nil {
		return nil, errors.New("batch fetcher metrics is required")
	}
	if cfg.FlushSize <= 0 {
		return nil, fmt.Errorf("batch fetcher flush size must be positive, got %d", cfg.FlushSize)
	}
	if cfg.FlushInterval <= 0 {
		return nil, fmt.Errorf("batch fetcher flush interval must be positive, got %s", cfg.FlushInterval)
	}

	logger = logger.Named("batchFetcher")
	f := &BatchFetcher{
		source:   source,
		batchers: make(map[model.Network]*batcher.Batcher[string, model.CoinMetadata], len(cfg.Networks)),
		logger:   logger,
	}
	for _, network := range cfg.Networks {
		network := network
		flush := func(ctx context.Context, types []string) (found map[string]model.CoinMetadata, err error) {
			started := time.Now()
			defer func() {
				metrics.ObserveFlush(network, err, len(types), started)
			}()
			return source.FetchMany(ctx, network, types)
		}
		f.batchers[network] = batcher.New[string, model.CoinMetadata](
			logger.With(zap.String("network", string(network))),
			flush,
			cfg.FlushSize,
			cfg.FlushInterval,
			cfg.RPS,
		)
	}
	return f, nil
}

// Start runs the flush loops until ctx ends or Stop is called.
func (f *BatchFetcher) Start(ctx context.Context) {
	for _, b := range f.batchers {
		b.Start(ctx)
	}
}

// Stop flushes pending lookups and stops the flush loops.
func (f *BatchFetcher) Stop() {
	for _, b := range f.batchers {
		b.Stop()
	}
}

func (f *BatchFetcher) FetchCoinMetadata(ctx context.Context, network model.Network, coinType string) (model.CoinMetadata, error) {
	b, ok := f.batchers[network]
	if !ok {
		return fetchOne(ctx, f.source, network, coinType)
	}

	meta, found, err := b.Do(ctx, coinType)
	if err != nil {
		return model.CoinMetadata{}, fmt.Errorf("batched coin metadata: %w", err)
	}
	if !found {
		return model.CoinMetadata{}, fmt.Errorf("%s on %s: %w", coinType, network, ErrNotFound)
	}
	return meta, nil
}
