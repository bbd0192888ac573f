package metadata

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

// MirrorFetcher serves metadata from the local store and falls back to the
// remote API for types the store does not have yet, persisting what it finds.
type MirrorFetcher struct {
	local  Repository
	writer Writer
	remote ManyFetcher
	logger *zap.Logger
}

func NewMirrorFetcher(local Repository, writer Writer, remote ManyFetcher, logger *zap.Logger) (*MirrorFetcher, error) {
	if local == nil || writer == nil {
		return nil, errors.New("mirror store is required")
	}
	if remote == nil {
		return nil, errors.New("mirror remote is required")
	}
	return &MirrorFetcher{
		local:  local,
		writer: writer,
		remote: remote,
		logger: logger.Named("mirrorFetcher"),
	}, nil
}

func (f *MirrorFetcher) FetchCoinMetadata(ctx context.Context, network model.Network, coinType string) (model.CoinMetadata, error) {
	return fetchOne(ctx, f, network, coinType)
}

// FetchMany reads the store first. A store read failure sends every type to the
// remote; a remote failure is returned only when the store had nothing.
func (f *MirrorFetcher) FetchMany(ctx context.Context, network model.Network, types []string) (map[string]model.CoinMetadata, error) {
	types = uniqueTypes(types)
	result := make(map[string]model.CoinMetadata, len(types))
	if len(types) == 0 {
		return result, nil
	}

	local, err := f.local.CoinMetadataByTypes(ctx, network, types)
	if err != nil {
		f.logger.Warn("store lookup failed, using remote",
			zap.String("network", string(network)),
			zap.Error(err),
		)
	}
	missing := make([]string, 0, len(types))
	for _, t := range types {
		if meta, ok := local[t]; ok {
			result[t] = meta
			continue
		}
		missing = append(missing, t)
	}
	if len(missing) == 0 {
		return result, nil
	}

	remote, err := f.remote.FetchMany(ctx, network, missing)
	if err != nil {
		if len(result) == 0 {
			return nil, fmt.Errorf("remote coin metadata: %w", err)
		}
		f.logger.Warn("remote lookup failed, serving stored entries",
			zap.String("network", string(network)),
			zap.Int("missing", len(missing)),
			zap.Error(err),
		)
		return result, nil
	}

	fresh := make([]model.CoinMetadata, 0, len(remote))
	for _, t := range missing {
		meta, ok := remote[t]
		if !ok {
			continue
		}
		meta.Network = network
		result[t] = meta
		fresh = append(fresh, meta)
	}
	if len(fresh) > 0 {
		if err := f.writer.InsertCoinMetadata(ctx, fresh); err != nil {
			f.logger.Warn("failed to persist fetched metadata",
				zap.String("network", string(network)),
				zap.Int("items", len(fresh)),
				zap.Error(err),
			)
		}
	}
	return result, nil
}
