package metadata

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

// RepositoryFetcher serves coin metadata from the local store.
type RepositoryFetcher struct {
	repo Repository
}

func NewRepositoryFetcher(repo Repository) (*RepositoryFetcher, error) {
	if repo == nil {
		return nil, errors.New("metadata repository is required")
	}
	return &RepositoryFetcher{repo: repo}, nil
}

func (f *RepositoryFetcher) FetchCoinMetadata(ctx context.Context, network model.Network, coinType string) (model.CoinMetadata, error) {
	return fetchOne(ctx, f, network, coinType)
}

func (f *RepositoryFetcher) FetchMany(ctx context.Context, network model.Network, types []string) (map[string]model.CoinMetadata, error) {
	types = uniqueTypes(types)
	if len(types) == 0 {
		return map[string]model.CoinMetadata{}, nil
	}
	found, err := f.repo.CoinMetadataByTypes(ctx, network, types)
	if err != nil {
		return nil, fmt.Errorf("lookup coin metadata: %w", err)
	}
	return found, nil
}
