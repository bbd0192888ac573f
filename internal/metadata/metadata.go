// Package metadata fetches coin metadata for types that no local registry knows.
// Every fetcher here reports a missing type as ErrNotFound.
package metadata

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

// ErrNotFound is returned when the source has no metadata for the type.
var ErrNotFound = errors.New("coin metadata not found")

func fetchOne(ctx context.Context, f ManyFetcher, network model.Network, coinType string) (model.CoinMetadata, error) {
	found, err := f.FetchMany(ctx, network, []string{coinType})
	if err != nil {
		return model.CoinMetadata{}, err
	}
	meta, ok := found[coinType]
	if !ok {
		return model.CoinMetadata{}, fmt.Errorf("%s on %s: %w", coinType, network, ErrNotFound)
	}
	return meta, nil
}

// uniqueTypes drops empty and repeated types, keeping the first occurrence order.
func uniqueTypes(types []string) []string {
	seen := make(map[string]struct{}, len(types))
	out := make([]string, 0, len(types))
	for _, t := range types {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
