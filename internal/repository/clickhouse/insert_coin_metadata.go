package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
	"github.com/goodnatureofminers/tokenicon-backend/pkg/safe"
)

// InsertCoinMetadata stores metadata rows. A row with a zero UpdatedAt is stamped
// with the insert time so it supersedes older rows for the same type.
func (r *Repository) InsertCoinMetadata(ctx context.Context, items []model.CoinMetadata) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_coin_metadata", firstNetwork(items), err, start)
	}()

	if len(items) == 0 {
		return nil
	}

	const query = `
INSERT INTO coin_metadata (
	network,
	type,
	symbol,
	name,
	decimals,
	icon_url,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare coin metadata batch: %w", err)
	}

	for _, item := range items {
		var decimals uint8
		decimals, err = safe.Uint8(item.Decimals)
		if err != nil {
			_ = batch.Abort()
			return fmt.Errorf("coin %s decimals: %w", item.Type, err)
		}
		updatedAt := item.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = start.UTC()
		}
		if err = batch.Append(
			string(item.Network),
			item.Type,
			item.Symbol,
			item.Name,
			decimals,
			item.IconURL,
			updatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append coin metadata: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert coin metadata: %w", err)
	}
	return nil
}

func firstNetwork(items []model.CoinMetadata) model.Network {
	if len(items) == 0 {
		return ""
	}
	return items[0].Network
}
