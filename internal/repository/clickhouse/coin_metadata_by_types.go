package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

// CoinMetadataByTypes returns the latest metadata row per requested type. Types
// without a row are absent from the result.
func (r *Repository) CoinMetadataByTypes(ctx context.Context, network model.Network, types []string) (map[string]model.CoinMetadata, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("coin_metadata_by_types", network, err, start)
	}()

	result := make(map[string]model.CoinMetadata, len(types))
	if len(types) == 0 {
		return result, nil
	}

	const query = `
SELECT
	type,
	argMax(symbol, updated_at) AS symbol,
	argMax(name, updated_at) AS name,
	argMax(decimals, updated_at) AS decimals,
	argMax(icon_url, updated_at) AS icon_url,
	max(updated_at) AS updated_at
FROM coin_metadata
WHERE network = ? AND type IN ?
GROUP BY type`

	rows, err := r.conn.Query(ctx, query, string(network), types)
	if err != nil {
		return nil, fmt.Errorf("query coin metadata by types: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			meta     model.CoinMetadata
			decimals uint8
		)
		if err = rows.Scan(
			&meta.Type,
			&meta.Symbol,
			&meta.Name,
			&decimals,
			&meta.IconURL,
			&meta.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan coin metadata: %w", err)
		}

		meta.Network = network
		meta.Decimals = int(decimals)
		result[meta.Type] = meta
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coin metadata: %w", err)
	}

	return result, nil
}
