package metadata

import (
	"context"
	"net/url"
	"time"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	JSONGetter interface {
		GetJSON(ctx context.Context, rawURL string, params url.Values, out any) error
	}
	ClientMetrics interface {
		Observe(operation string, network model.Network, err error, started time.Time)
	}
	Repository interface {
		CoinMetadataByTypes(ctx context.Context, network model.Network, types []string) (map[string]model.CoinMetadata, error)
	}
	Writer interface {
		InsertCoinMetadata(ctx context.Context, items []model.CoinMetadata) error
	}
	ManyFetcher interface {
		FetchMany(ctx context.Context, network model.Network, types []string) (map[string]model.CoinMetadata, error)
	}
	FlushMetrics interface {
		ObserveFlush(network model.Network, err error, size int, started time.Time)
	}
)
