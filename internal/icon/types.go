package icon

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StaticRegistry interface {
		Lookup(network model.Network, key string) (model.ImageRef, bool)
	}
	CuratedRegistry interface {
		StrictToken(network model.Network, coinType string) (model.StrictToken, bool)
	}
	OriginRegistry interface {
		ChainOf(network model.Network, coinType string) (model.Chain, bool)
	}
	VerifiedRegistry interface {
		Contains(network model.Network, coinType string) bool
	}
	MetadataFetcher interface {
		FetchCoinMetadata(ctx context.Context, network model.Network, coinType string) (model.CoinMetadata, error)
	}
	ImageProber interface {
		Probe(ctx context.Context, url string) error
	}
	ResolverMetrics interface {
		ObserveResolve(network model.Network, stage string, started time.Time)
		ObserveCache(network model.Network, outcome string)
	}
)
