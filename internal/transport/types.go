// Package transport exposes the REST handlers served through the gateway mux.
package transport

import (
	"context"

	"github.com/goodnatureofminers/tokenicon-backend/internal/icon"
	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	IconService interface {
		Describe(ctx context.Context, req model.TokenRequest, hints model.Hints) (model.View, error)
		ResolveMany(ctx context.Context, reqs []model.TokenRequest, hints model.Hints) ([]model.View, error)
		Probe(ctx context.Context, req model.TokenRequest, hints model.Hints, prober icon.ImageProber) (model.View, error)
	}
	MetadataSource interface {
		FetchMany(ctx context.Context, network model.Network, types []string) (map[string]model.CoinMetadata, error)
	}
)
