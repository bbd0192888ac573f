package registry

import (
	"context"
	"net/url"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	JSONGetter interface {
		GetJSON(ctx context.Context, rawURL string, params url.Values, out any) error
	}
	LoaderMetrics interface {
		ObserveLoad(registry, network string, entries int, err error, started time.Time)
	}
)
