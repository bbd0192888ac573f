package icon

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenicon-backend/internal/metadata"
	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

// Resolver picks the image source for a token request. Sources are tried in order:
// bundled static icon, curated logo, explicit URL, then a metadata fetch. Only the
// fetch suspends; its outcome is cached per composite key.
type Resolver struct {
	static  StaticRegistry
	curated CuratedRegistry
	fetcher MetadataFetcher
	metrics ResolverMetrics
	logger  *zap.Logger
	cache   *sourceCache
}

func NewResolver(
	static StaticRegistry,
	curated CuratedRegistry,
	fetcher MetadataFetcher,
	metrics ResolverMetrics,
	logger *zap.Logger,
) (*Resolver, error) {
	if static == nil || curated == nil {
		return nil, errors.New("resolver registries are required")
	}
	if fetcher == nil {
		return nil, errors.New("resolver metadata fetcher is required")
	}
	if metrics == nil {
		return nil, errors.New("resolver metrics is required")
	}
	return &Resolver{
		static:  static,
		curated: curated,
		fetcher: fetcher,
		metrics: metrics,
		logger:  logger.Named("resolver"),
		cache:   newSourceCache(),
	}, nil
}

// Lookup returns the bundled static icon for req, if there is one.
func (r *Resolver) Lookup(req model.TokenRequest) (model.IconSource, bool) {
	ref, ok := r.static.Lookup(req.Network, req.StaticKey())
	if !ok {
		return model.IconSource{}, false
	}
	return model.StaticSource(ref), true
}

// Cached returns what Resolve would return without suspending, if anything.
func (r *Resolver) Cached(req model.TokenRequest) (model.IconSource, bool) {
	if src, _, ok := r.immediate(req); ok {
		return src, true
	}
	return r.cache.get(req.Key())
}

// Resolve runs the full pipeline. Fetch failures degrade to a none source; the
// only error is ctx.Err() when the caller stops waiting. The fetch itself is not
// cancelled and still settles the cache for later callers.
func (r *Resolver) Resolve(ctx context.Context, req model.TokenRequest) (model.IconSource, error) {
	started := time.Now()
	if src, stage, ok := r.immediate(req); ok {
		r.metrics.ObserveResolve(req.Network, stage, started)
		return src, nil
	}

	key := req.Key()
	if src, ok := r.cache.get(key); ok {
		r.metrics.ObserveCache(req.Network, cacheHit)
		return src, nil
	}
	r.metrics.ObserveCache(req.Network, cacheMiss)

	fetchCtx := context.WithoutCancel(ctx)
	ch := r.cache.load(key, func() model.IconSource {
		src, stage := r.fetch(fetchCtx, req)
		r.metrics.ObserveResolve(req.Network, stage, started)
		return src
	})

	select {
	case <-ctx.Done():
		return model.NoneSource(), ctx.Err()
	case res := <-ch:
		if res.Shared {
			r.logger.Debug("joined in-flight resolution", zap.Stringer("key", key))
		}
		return res.Val.(model.IconSource), nil
	}
}

func (r *Resolver) immediate(req model.TokenRequest) (model.IconSource, string, bool) {
	if src, ok := r.Lookup(req); ok {
		return src, stageStatic, true
	}
	if token, ok := r.curated.StrictToken(req.Network, req.Type); ok && token.LogoURL != "" {
		return model.RemoteSource(token.LogoURL), stageCurated, true
	}
	if req.ExplicitURL != "" {
		return model.RemoteSource(req.ExplicitURL), stageExplicit, true
	}
	if req.Type == "" {
		return model.NoneSource(), stageNone, true
	}
	return model.IconSource{}, "", false
}

func (r *Resolver) fetch(ctx context.Context, req model.TokenRequest) (model.IconSource, string) {
	meta, err := r.fetcher.FetchCoinMetadata(ctx, req.Network, req.Type)
	switch {
	case errors.Is(err, metadata.ErrNotFound):
		r.logger.Debug("no coin metadata", zap.String("network", string(req.Network)), zap.String("type", req.Type))
		return model.NoneSource(), stageNone
	case err != nil:
		r.logger.Warn("coin metadata fetch failed",
			zap.String("network", string(req.Network)),
			zap.String("type", req.Type),
			zap.Error(err),
		)
		return model.NoneSource(), stageFailed
	case meta.IconURL == "":
		return model.NoneSource(), stageNone
	default:
		return model.RemoteSource(meta.IconURL), stageMetadata
	}
}
