// Package icon resolves token and NFT icons and derives their badges and load state.
package icon

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
	"github.com/goodnatureofminers/tokenicon-backend/pkg/workerpool"
)

// Service is the consumer entry point: it hands out Instances for interactive
// use and describes requests to settlement for server use.
type Service struct {
	resolver  *Resolver
	annotator *Annotator
	workers   int
	logger    *zap.Logger
}

func NewService(resolver *Resolver, annotator *Annotator, workers int, logger *zap.Logger) (*Service, error) {
	if resolver == nil {
		return nil, errors.New("icon resolver is required")
	}
	if annotator == nil {
		return nil, errors.New("icon annotator is required")
	}
	if workers <= 0 {
		workers = DefaultResolveWorkers
	}
	return &Service{
		resolver:  resolver,
		annotator: annotator,
		workers:   workers,
		logger:    logger.Named("icon"),
	}, nil
}

// NewInstance returns an Instance already pointed at req.
func (s *Service) NewInstance(req model.TokenRequest, hints model.Hints) *Instance {
	inst := newInstance(s, hints)
	inst.SetRequest(req)
	return inst
}

// Describe resolves req to settlement. The load state is what a consumer starts
// with for the chosen source.
func (s *Service) Describe(ctx context.Context, req model.TokenRequest, hints model.Hints) (model.View, error) {
	src, err := s.resolver.Resolve(ctx, req)
	if err != nil {
		return model.View{}, err
	}
	state := NewLoadController().Target(src)
	return s.view(req, src, false, state, hints.WithDefaults()), nil
}

// ResolveMany describes every request with bounded concurrency, keeping order.
func (s *Service) ResolveMany(ctx context.Context, reqs []model.TokenRequest, hints model.Hints) ([]model.View, error) {
	return workerpool.Map(ctx, s.workers, reqs, func(ctx context.Context, req model.TokenRequest) (model.View, error) {
		return s.Describe(ctx, req, hints)
	})
}

// Probe resolves req through an Instance and feeds the outcome of loading the
// chosen image with prober into its load state. Sources without an absolute
// image URL are returned as resolved.
func (s *Service) Probe(ctx context.Context, req model.TokenRequest, hints model.Hints, prober ImageProber) (model.View, error) {
	inst := s.NewInstance(req, hints)
	if err := inst.Wait(ctx); err != nil {
		return model.View{}, err
	}

	target := inst.View().Source.ImageURL()
	if !isAbsoluteURL(target) {
		return inst.View(), nil
	}

	if err := prober.Probe(ctx, target); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.View{}, ctxErr
		}
		s.logger.Debug("image probe failed", zap.String("url", target), zap.Error(err))
		inst.OnError()
	} else {
		inst.OnLoaded()
	}
	return inst.View(), nil
}

func isAbsoluteURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

func (s *Service) view(req model.TokenRequest, src model.IconSource, pending bool, state model.LoadState, hints model.Hints) model.View {
	v := model.View{
		Request:   req,
		Source:    src,
		Pending:   pending,
		LoadState: state,
		Verified:  s.annotator.IsVerified(req),
		Hints:     hints,
	}
	if !pending {
		v.Fallback = state == model.LoadStateFailed || src.Kind == model.SourceNone
	}
	if origin, ok := s.annotator.OriginOf(req); ok {
		v.Origin = origin
		if !hints.Simple {
			v.ChainBadge = origin
		}
	}
	return v
}
