package icon

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

// Instance is the state behind one rendered icon. SetRequest starts resolution,
// View derives what to render, and the consumer reports image load outcomes
// through OnLoaded and OnError.
type Instance struct {
	service *Service
	hints   model.Hints
	load    *LoadController
	logger  *zap.Logger

	mu      sync.Mutex
	req     model.TokenRequest
	started bool
	source  model.IconSource
	pending bool
	settled chan struct{}
}

var settledNow = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func newInstance(service *Service, hints model.Hints) *Instance {
	return &Instance{
		service: service,
		hints:   hints.WithDefaults(),
		load:    NewLoadController(),
		logger:  service.logger,
		source:  model.NoneSource(),
		settled: settledNow,
	}
}

// SetRequest points the instance at req. Sources available without a fetch are
// applied at once; otherwise the instance is pending until the fetch settles. A
// fetch that settles after a later SetRequest is discarded.
func (i *Instance) SetRequest(req model.TokenRequest) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.started && req == i.req {
		return
	}
	i.started = true
	i.req = req

	if src, ok := i.service.resolver.Cached(req); ok {
		i.settled = settledNow
		i.apply(src)
		return
	}

	i.pending = true
	i.source = model.NoneSource()
	settled := make(chan struct{})
	i.settled = settled

	go func() {
		defer close(settled)

		src, _ := i.service.resolver.Resolve(context.Background(), req)

		i.mu.Lock()
		defer i.mu.Unlock()
		if i.settled != settled {
			i.logger.Debug("stale resolution discarded",
				zap.Stringer("key", req.Key()),
				zap.Stringer("current", i.req.Key()),
			)
			return
		}
		i.apply(src)
	}()
}

func (i *Instance) apply(src model.IconSource) {
	i.source = src
	i.pending = false
	i.load.Target(src)
}

// Wait blocks until the current request has a source or ctx ends.
func (i *Instance) Wait(ctx context.Context) error {
	for {
		i.mu.Lock()
		settled := i.settled
		i.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-settled:
		}

		i.mu.Lock()
		current := i.settled == settled
		i.mu.Unlock()
		if current {
			return nil
		}
	}
}

// OnLoaded reports that the consumer finished loading the current image.
func (i *Instance) OnLoaded() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.pending {
		return false
	}
	return i.load.OnLoaded(i.source.Identity())
}

// OnError reports that the consumer failed to load the current image.
func (i *Instance) OnError() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.pending {
		return false
	}
	return i.load.OnError(i.source.Identity())
}

// View derives everything needed for one render.
func (i *Instance) View() model.View {
	i.mu.Lock()
	req, src, pending := i.req, i.source, i.pending
	state := model.LoadStateLoading
	if !pending {
		state = i.load.State()
	}
	i.mu.Unlock()

	return i.service.view(req, src, pending, state, i.hints)
}
