// Package batcher provides a generic buffered request/response batcher with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// FlushFunc resolves a batch of distinct keys. Keys missing from the returned map
// are reported to their callers as not found.
type FlushFunc[K comparable, V any] func(context.Context, []K) (map[K]V, error)

type result[V any] struct {
	value V
	found bool
	err   error
}

type request[K comparable, V any] struct {
	key   K
	reply chan result[V]
}

// Batcher buffers keys and resolves them together, either when flushSize distinct
// keys are pending or when flushInterval elapses.
type Batcher[K comparable, V any] struct {
	flushCallback FlushFunc[K, V]
	requestsCh    chan request[K, V]
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. A non-positive rps disables flush rate limiting.
func New[K comparable, V any](logger *zap.Logger, flushCallback FlushFunc[K, V], flushSize int, flushInterval time.Duration, rps int) *Batcher[K, V] {
	if flushSize <= 0 {
		flushSize = 1
	}
	rl := ratelimit.NewUnlimited()
	if rps > 0 {
		rl = ratelimit.New(rps)
	}
	return &Batcher[K, V]{
		logger:        logger,
		flushCallback: flushCallback,
		requestsCh:    make(chan request[K, V], flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            rl,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[K, V]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is pending and stops the background loop. It is safe to call twice.
func (b *Batcher[K, V]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Do queues key and waits for the batch containing it to be flushed. found is
// false when the flush callback did not return the key.
func (b *Batcher[K, V]) Do(ctx context.Context, key K) (value V, found bool, err error) {
	select {
	case <-b.stop:
		return value, false, context.Canceled
	default:
	}

	req := request[K, V]{key: key, reply: make(chan result[V], 1)}
	select {
	case <-ctx.Done():
		return value, false, ctx.Err()
	case <-b.stop:
		return value, false, context.Canceled
	case b.requestsCh <- req:
	}

	select {
	case <-ctx.Done():
		return value, false, ctx.Err()
	case res := <-req.reply:
		return res.value, res.found, res.err
	case <-b.done:
		select {
		case res := <-req.reply:
			return res.value, res.found, res.err
		default:
			return value, false, context.Canceled
		}
	}
}

func (b *Batcher[K, V]) run(ctx context.Context) {
	defer b.wg.Done()
	defer close(b.done)

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	pending := make(map[K][]chan result[V], b.flushSize)
	keys := make([]K, 0, b.flushSize)

	flush := func() {
		if len(keys) == 0 {
			return
		}

		b.rl.Take()
		values, err := b.flushCallback(ctx, keys)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Error(err), zap.Int("size", len(keys)))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(keys)))
		}
		for _, key := range keys {
			value, found := values[key]
			for _, reply := range pending[key] {
				reply <- result[V]{value: value, found: found && err == nil, err: err}
			}
			delete(pending, key)
		}
		keys = keys[:0]
	}

	enqueue := func(req request[K, V]) {
		if _, ok := pending[req.key]; !ok {
			keys = append(keys, req.key)
		}
		pending[req.key] = append(pending[req.key], req.reply)
		if len(keys) >= b.flushSize {
			flush()
		}
	}

	drain := func() {
		for {
			select {
			case req := <-b.requestsCh:
				enqueue(req)
			default:
				flush()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case req := <-b.requestsCh:
			enqueue(req)

		case <-ticker.C:
			flush()
		}
	}
}
