package registry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenicon-backend/internal/clock"
	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

const (
	defaultRetryInitial = 2 * time.Second
	defaultRetryMax     = 1 * time.Minute
)

// LoaderConfig points the loader at the remote lists. An empty URL leaves that
// registry empty for the whole session.
type LoaderConfig struct {
	StrictTokensURL string
	VerifiedNFTsURL string
	Networks        []model.Network
}

// Loader populates the curated and verified registries once per session.
type Loader struct {
	client   JSONGetter
	curated  *CuratedStore
	verified *VerifiedStore
	cfg      LoaderConfig
	metrics  LoaderMetrics
	logger   *zap.Logger
	sleep    func(context.Context, time.Duration) error
	backoff  backoff.BackOff
}

// NewLoader wires a Loader over the given stores.
func NewLoader(
	client JSONGetter,
	curated *CuratedStore,
	verified *VerifiedStore,
	cfg LoaderConfig,
	metrics LoaderMetrics,
	logger *zap.Logger,
) (*Loader, error) {
	if client == nil {
		return nil, errors.New("registry loader client is required")
	}
	if metrics == nil {
		return nil, errors.New("registry loader metrics is required")
	}
	if curated == nil || verified == nil {
		return nil, errors.New("registry loader stores are required")
	}
	return &Loader{
		client:   client,
		curated:  curated,
		verified: verified,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger.Named("registryLoader"),
		sleep:    clock.SleepWithContext,
		backoff:  newRetryBackoff(),
	}, nil
}

// Run retries LoadOnce until every configured registry is loaded or ctx ends.
func (l *Loader) Run(ctx context.Context) error {
	for attempt := 0; ; attempt++ {
		err := l.LoadOnce(ctx)
		if err == nil {
			l.logger.Info("registries loaded", zap.Int("attempts", attempt+1))
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		wait := l.backoff.NextBackOff()
		l.logger.Warn("registry load incomplete, backing off", zap.Error(err), zap.Duration("sleep", wait))
		if sleepErr := l.sleep(ctx, wait); sleepErr != nil {
			return sleepErr
		}
	}
}

func newRetryBackoff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = defaultRetryInitial
	b.MaxInterval = defaultRetryMax
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// LoadOnce fetches every registry that is configured but not loaded yet.
func (l *Loader) LoadOnce(ctx context.Context) error {
	var errs []error
	for _, network := range l.cfg.Networks {
		if l.cfg.StrictTokensURL != "" && !l.curated.Loaded(network) {
			if err := l.loadStrictTokens(ctx, network); err != nil {
				errs = append(errs, err)
			}
		}
		if l.cfg.VerifiedNFTsURL != "" && !l.verified.Loaded(network) {
			if err := l.loadVerified(ctx, network); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (l *Loader) loadStrictTokens(ctx context.Context, network model.Network) (err error) {
	started := time.Now()
	var tokens []model.StrictToken
	defer func() {
		l.metrics.ObserveLoad("strict_tokens", string(network), len(tokens), err, started)
	}()

	if err = l.client.GetJSON(ctx, l.cfg.StrictTokensURL, networkParams(network), &tokens); err != nil {
		return fmt.Errorf("load strict tokens for %s: %w", network, err)
	}
	if l.curated.Load(network, tokens) {
		l.logger.Info("strict tokens loaded", zap.String("network", string(network)), zap.Int("tokens", len(tokens)))
	}
	return nil
}

func (l *Loader) loadVerified(ctx context.Context, network model.Network) (err error) {
	started := time.Now()
	var types []string
	defer func() {
		l.metrics.ObserveLoad("verified_nfts", string(network), len(types), err, started)
	}()

	if err = l.client.GetJSON(ctx, l.cfg.VerifiedNFTsURL, networkParams(network), &types); err != nil {
		return fmt.Errorf("load verified nfts for %s: %w", network, err)
	}
	if l.verified.Load(network, types) {
		l.logger.Info("verified nfts loaded", zap.String("network", string(network)), zap.Int("types", len(types)))
	}
	return nil
}

func networkParams(network model.Network) url.Values {
	params := url.Values{}
	params.Set("network", string(network))
	return params
}
