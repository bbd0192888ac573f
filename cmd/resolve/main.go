package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenicon-backend/internal/httpclient"
	"github.com/goodnatureofminers/tokenicon-backend/internal/icon"
	"github.com/goodnatureofminers/tokenicon-backend/internal/metadata"
	"github.com/goodnatureofminers/tokenicon-backend/internal/metrics"
	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
	"github.com/goodnatureofminers/tokenicon-backend/internal/registry"
)

type config struct {
	Network         string        `long:"network" env:"TOKENICON_NETWORK" description:"Network of the token" default:"mainnet"`
	Type            string        `long:"type" description:"Coin or NFT type"`
	URL             string        `long:"url" description:"Explicit image URL, e.g. an NFT display image_url"`
	Symbol          string        `long:"symbol" description:"Symbol, used for static icons off mainnet"`
	Simple          bool          `long:"simple" description:"Suppress the chain badge"`
	Probe           bool          `long:"probe" description:"Load the chosen image and report the outcome"`
	MetadataURL     string        `long:"metadata-url" env:"TOKENICON_METADATA_URL" description:"Base URL of the remote coin metadata API" required:"true"`
	StrictTokensURL string        `long:"strict-tokens-url" env:"TOKENICON_STRICT_TOKENS_URL" description:"Curated token list URL"`
	VerifiedNFTsURL string        `long:"verified-nfts-url" env:"TOKENICON_VERIFIED_NFTS_URL" description:"Verified NFT type list URL"`
	Timeout         time.Duration `long:"timeout" env:"TOKENICON_TIMEOUT" description:"Overall deadline" default:"30s"`
	Verbose         bool          `long:"verbose" short:"v" description:"Debug logging"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	view, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to resolve icon", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		logger.Fatal("Failed to write result", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (model.View, error) {
	network, ok := model.ParseNetwork(cfg.Network)
	if !ok {
		return model.View{}, errors.New("unknown network " + cfg.Network)
	}
	httpClient := httpclient.New(cfg.Timeout, 0)

	curated := registry.NewCuratedStore()
	verified := registry.NewVerifiedStore()
	loader, err := registry.NewLoader(httpClient, curated, verified, registry.LoaderConfig{
		StrictTokensURL: cfg.StrictTokensURL,
		VerifiedNFTsURL: cfg.VerifiedNFTsURL,
		Networks:        []model.Network{network},
	}, metrics.NewRegistryLoader(), logger)
	if err != nil {
		return model.View{}, err
	}
	if err := loader.LoadOnce(ctx); err != nil {
		logger.Warn("Registries incomplete, resolving without them", zap.Error(err))
	}

	client, err := metadata.NewClient(cfg.MetadataURL, httpClient, metrics.NewMetadataClient(), logger)
	if err != nil {
		return model.View{}, err
	}
	resolver, err := icon.NewResolver(registry.NewStaticIcons(), curated, client, metrics.NewResolver(), logger)
	if err != nil {
		return model.View{}, err
	}
	annotator := icon.NewAnnotator(curated, verified, registry.Wormhole(), registry.SuiBridge())
	service, err := icon.NewService(resolver, annotator, 1, logger)
	if err != nil {
		return model.View{}, err
	}

	req := model.TokenRequest{
		Network:     network,
		Type:        cfg.Type,
		ExplicitURL: cfg.URL,
		Symbol:      cfg.Symbol,
	}
	hints := model.Hints{Simple: cfg.Simple}
	if cfg.Probe {
		return service.Probe(ctx, req, hints, httpClient)
	}
	return service.Describe(ctx, req, hints)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}
