package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/tokenicon-backend/internal/httpclient"
	"github.com/goodnatureofminers/tokenicon-backend/internal/icon"
	"github.com/goodnatureofminers/tokenicon-backend/internal/metadata"
	"github.com/goodnatureofminers/tokenicon-backend/internal/metrics"
	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
	"github.com/goodnatureofminers/tokenicon-backend/internal/registry"
	"github.com/goodnatureofminers/tokenicon-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/tokenicon-backend/internal/transport"
)

var config struct {
	Addr                  string        `long:"addr" env:"TOKENICON_ADDR" description:"gRPC addr" default:":8000"`
	RestAddr              string        `long:"rest-addr" env:"TOKENICON_REST_ADDR" description:"rest addr" default:":8001"`
	ClickhouseDSN         string        `long:"clickhouse-dsn" env:"TOKENICON_CLICKHOUSE_DSN" description:"ClickHouse DSN; enables the coin-metadata API and the local metadata mirror"`
	MetadataURL           string        `long:"metadata-url" env:"TOKENICON_METADATA_URL" description:"Base URL of the remote coin metadata API"`
	StrictTokensURL       string        `long:"strict-tokens-url" env:"TOKENICON_STRICT_TOKENS_URL" description:"Curated token list URL"`
	VerifiedNFTsURL       string        `long:"verified-nfts-url" env:"TOKENICON_VERIFIED_NFTS_URL" description:"Verified NFT type list URL"`
	Networks              []string      `long:"network" env:"TOKENICON_NETWORKS" env-delim:"," description:"Networks to serve" default:"mainnet" default:"testnet"`
	HTTPTimeout           time.Duration `long:"http-timeout" env:"TOKENICON_HTTP_TIMEOUT" description:"Outbound HTTP timeout" default:"10s"`
	HTTPRPS               int           `long:"http-rps" env:"TOKENICON_HTTP_RPS" description:"Outbound HTTP requests per second, 0 for unlimited" default:"0"`
	MetadataRPS           int           `long:"metadata-rps" env:"TOKENICON_METADATA_RPS" description:"Metadata batch flushes per second per network" default:"20"`
	MetadataBatchSize     int           `long:"metadata-batch-size" env:"TOKENICON_METADATA_BATCH_SIZE" description:"Types per metadata request" default:"50"`
	MetadataBatchInterval time.Duration `long:"metadata-batch-interval" env:"TOKENICON_METADATA_BATCH_INTERVAL" description:"Max wait before a partial metadata batch is sent" default:"50ms"`
	ResolveWorkers        int           `long:"resolve-workers" env:"TOKENICON_RESOLVE_WORKERS" description:"Concurrent resolutions per batch call" default:"8"`
	Probe                 bool          `long:"probe" env:"TOKENICON_PROBE" description:"Allow probe=true on /v1/icon"`
	LogJSON               bool          `long:"log-json" env:"TOKENICON_LOG_JSON" description:"Log in JSON"`
}

func main() {
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("failed to parse arguments: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := newLogger(config.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	networks, err := parseNetworks(config.Networks)
	if err != nil {
		logger.Fatal("Invalid network", zap.Error(err))
	}
	httpClient := httpclient.New(config.HTTPTimeout, config.HTTPRPS)

	var repo *clickhouse.Repository
	if config.ClickhouseDSN != "" {
		repo, err = clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			logger.Fatal("Failed to init clickhouse repository", zap.Error(err))
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("Failed to close clickhouse repository", zap.Error(err))
			}
		}()
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := repo.Ping(pingCtx); err != nil {
			logger.Fatal("Failed to ping clickhouse", zap.Error(err))
		}
		cancel()
	}

	source, err := newMetadataSource(repo, httpClient, logger)
	if err != nil {
		logger.Fatal("Failed to init metadata source", zap.Error(err))
	}
	batch, err := metadata.NewBatchFetcher(source, metadata.BatchConfig{
		Networks:      networks,
		FlushSize:     config.MetadataBatchSize,
		FlushInterval: config.MetadataBatchInterval,
		RPS:           config.MetadataRPS,
	}, metrics.NewBatchFetcher(), logger)
	if err != nil {
		logger.Fatal("Failed to init metadata batch fetcher", zap.Error(err))
	}
	batch.Start(ctx)
	defer batch.Stop()

	curated := registry.NewCuratedStore()
	verified := registry.NewVerifiedStore()
	loader, err := registry.NewLoader(httpClient, curated, verified, registry.LoaderConfig{
		StrictTokensURL: config.StrictTokensURL,
		VerifiedNFTsURL: config.VerifiedNFTsURL,
		Networks:        networks,
	}, metrics.NewRegistryLoader(), logger)
	if err != nil {
		logger.Fatal("Failed to init registry loader", zap.Error(err))
	}
	go func() {
		if err := loader.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Registry loader stopped", zap.Error(err))
		}
	}()

	resolver, err := icon.NewResolver(registry.NewStaticIcons(), curated, batch, metrics.NewResolver(), logger)
	if err != nil {
		logger.Fatal("Failed to init icon resolver", zap.Error(err))
	}
	annotator := icon.NewAnnotator(curated, verified, registry.Wormhole(), registry.SuiBridge())
	icons, err := icon.NewService(resolver, annotator, config.ResolveWorkers, logger)
	if err != nil {
		logger.Fatal("Failed to init icon service", zap.Error(err))
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	conn, err := grpc.NewClient(config.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("Dial health service", zap.Error(err))
	}
	defer func() {
		_ = conn.Close()
	}()

	gw := gwruntime.NewServeMux(
		gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)),
	)
	var prober icon.ImageProber
	if config.Probe {
		prober = httpClient
	}
	iconHandler, err := transport.NewIconHandler(icons, prober, logger)
	if err != nil {
		logger.Fatal("Init icon handler", zap.Error(err))
	}
	if err := iconHandler.Register(gw); err != nil {
		logger.Fatal("Register icon handler", zap.Error(err))
	}
	if repo != nil {
		stored, err := metadata.NewRepositoryFetcher(repo)
		if err != nil {
			logger.Fatal("Init repository fetcher", zap.Error(err))
		}
		metadataHandler, err := transport.NewCoinMetadataHandler(stored, logger)
		if err != nil {
			logger.Fatal("Init coin metadata handler", zap.Error(err))
		}
		if err := metadataHandler.Register(gw); err != nil {
			logger.Fatal("Register coin metadata handler", zap.Error(err))
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", config.RestAddr),
		zap.Strings("networks", config.Networks),
		zap.Bool("clickhouse", repo != nil),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func parseNetworks(raw []string) ([]model.Network, error) {
	networks := make([]model.Network, 0, len(raw))
	for _, s := range raw {
		network, ok := model.ParseNetwork(s)
		if !ok {
			return nil, errors.New("unknown network " + s)
		}
		networks = append(networks, network)
	}
	return networks, nil
}

// newMetadataSource prefers the remote API, mirrored into ClickHouse when both
// are configured.
func newMetadataSource(repo *clickhouse.Repository, httpClient *httpclient.Client, logger *zap.Logger) (metadata.ManyFetcher, error) {
	var remote *metadata.Client
	if config.MetadataURL != "" {
		client, err := metadata.NewClient(config.MetadataURL, httpClient, metrics.NewMetadataClient(), logger)
		if err != nil {
			return nil, err
		}
		remote = client
	}

	switch {
	case remote != nil && repo != nil:
		return metadata.NewMirrorFetcher(repo, repo, remote, logger)
	case remote != nil:
		return remote, nil
	case repo != nil:
		return metadata.NewRepositoryFetcher(repo)
	default:
		return nil, errors.New("either --metadata-url or --clickhouse-dsn is required")
	}
}
