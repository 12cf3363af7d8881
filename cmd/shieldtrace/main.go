package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/shieldtrace/internal/metrics"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/chain"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/provenance"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/repository/clickhouse"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/service/builder"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/service/publisher"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/source/filecache"
	"github.com/goodnatureofminers/shieldtrace/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	CacheFile     string          `long:"cache-file" env:"SHIELDTRACE_CACHE_FILE" description:"JSON event cache written by the log scanner"`
	ClickhouseDSN string          `long:"clickhouse-dsn" env:"SHIELDTRACE_CLICKHOUSE_DSN" description:"ClickHouse DSN; read events from the event store instead of the cache file"`
	Pool          model.Pool      `long:"pool" env:"SHIELDTRACE_POOL" description:"shielded pool" default:"firn" choice:"firn"`
	Network       model.Network   `long:"network" env:"SHIELDTRACE_NETWORK" description:"network name" default:"mainnet" choice:"mainnet" choice:"sepolia"`
	Mode          provenance.Mode `long:"mode" env:"SHIELDTRACE_MODE" description:"deposit blending mode" default:"weighted" choice:"weighted" choice:"latest-deposit"`
	Output        string          `long:"output" env:"SHIELDTRACE_OUTPUT" description:"DOT output path, - for stdout" default:"-"`
	PersistEdges  bool            `long:"persist-edges" env:"SHIELDTRACE_PERSIST_EDGES" description:"store attribution edges in ClickHouse"`
	WatchInterval time.Duration   `long:"watch-interval" env:"SHIELDTRACE_WATCH_INTERVAL" description:"rebuild whenever the source advances, polling at this interval; 0 builds once"`
	HTTPAddr      string          `long:"http-addr" env:"SHIELDTRACE_HTTP_ADDR" description:"address serving /graph and /metrics; empty disables it"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.CacheFile == "" && cfg.ClickhouseDSN == "" {
		logger.Fatal("either a cache file or a ClickHouse DSN is required")
	}
	if cfg.PersistEdges && cfg.ClickhouseDSN == "" {
		logger.Fatal("persisting edges requires a ClickHouse DSN")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("shieldtrace failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	var (
		source     builder.EventSource
		publishers []builder.Publisher
	)

	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("failed to close repository", zap.Error(err))
			}
		}()
		if cfg.PersistEdges {
			publishers = append(publishers, publisher.NewEdges(repo, cfg.Pool, cfg.Network, logger.Named("edges")))
		}
		if cfg.CacheFile == "" {
			source = chain.NewRepositorySource(repo, cfg.Pool, cfg.Network)
		}
	}
	if source == nil {
		source = filecache.New(cfg.CacheFile)
	}

	if cfg.Output != "" {
		publishers = append(publishers, publisher.NewFile(cfg.Output, logger.Named("file")))
	}
	if cfg.HTTPAddr != "" {
		handler := transport.NewGraphHandler(logger.Named("http"))
		publishers = append(publishers, handler)
		startHTTPServer(ctx, cfg.HTTPAddr, handler, logger)
	}

	svc, err := builder.NewBuilder(
		source,
		publishers,
		metrics.NewGraphBuilder(cfg.Pool, cfg.Network),
		metrics.NewProvenance(cfg.Pool, cfg.Network),
		builder.Config{
			Pool:          cfg.Pool,
			Network:       cfg.Network,
			Mode:          cfg.Mode,
			WatchInterval: cfg.WatchInterval,
		},
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startHTTPServer(ctx context.Context, addr string, graph http.Handler, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/graph", graph)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go func() {
		logger.Info("starting http server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()
}
