package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/shieldtrace/internal/metrics"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/repository/clickhouse"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/source/filecache"
	"github.com/goodnatureofminers/shieldtrace/pkg/workerpool"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	CacheFile     string        `long:"cache-file" env:"SHIELDTRACE_CACHE_FILE" description:"JSON event cache to import" required:"true"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"SHIELDTRACE_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Pool          model.Pool    `long:"pool" env:"SHIELDTRACE_POOL" description:"shielded pool" default:"firn" choice:"firn"`
	Network       model.Network `long:"network" env:"SHIELDTRACE_NETWORK" description:"network name" default:"mainnet" choice:"mainnet" choice:"sepolia"`
	ChunkSize     int           `long:"chunk-size" env:"SHIELDTRACE_IMPORT_CHUNK_SIZE" description:"records per insert" default:"10000"`
	Workers       int           `long:"workers" env:"SHIELDTRACE_IMPORT_WORKERS" description:"concurrent inserts" default:"4"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("event import failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	highest, records, err := filecache.New(cfg.CacheFile).Records(ctx)
	if err != nil {
		return fmt.Errorf("read cache: %w", err)
	}
	for i := range records {
		records[i].Pool = cfg.Pool
		records[i].Network = cfg.Network
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close repository", zap.Error(err))
		}
	}()

	m := metrics.NewEventImporter(cfg.Pool, cfg.Network)
	chunks := workerpool.Chunk(records, cfg.ChunkSize)
	logger.Info("importing events",
		zap.Uint64("highest_block", highest),
		zap.Int("records", len(records)),
		zap.Int("chunks", len(chunks)))

	err = workerpool.Process(ctx, cfg.Workers, chunks, func(ctx context.Context, chunk []model.EventRecord) error {
		started := time.Now()
		err := repo.InsertEvents(ctx, chunk)
		m.ObserveChunk(err, len(chunk), started)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info("events imported", zap.Int("records", len(records)))
	return nil
}
