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

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/geyserwatch/solsink-backend/internal/geyser/selector"
	"github.com/geyserwatch/solsink-backend/internal/geyser/synthetic"
	"github.com/geyserwatch/solsink-backend/internal/metrics"
	"github.com/geyserwatch/solsink-backend/internal/model"
	"github.com/geyserwatch/solsink-backend/internal/pipeline"
	"github.com/geyserwatch/solsink-backend/internal/store/clickhouse"
	"github.com/geyserwatch/solsink-backend/internal/store/postgres"
)

type config struct {
	Backend       string `long:"backend" env:"SOLSINK_INGESTER_BACKEND" default:"clickhouse" choice:"clickhouse" choice:"postgres" description:"storage backend"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"SOLSINK_INGESTER_CLICKHOUSE_DSN" default:"clickhouse://localhost:9000/default" description:"ClickHouse DSN"`
	PostgresDSN   string `long:"postgres-dsn" env:"SOLSINK_INGESTER_POSTGRES_DSN" default:"postgres://localhost:5432/solsink" description:"PostgreSQL DSN"`

	QueueCapacity int           `long:"queue-capacity" env:"SOLSINK_INGESTER_QUEUE_CAPACITY" default:"40960" description:"bounded queue size per record kind"`
	BatchSize     int           `long:"batch-size" env:"SOLSINK_INGESTER_BATCH_SIZE" default:"10" description:"records per batch before a flush is forced"`
	FlushInterval time.Duration `long:"flush-interval" env:"SOLSINK_INGESTER_FLUSH_INTERVAL" default:"1s" description:"upper bound on how long a pending batch waits"`
	SubmitTimeout time.Duration `long:"submit-timeout" env:"SOLSINK_INGESTER_SUBMIT_TIMEOUT" default:"10s" description:"how long a submit blocks under backpressure"`
	Workers       int           `long:"workers" env:"SOLSINK_INGESTER_WORKERS" default:"10" description:"worker goroutines"`
	StoreTimeout  time.Duration `long:"store-timeout" env:"SOLSINK_INGESTER_STORE_TIMEOUT" default:"30s" description:"timeout per store round-trip"`
	MaxRetries    int           `long:"max-retries" env:"SOLSINK_INGESTER_MAX_RETRIES" default:"5" description:"flush attempts before a batch is dropped"`
	PanicOnError  bool          `long:"panic-on-error" env:"SOLSINK_INGESTER_PANIC_ON_ERROR" description:"halt on a flush failure instead of dropping the batch"`

	StoreHistorical bool `long:"store-historical" env:"SOLSINK_INGESTER_STORE_HISTORICAL" description:"keep an append-only history row per account write"`
	TokenOwnerIndex bool `long:"token-owner-index" env:"SOLSINK_INGESTER_TOKEN_OWNER_INDEX" description:"maintain the token owner secondary index"`
	TokenMintIndex  bool `long:"token-mint-index" env:"SOLSINK_INGESTER_TOKEN_MINT_INDEX" description:"maintain the token mint secondary index"`
	SkipVotes       bool `long:"skip-votes" env:"SOLSINK_INGESTER_SKIP_VOTES" description:"drop vote transactions before they are queued"`

	SelectAccounts []string `long:"select-account" env:"SOLSINK_INGESTER_SELECT_ACCOUNTS" env-delim:"," description:"account pubkeys to ingest; * selects all"`
	SelectOwners   []string `long:"select-owner" env:"SOLSINK_INGESTER_SELECT_OWNERS" env-delim:"," description:"owner programs to ingest"`

	SourceRPS             int   `long:"source-rps" env:"SOLSINK_INGESTER_SOURCE_RPS" default:"2000" description:"steady-state notifications per second"`
	SourceAccounts        int   `long:"source-accounts" env:"SOLSINK_INGESTER_SOURCE_ACCOUNTS" default:"1024" description:"synthetic keyspace size"`
	SourceStartupAccounts int   `long:"source-startup-accounts" env:"SOLSINK_INGESTER_SOURCE_STARTUP_ACCOUNTS" default:"512" description:"snapshot updates replayed before end of startup"`
	SourceSeed            int64 `long:"source-seed" env:"SOLSINK_INGESTER_SOURCE_SEED" description:"rng seed for the synthetic source"`

	MetricsAddr string `long:"metrics-addr" env:"SOLSINK_INGESTER_METRICS_ADDR" default:":2112" description:"address for metrics server"`
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

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("solsink ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	store, err := newStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	p, err := pipeline.New(logger, store, metrics.NewPipeline(), pipeline.Config{
		QueueCapacity:   cfg.QueueCapacity,
		BatchSize:       cfg.BatchSize,
		FlushInterval:   cfg.FlushInterval,
		SubmitTimeout:   cfg.SubmitTimeout,
		Workers:         cfg.Workers,
		StoreTimeout:    cfg.StoreTimeout,
		MaxRetries:      cfg.MaxRetries,
		PanicOnError:    cfg.PanicOnError,
		StoreHistorical: cfg.StoreHistorical,
		TokenOwnerIndex: cfg.TokenOwnerIndex,
		TokenMintIndex:  cfg.TokenMintIndex,
	})
	if err != nil {
		return fmt.Errorf("init pipeline: %w", err)
	}

	accounts := cfg.SelectAccounts
	if len(accounts) == 0 && len(cfg.SelectOwners) == 0 {
		accounts = []string{selector.Wildcard}
	}
	sel := selector.NewAccountsSelector(logger, accounts, cfg.SelectOwners)

	var sink synthetic.Sink = p
	if cfg.SkipVotes {
		sink = voteFilteringSink{Sink: p}
	}

	source, err := synthetic.NewSource(logger, sink, sel, synthetic.Config{
		Accounts:        cfg.SourceAccounts,
		StartupAccounts: cfg.SourceStartupAccounts,
		RPS:             cfg.SourceRPS,
		Seed:            cfg.SourceSeed,
	})
	if err != nil {
		return fmt.Errorf("init source: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.Run(gctx)
	})
	g.Go(func() error {
		return source.Run(gctx)
	})
	return g.Wait()
}

// closableStore is the pipeline store plus the connection lifecycle the
// daemon owns.
type closableStore interface {
	pipeline.Store
	Close() error
}

func newStore(ctx context.Context, cfg config) (closableStore, error) {
	switch cfg.Backend {
	case "postgres":
		return postgres.New(ctx, cfg.PostgresDSN, metrics.NewStore(cfg.Backend))
	default:
		return clickhouse.New(cfg.ClickhouseDSN, metrics.NewStore(cfg.Backend))
	}
}

// voteFilteringSink drops vote transactions before they reach the queues.
// Everything else passes through.
type voteFilteringSink struct {
	synthetic.Sink
}

func (s voteFilteringSink) SubmitTransaction(ctx context.Context, txn model.TransactionRecord) error {
	if txn.IsVote {
		return nil
	}
	return s.Sink.SubmitTransaction(ctx, txn)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
