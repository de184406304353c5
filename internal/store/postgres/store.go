// Package postgres implements the pipeline store on PostgreSQL. Upsert
// semantics come from conditional ON CONFLICT clauses: the version compare in
// the DO UPDATE predicate (write_version for accounts, status_rank for slots)
// makes every bulk write idempotent and regression-proof, so whole-batch
// retries are always safe.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store holds one pgx connection pool.
type Store struct {
	pool    Pool
	metrics Metrics
}

// New opens a PostgreSQL connection pool for the given DSN.
func New(ctx context.Context, dsn string, metrics Metrics) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("postgres metrics is required")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	return &Store{pool: pool, metrics: metrics}, nil
}

// HealthCheck pings the store.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// Reconnect verifies the pool is usable again. pgxpool discards broken
// connections and redials on demand, so a successful ping is all the
// recovery the store needs.
func (s *Store) Reconnect(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveReconnect(err, started)
	}()

	if err = s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	results := s.pool.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return err
		}
	}
	return results.Close()
}

func signatureString(sig *solana.Signature) string {
	if sig == nil {
		return ""
	}
	return sig.String()
}
