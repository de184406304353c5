// Package clickhouse implements the pipeline store on ClickHouse. Upsert
// semantics come from ReplacingMergeTree table engines: the version column
// (write_version for accounts, status_rank for slots) makes every bulk write
// idempotent and regression-proof, so whole-batch retries are always safe.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/gagliardetto/solana-go"
)

// Store holds one ClickHouse connection pool. Reconnect swaps the pool for a
// fresh one; writes in flight keep the session they checked out.
type Store struct {
	dsn     string
	metrics Metrics

	mu   sync.Mutex
	conn Conn
}

// New opens a ClickHouse connection for the given DSN.
func New(dsn string, metrics Metrics) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("clickhouse metrics is required")
	}

	conn, err := open(dsn)
	if err != nil {
		return nil, err
	}
	return &Store{dsn: dsn, metrics: metrics, conn: conn}, nil
}

func open(dsn string) (Conn, error) {
	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}
	return narrowConn{conn}, nil
}

// narrowConn narrows driver.Conn to the store's Conn surface.
type narrowConn struct {
	driver.Conn
}

func (c narrowConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.Conn.PrepareBatch(ctx, query)
}

func (s *Store) session() Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

// HealthCheck pings the store.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.session().Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	return nil
}

// Reconnect establishes a fresh connection pool and retires the old one.
func (s *Store) Reconnect(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveReconnect(err, started)
	}()

	conn, err := open(s.dsn)
	if err != nil {
		return err
	}
	if err = conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return fmt.Errorf("ping clickhouse: %w", err)
	}

	s.mu.Lock()
	old := s.conn
	s.conn = conn
	s.mu.Unlock()
	_ = old.Close()
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.session().Close()
}

func signatureString(sig *solana.Signature) string {
	if sig == nil {
		return ""
	}
	return sig.String()
}
