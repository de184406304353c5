package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Pool is the slice of the pgx connection pool the store uses.
	Pool interface {
		SendBatch(ctx context.Context, batch *pgx.Batch) pgx.BatchResults
		Ping(ctx context.Context) error
		Close()
	}

	Metrics interface {
		Observe(operation string, rows int, err error, started time.Time)
		ObserveReconnect(err error, started time.Time)
	}
)

var _ Pool = (*pgxpool.Pool)(nil)
