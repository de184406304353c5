package clickhouse

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Batch is the staged-insert surface of one bulk write.
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}

	// Conn is the slice of the ClickHouse connection the store uses.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		Ping(ctx context.Context) error
		Close() error
	}

	Metrics interface {
		Observe(operation string, rows int, err error, started time.Time)
		ObserveReconnect(err error, started time.Time)
	}
)
