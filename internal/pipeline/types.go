package pipeline

import (
	"context"
	"time"

	"github.com/geyserwatch/solsink-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the write surface of the persistent store. Every bulk call is
	// atomic as a single logical unit and idempotent under whole-batch replay,
	// so a retry after an ambiguous failure is always safe.
	Store interface {
		UpsertAccounts(ctx context.Context, accounts []model.AccountUpdate) error
		InsertAccountHistory(ctx context.Context, accounts []model.AccountUpdate) error
		UpsertSlotStatuses(ctx context.Context, slots []model.SlotStatusUpdate) error
		InsertTransactions(ctx context.Context, txns []model.TransactionRecord) error
		InsertBlockMetadata(ctx context.Context, blocks []model.BlockMetadataRecord) error
		InsertTokenIndexEntries(ctx context.Context, kind model.IndexKind, entries []model.TokenIndexEntry) error
		HealthCheck(ctx context.Context) error
		Reconnect(ctx context.Context) error
	}

	// Metrics receives pipeline observations.
	Metrics interface {
		ObserveSubmit(kind model.RecordKind, err error)
		SetQueueDepth(kind model.RecordKind, depth int)
		ObserveOrderingViolation(kind model.RecordKind)
		ObserveFlush(kind model.RecordKind, err error, records int, started time.Time)
		ObserveFlushRetry(kind model.RecordKind)
		ObserveDroppedBatch(kind model.RecordKind, records int)
		ObserveStartupDrain(kind model.RecordKind, records int)
		ObserveStartupSlotsRooted(slots int)
	}
)
