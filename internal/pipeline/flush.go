package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geyserwatch/solsink-backend/internal/clock"
	"github.com/geyserwatch/solsink-backend/internal/model"
	"go.uber.org/zap"
)

// errBatchDropped marks a batch abandoned after the retry budget ran out. It
// never escapes the flusher: callers see a durable batch, a dropped batch
// (nil error) or a fatal error under PanicOnError.
var errBatchDropped = errors.New("batch dropped")

// flusher executes the flush protocol for every record kind: one idempotent
// bulk write per batch against the store, retried with bounded exponential
// backoff and a fresh session on connection trouble.
type flusher struct {
	logger  *zap.Logger
	cfg     Config
	store   Store
	metrics Metrics
	indexer *indexMaintainer
}

// forShutdown returns a flusher that reports failures as dropped batches
// instead of halting, for the final drain pass.
func (f *flusher) forShutdown() *flusher {
	shutdown := *f
	shutdown.cfg.PanicOnError = false
	return &shutdown
}

// flushAccounts writes an account batch, the optional history rows, and the
// derived token index entries. Index entries flush strictly after the primary
// write succeeded, so an index row never points at an account that was
// dropped; if the primary batch is dropped its index entries die with it.
func (f *flusher) flushAccounts(ctx context.Context, batch []model.AccountUpdate, attempts int) error {
	if len(batch) == 0 {
		return nil
	}
	owners, mints := f.indexer.derive(batch)

	err := f.writeWithRetry(ctx, model.KindAccount, len(batch), attempts, func(opCtx context.Context) error {
		if err := f.store.UpsertAccounts(opCtx, batch); err != nil {
			return fmt.Errorf("upsert accounts: %w", err)
		}
		if f.cfg.StoreHistorical {
			if err := f.store.InsertAccountHistory(opCtx, batch); err != nil {
				return fmt.Errorf("insert account history: %w", err)
			}
		}
		return nil
	})
	if errors.Is(err, errBatchDropped) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := f.flushIndexEntries(ctx, model.TokenOwnerIndex, owners, attempts); err != nil {
		return err
	}
	return f.flushIndexEntries(ctx, model.TokenMintIndex, mints, attempts)
}

func (f *flusher) flushIndexEntries(ctx context.Context, kind model.IndexKind, entries []model.TokenIndexEntry, attempts int) error {
	if len(entries) == 0 {
		return nil
	}
	err := f.writeWithRetry(ctx, model.RecordKind(kind), len(entries), attempts, func(opCtx context.Context) error {
		if err := f.store.InsertTokenIndexEntries(opCtx, kind, entries); err != nil {
			return fmt.Errorf("insert %s entries: %w", kind, err)
		}
		return nil
	})
	return ignoreDropped(err)
}

func (f *flusher) flushSlots(ctx context.Context, batch []model.SlotStatusUpdate, attempts int) error {
	if len(batch) == 0 {
		return nil
	}
	err := f.writeWithRetry(ctx, model.KindSlot, len(batch), attempts, func(opCtx context.Context) error {
		if err := f.store.UpsertSlotStatuses(opCtx, batch); err != nil {
			return fmt.Errorf("upsert slot statuses: %w", err)
		}
		return nil
	})
	return ignoreDropped(err)
}

func (f *flusher) flushTransactions(ctx context.Context, batch []model.TransactionRecord, attempts int) error {
	if len(batch) == 0 {
		return nil
	}
	err := f.writeWithRetry(ctx, model.KindTransaction, len(batch), attempts, func(opCtx context.Context) error {
		if err := f.store.InsertTransactions(opCtx, batch); err != nil {
			return fmt.Errorf("insert transactions: %w", err)
		}
		return nil
	})
	return ignoreDropped(err)
}

func (f *flusher) flushBlocks(ctx context.Context, batch []model.BlockMetadataRecord, attempts int) error {
	if len(batch) == 0 {
		return nil
	}
	err := f.writeWithRetry(ctx, model.KindBlock, len(batch), attempts, func(opCtx context.Context) error {
		if err := f.store.InsertBlockMetadata(opCtx, batch); err != nil {
			return fmt.Errorf("insert block metadata: %w", err)
		}
		return nil
	})
	return ignoreDropped(err)
}

// writeWithRetry runs one bulk write up to attempts times. Between attempts
// it backs off and re-establishes the store session. A write in progress is
// never cancelled: each attempt runs on its own store-timeout context
// detached from pipeline shutdown.
func (f *flusher) writeWithRetry(ctx context.Context, kind model.RecordKind, rows, attempts int, op func(context.Context) error) error {
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			f.metrics.ObserveFlushRetry(kind)
			delay := clock.BackoffDelay(attempt-1, f.cfg.RetryBaseDelay, f.cfg.RetryMaxDelay)
			if sleepErr := clock.SleepWithContext(ctx, delay); sleepErr != nil {
				break
			}
			f.reconnect(ctx)
		}

		started := time.Now()
		err = f.runDetached(ctx, op)
		f.metrics.ObserveFlush(kind, err, rows, started)
		if err == nil {
			return nil
		}

		f.logger.Warn("batch flush failed",
			zap.String("kind", string(kind)),
			zap.Int("records", rows),
			zap.Int("attempt", attempt+1),
			zap.Int("attempts", attempts),
			zap.Error(err),
		)
		if f.cfg.PanicOnError {
			return fmt.Errorf("flush %s batch: %w", kind, err)
		}
	}

	f.logger.Error("dropping batch after exhausting retries",
		zap.String("kind", string(kind)),
		zap.Int("records", rows),
		zap.Error(err),
	)
	f.metrics.ObserveDroppedBatch(kind, rows)
	return errBatchDropped
}

func (f *flusher) runDetached(ctx context.Context, op func(context.Context) error) error {
	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.cfg.StoreTimeout)
	defer cancel()
	return op(opCtx)
}

func (f *flusher) reconnect(ctx context.Context) {
	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.cfg.StoreTimeout)
	defer cancel()
	if err := f.store.Reconnect(opCtx); err != nil {
		f.logger.Warn("store reconnect failed", zap.Error(err))
	}
}

func ignoreDropped(err error) error {
	if errors.Is(err, errBatchDropped) {
		return nil
	}
	return err
}
