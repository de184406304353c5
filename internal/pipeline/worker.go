package pipeline

import (
	"context"
	"time"

	"github.com/geyserwatch/solsink-backend/internal/model"
	"go.uber.org/zap"
)

// parkRequest asks a worker to flush everything it holds and wait at the
// startup barrier until resume is closed.
type parkRequest struct {
	ack    chan struct{}
	resume chan struct{}
}

// worker is one long-lived pipeline consumer. It owns a private accumulator
// per record kind and shares the kind queues with its peers; ordering across
// workers is enforced by the store's version- and rank-conditional writes.
type worker struct {
	logger *zap.Logger
	f      *flusher
	p      *Pipeline
	park   chan parkRequest

	accounts *accountAccumulator
	slots    *slotAccumulator
	txns     *appendAccumulator[model.TransactionRecord]
	blocks   *appendAccumulator[model.BlockMetadataRecord]
}

func newWorker(logger *zap.Logger, p *Pipeline, f *flusher) *worker {
	size := f.cfg.BatchSize
	return &worker{
		logger:   logger,
		f:        f,
		p:        p,
		park:     make(chan parkRequest),
		accounts: newAccountAccumulator(size),
		slots:    newSlotAccumulator(size),
		txns:     newAppendAccumulator[model.TransactionRecord](size),
		blocks:   newAppendAccumulator[model.BlockMetadataRecord](size),
	}
}

func (w *worker) run(ctx context.Context) error {
	ticker := time.NewTicker(w.f.cfg.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return w.shutdown(ctx)
		case <-w.p.stopped:
			return w.shutdown(ctx)
		case req := <-w.park:
			if err := w.handlePark(ctx, req); err != nil {
				return err
			}
		case update := <-w.p.accounts:
			if err := w.addAccount(ctx, update); err != nil {
				return err
			}
		case update := <-w.p.slots:
			if err := w.addSlot(ctx, update); err != nil {
				return err
			}
		case txn := <-w.p.txns:
			w.txns.add(txn)
			if w.txns.len() >= w.f.cfg.BatchSize {
				if err := w.f.flushTransactions(ctx, w.txns.take(), w.f.cfg.MaxRetries); err != nil {
					return err
				}
			}
		case block := <-w.p.blocks:
			w.blocks.add(block)
			if w.blocks.len() >= w.f.cfg.BatchSize {
				if err := w.f.flushBlocks(ctx, w.blocks.take(), w.f.cfg.MaxRetries); err != nil {
					return err
				}
			}
		case <-ticker.C:
			if err := w.flushAll(ctx, w.f, w.f.cfg.MaxRetries); err != nil {
				return err
			}
		}
	}
}

func (w *worker) addAccount(ctx context.Context, update model.AccountUpdate) error {
	if !w.accounts.add(update) {
		w.f.metrics.ObserveOrderingViolation(model.KindAccount)
		w.logger.Warn("discarding stale account update",
			zap.String("pubkey", update.Pubkey.String()),
			zap.Uint64("write_version", update.WriteVersion),
		)
		return nil
	}
	if w.accounts.len() >= w.f.cfg.BatchSize {
		return w.f.flushAccounts(ctx, w.accounts.take(), w.f.cfg.MaxRetries)
	}
	return nil
}

func (w *worker) addSlot(ctx context.Context, update model.SlotStatusUpdate) error {
	if !w.slots.add(update) {
		w.f.metrics.ObserveOrderingViolation(model.KindSlot)
		w.logger.Warn("discarding regressing slot status",
			zap.Uint64("slot", update.Slot),
			zap.String("status", string(update.Status)),
		)
		return nil
	}
	if w.slots.len() >= w.f.cfg.BatchSize {
		return w.f.flushSlots(ctx, w.slots.take(), w.f.cfg.MaxRetries)
	}
	return nil
}

// handlePark flushes everything staged, acknowledges the barrier and blocks
// until the startup coordinator releases the workers.
func (w *worker) handlePark(ctx context.Context, req parkRequest) error {
	err := w.flushAll(ctx, w.f, w.f.cfg.MaxRetries)
	close(req.ack)
	if err != nil {
		return err
	}

	select {
	case <-req.resume:
		return nil
	case <-w.p.stopped:
		return w.shutdown(ctx)
	case <-ctx.Done():
		return w.shutdown(ctx)
	}
}

// shutdown drains whatever is still queued and runs one final flush pass.
// Failures here are reported as dropped batches, never as a halt: the
// pipeline is going away regardless.
func (w *worker) shutdown(ctx context.Context) error {
	f := w.f.forShutdown()
	for {
		select {
		case update := <-w.p.accounts:
			if !w.accounts.add(update) {
				f.metrics.ObserveOrderingViolation(model.KindAccount)
				continue
			}
			if w.accounts.len() >= f.cfg.BatchSize {
				if err := f.flushAccounts(ctx, w.accounts.take(), 1); err != nil {
					return err
				}
			}
		case update := <-w.p.slots:
			if !w.slots.add(update) {
				f.metrics.ObserveOrderingViolation(model.KindSlot)
				continue
			}
			if w.slots.len() >= f.cfg.BatchSize {
				if err := f.flushSlots(ctx, w.slots.take(), 1); err != nil {
					return err
				}
			}
		case txn := <-w.p.txns:
			w.txns.add(txn)
			if w.txns.len() >= f.cfg.BatchSize {
				if err := f.flushTransactions(ctx, w.txns.take(), 1); err != nil {
					return err
				}
			}
		case block := <-w.p.blocks:
			w.blocks.add(block)
			if w.blocks.len() >= f.cfg.BatchSize {
				if err := f.flushBlocks(ctx, w.blocks.take(), 1); err != nil {
					return err
				}
			}
		default:
			return w.flushAll(ctx, f, 1)
		}
	}
}

func (w *worker) flushAll(ctx context.Context, f *flusher, attempts int) error {
	if err := f.flushAccounts(ctx, w.accounts.take(), attempts); err != nil {
		return err
	}
	if err := f.flushSlots(ctx, w.slots.take(), attempts); err != nil {
		return err
	}
	if err := f.flushTransactions(ctx, w.txns.take(), attempts); err != nil {
		return err
	}
	return f.flushBlocks(ctx, w.blocks.take(), attempts)
}
