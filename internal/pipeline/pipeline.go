// Package pipeline turns the per-notification firehose of a validator account
// stream into bounded, ordered, batched store writes. Producers block under
// backpressure instead of dropping; batches are deduplicated, flushed on size
// or time, retried on store trouble and never silently lost.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/geyserwatch/solsink-backend/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// startupRootBatchSize bounds the slot-status batches written when the
// startup-seen slots are bulk-marked rooted at the barrier.
const startupRootBatchSize = 1024

// Pipeline is the concurrent batched ingestion pipeline: bounded per-kind
// queues in front of a fixed worker pool, with a one-way startup barrier.
// Store sessions are not shared between in-flight batches: each bulk call
// checks out its own connection from the store's pool, so two workers never
// interleave writes within one logical batch operation.
type Pipeline struct {
	logger  *zap.Logger
	cfg     Config
	store   Store
	metrics Metrics
	f       *flusher
	startup *startupCoordinator

	accounts chan model.AccountUpdate
	slots    chan model.SlotStatusUpdate
	txns     chan model.TransactionRecord
	blocks   chan model.BlockMetadataRecord

	workers []*worker

	stopOnce sync.Once
	stopped  chan struct{}
}

// New builds a Pipeline with dependencies. Configuration problems surface
// here, before any worker starts.
func New(logger *zap.Logger, store Store, metrics Metrics, cfg Config) (*Pipeline, error) {
	if store == nil {
		return nil, errors.New("pipeline store is required")
	}
	if metrics == nil {
		return nil, errors.New("pipeline metrics is required")
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline config: %w", err)
	}
	logger = logger.Named("pipeline")

	p := &Pipeline{
		logger:   logger,
		cfg:      cfg,
		store:    store,
		metrics:  metrics,
		startup:  newStartupCoordinator(),
		accounts: make(chan model.AccountUpdate, cfg.QueueCapacity),
		slots:    make(chan model.SlotStatusUpdate, cfg.QueueCapacity),
		txns:     make(chan model.TransactionRecord, cfg.QueueCapacity),
		blocks:   make(chan model.BlockMetadataRecord, cfg.QueueCapacity),
		stopped:  make(chan struct{}),
	}
	p.f = &flusher{
		logger:  logger,
		cfg:     cfg,
		store:   store,
		metrics: metrics,
		indexer: newIndexMaintainer(cfg.TokenOwnerIndex, cfg.TokenMintIndex),
	}

	p.workers = make([]*worker, cfg.Workers)
	for i := range p.workers {
		p.workers[i] = newWorker(logger.Named(fmt.Sprintf("worker-%d", i)), p, p.f)
	}
	return p, nil
}

// Run checks store health, starts the worker pool and blocks until the
// context is canceled or a worker fails fatally. Cancellation drains the
// queues and flushes in-flight batches before returning.
func (p *Pipeline) Run(ctx context.Context) error {
	healthCtx, cancel := context.WithTimeout(ctx, p.cfg.StoreTimeout)
	err := p.store.HealthCheck(healthCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("store health check: %w", err)
	}

	p.logger.Info("starting workers",
		zap.Int("workers", p.cfg.Workers),
		zap.Int("queue_capacity", p.cfg.QueueCapacity),
		zap.Int("batch_size", p.cfg.BatchSize),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Unblock submitters as soon as shutdown begins so the worker drain
		// loops can terminate. Shutdown arrives either as context
		// cancellation or as an explicit Stop; this goroutine must exit on
		// both or Wait never returns.
		select {
		case <-gctx.Done():
			p.Stop()
		case <-p.stopped:
		}
		return nil
	})
	for _, w := range p.workers {
		w := w
		g.Go(func() error {
			return w.run(gctx)
		})
	}

	err = g.Wait()
	p.Stop()
	if err != nil {
		return fmt.Errorf("pipeline halted: %w", err)
	}
	p.logger.Info("pipeline stopped")
	return nil
}

// Stop marks the pipeline stopped: blocked submitters wake with ErrStopped
// and running workers begin their final drain. Safe to call more than once.
func (p *Pipeline) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopped)
	})
}

// SubmitAccount queues one account update, blocking up to the submit timeout
// under backpressure. During startup the update's slot is recorded for the
// end-of-startup rooting pass.
func (p *Pipeline) SubmitAccount(ctx context.Context, update model.AccountUpdate) error {
	p.startup.observeSlot(update.Slot)
	err := submit(ctx, p, p.accounts, update)
	p.metrics.ObserveSubmit(model.KindAccount, err)
	p.metrics.SetQueueDepth(model.KindAccount, len(p.accounts))
	return err
}

// SubmitSlot queues one slot status update.
func (p *Pipeline) SubmitSlot(ctx context.Context, update model.SlotStatusUpdate) error {
	err := submit(ctx, p, p.slots, update)
	p.metrics.ObserveSubmit(model.KindSlot, err)
	p.metrics.SetQueueDepth(model.KindSlot, len(p.slots))
	return err
}

// SubmitTransaction queues one transaction record.
func (p *Pipeline) SubmitTransaction(ctx context.Context, txn model.TransactionRecord) error {
	err := submit(ctx, p, p.txns, txn)
	p.metrics.ObserveSubmit(model.KindTransaction, err)
	p.metrics.SetQueueDepth(model.KindTransaction, len(p.txns))
	return err
}

// SubmitBlock queues one block metadata record.
func (p *Pipeline) SubmitBlock(ctx context.Context, block model.BlockMetadataRecord) error {
	err := submit(ctx, p, p.blocks, block)
	p.metrics.ObserveSubmit(model.KindBlock, err)
	p.metrics.SetQueueDepth(model.KindBlock, len(p.blocks))
	return err
}

func submit[T any](ctx context.Context, p *Pipeline, ch chan T, item T) error {
	select {
	case <-p.stopped:
		return ErrStopped
	default:
	}

	select {
	case ch <- item:
		return nil
	default:
	}

	timer := time.NewTimer(p.cfg.SubmitTimeout)
	defer timer.Stop()
	select {
	case ch <- item:
		return nil
	case <-p.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrQueueFull
	}
}

// NotifyEndOfStartup is the full barrier between snapshot replay and steady
// state. It parks every worker behind a synchronous flush of its pending
// batches, drains what is still queued, bulk-marks the startup-seen slots
// rooted, discards the startup set and releases the workers. Records
// submitted after the signal stay queued until the barrier completes, so no
// steady-state flush can be observed ahead of the startup flush. A second
// call returns ErrStartupAlreadyComplete.
func (p *Pipeline) NotifyEndOfStartup(ctx context.Context) error {
	if err := p.startup.begin(); err != nil {
		return err
	}
	p.logger.Info("end of startup signaled; flushing pending batches")

	resume := make(chan struct{})
	defer close(resume)

	for _, w := range p.workers {
		ack := make(chan struct{})
		select {
		case w.park <- parkRequest{ack: ack, resume: resume}:
		case <-p.stopped:
			return ErrStopped
		case <-ctx.Done():
			return ctx.Err()
		}
		select {
		case <-ack:
		case <-p.stopped:
			return ErrStopped
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := p.drainQueues(ctx); err != nil {
		return err
	}

	slots := p.startup.complete()
	if err := p.rootStartupSlots(ctx, slots); err != nil {
		return err
	}

	p.logger.Info("startup complete; entering steady state",
		zap.Int("startup_slots", len(slots)),
	)
	return nil
}

// drainQueues empties the kind queues synchronously while the workers are
// parked, flushing through scratch accumulators.
func (p *Pipeline) drainQueues(ctx context.Context) error {
	accounts := newAccountAccumulator(p.cfg.BatchSize)
	slots := newSlotAccumulator(p.cfg.BatchSize)
	txns := newAppendAccumulator[model.TransactionRecord](p.cfg.BatchSize)
	blocks := newAppendAccumulator[model.BlockMetadataRecord](p.cfg.BatchSize)
	counts := map[model.RecordKind]int{}

drain:
	for {
		select {
		case update := <-p.accounts:
			counts[model.KindAccount]++
			if !accounts.add(update) {
				p.metrics.ObserveOrderingViolation(model.KindAccount)
			}
			if accounts.len() >= p.cfg.BatchSize {
				if err := p.f.flushAccounts(ctx, accounts.take(), p.cfg.MaxRetries); err != nil {
					return err
				}
			}
		case update := <-p.slots:
			counts[model.KindSlot]++
			if !slots.add(update) {
				p.metrics.ObserveOrderingViolation(model.KindSlot)
			}
			if slots.len() >= p.cfg.BatchSize {
				if err := p.f.flushSlots(ctx, slots.take(), p.cfg.MaxRetries); err != nil {
					return err
				}
			}
		case txn := <-p.txns:
			counts[model.KindTransaction]++
			txns.add(txn)
			if txns.len() >= p.cfg.BatchSize {
				if err := p.f.flushTransactions(ctx, txns.take(), p.cfg.MaxRetries); err != nil {
					return err
				}
			}
		case block := <-p.blocks:
			counts[model.KindBlock]++
			blocks.add(block)
			if blocks.len() >= p.cfg.BatchSize {
				if err := p.f.flushBlocks(ctx, blocks.take(), p.cfg.MaxRetries); err != nil {
					return err
				}
			}
		default:
			break drain
		}
	}

	for kind, count := range counts {
		p.metrics.ObserveStartupDrain(kind, count)
	}

	if err := p.f.flushAccounts(ctx, accounts.take(), p.cfg.MaxRetries); err != nil {
		return err
	}
	if err := p.f.flushSlots(ctx, slots.take(), p.cfg.MaxRetries); err != nil {
		return err
	}
	if err := p.f.flushTransactions(ctx, txns.take(), p.cfg.MaxRetries); err != nil {
		return err
	}
	return p.f.flushBlocks(ctx, blocks.take(), p.cfg.MaxRetries)
}

// rootStartupSlots persists every slot seen during replay as rooted: the
// snapshot the validator streamed was itself taken at a finalized slot.
func (p *Pipeline) rootStartupSlots(ctx context.Context, slots []uint64) error {
	if len(slots) == 0 {
		return nil
	}

	for start := 0; start < len(slots); start += startupRootBatchSize {
		end := min(start+startupRootBatchSize, len(slots))
		batch := make([]model.SlotStatusUpdate, 0, end-start)
		for _, slot := range slots[start:end] {
			batch = append(batch, model.SlotStatusUpdate{Slot: slot, Status: model.SlotRooted})
		}
		if err := p.f.flushSlots(ctx, batch, p.cfg.MaxRetries); err != nil {
			return err
		}
	}
	p.metrics.ObserveStartupSlotsRooted(len(slots))
	return nil
}
