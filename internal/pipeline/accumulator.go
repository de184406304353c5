package pipeline

import (
	"github.com/gagliardetto/solana-go"
	"github.com/geyserwatch/solsink-backend/internal/model"
)

// accountAccumulator stages account updates for one worker, deduplicating by
// pubkey within the batch window: only the highest write version survives.
// An update older than the staged one is an ordering violation and is
// rejected rather than applied.
type accountAccumulator struct {
	byKey map[solana.PublicKey]int
	items []model.AccountUpdate
}

func newAccountAccumulator(capacity int) *accountAccumulator {
	return &accountAccumulator{
		byKey: make(map[solana.PublicKey]int, capacity),
		items: make([]model.AccountUpdate, 0, capacity),
	}
}

// add stages an update and reports whether it was accepted. A false return
// means a same-or-newer version of the account was already staged.
func (a *accountAccumulator) add(update model.AccountUpdate) bool {
	i, ok := a.byKey[update.Pubkey]
	if !ok {
		a.byKey[update.Pubkey] = len(a.items)
		a.items = append(a.items, update)
		return true
	}
	if update.WriteVersion <= a.items[i].WriteVersion {
		return false
	}
	a.items[i] = update
	return true
}

func (a *accountAccumulator) len() int { return len(a.items) }

// take hands over the staged batch and resets the accumulator.
func (a *accountAccumulator) take() []model.AccountUpdate {
	if len(a.items) == 0 {
		return nil
	}
	batch := a.items
	a.items = make([]model.AccountUpdate, 0, cap(batch))
	a.byKey = make(map[solana.PublicKey]int, cap(batch))
	return batch
}

// slotAccumulator stages slot status updates, deduplicating by slot: only the
// strongest commitment level survives the batch window. A regressing status
// is rejected.
type slotAccumulator struct {
	bySlot map[uint64]int
	items  []model.SlotStatusUpdate
}

func newSlotAccumulator(capacity int) *slotAccumulator {
	return &slotAccumulator{
		bySlot: make(map[uint64]int, capacity),
		items:  make([]model.SlotStatusUpdate, 0, capacity),
	}
}

func (a *slotAccumulator) add(update model.SlotStatusUpdate) bool {
	i, ok := a.bySlot[update.Slot]
	if !ok {
		a.bySlot[update.Slot] = len(a.items)
		a.items = append(a.items, update)
		return true
	}
	if update.Status.Rank() <= a.items[i].Status.Rank() {
		return false
	}
	a.items[i] = update
	return true
}

func (a *slotAccumulator) len() int { return len(a.items) }

func (a *slotAccumulator) take() []model.SlotStatusUpdate {
	if len(a.items) == 0 {
		return nil
	}
	batch := a.items
	a.items = make([]model.SlotStatusUpdate, 0, cap(batch))
	a.bySlot = make(map[uint64]int, cap(batch))
	return batch
}

// appendAccumulator stages append-only record kinds in arrival order.
type appendAccumulator[T any] struct {
	items []T
}

func newAppendAccumulator[T any](capacity int) *appendAccumulator[T] {
	return &appendAccumulator[T]{items: make([]T, 0, capacity)}
}

func (a *appendAccumulator[T]) add(item T) {
	a.items = append(a.items, item)
}

func (a *appendAccumulator[T]) len() int { return len(a.items) }

func (a *appendAccumulator[T]) take() []T {
	if len(a.items) == 0 {
		return nil
	}
	batch := a.items
	a.items = make([]T, 0, cap(batch))
	return batch
}
