package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/geyserwatch/solsink-backend/internal/model"
)

// UpsertSlotStatuses writes slot commitment rows. The slot_statuses table is
// versioned by status_rank, so a processed row can never displace a rooted
// one no matter the write order.
func (s *Store) UpsertSlotStatuses(ctx context.Context, slots []model.SlotStatusUpdate) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("upsert_slot_statuses", len(slots), err, started)
	}()

	if len(slots) == 0 {
		return nil
	}

	const query = `
INSERT INTO slot_statuses (
	slot,
	parent,
	status,
	status_rank,
	blockhash,
	leader,
	block_timestamp
) VALUES`

	batch, err := s.session().PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare slot statuses batch: %w", err)
	}

	for _, update := range slots {
		if err = batch.Append(
			update.Slot,
			update.Parent,
			string(update.Status),
			update.Status.Rank(),
			update.Blockhash,
			update.Leader,
			update.Timestamp,
		); err != nil {
			return fmt.Errorf("append slot status: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("upsert slot statuses: %w", err)
	}
	return nil
}
