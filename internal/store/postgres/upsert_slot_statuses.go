package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/geyserwatch/solsink-backend/internal/model"
	"github.com/geyserwatch/solsink-backend/pkg/safe"
)

const upsertSlotStatusQuery = `
INSERT INTO slot_statuses (
	slot,
	parent,
	status,
	status_rank,
	blockhash,
	leader,
	block_timestamp
) VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (slot) DO UPDATE SET
	parent          = EXCLUDED.parent,
	status          = EXCLUDED.status,
	status_rank     = EXCLUDED.status_rank,
	blockhash       = EXCLUDED.blockhash,
	leader          = EXCLUDED.leader,
	block_timestamp = EXCLUDED.block_timestamp
WHERE slot_statuses.status_rank < EXCLUDED.status_rank`

// UpsertSlotStatuses writes slot commitment rows. The rank compare in the
// update predicate means a processed row can never displace a rooted one no
// matter the write order.
func (s *Store) UpsertSlotStatuses(ctx context.Context, slots []model.SlotStatusUpdate) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("upsert_slot_statuses", len(slots), err, started)
	}()

	if len(slots) == 0 {
		return nil
	}

	batch, err := upsertSlotStatusesBatch(slots)
	if err != nil {
		return err
	}
	if err = s.sendBatch(ctx, batch); err != nil {
		err = fmt.Errorf("upsert slot statuses: %w", err)
		return err
	}
	return nil
}

func upsertSlotStatusesBatch(slots []model.SlotStatusUpdate) (*pgx.Batch, error) {
	batch := &pgx.Batch{}
	for _, update := range slots {
		slot, err := safe.Int64(update.Slot)
		if err != nil {
			return nil, fmt.Errorf("slot number: %w", err)
		}
		var parent *int64
		if update.Parent != nil {
			p, err := safe.Int64(*update.Parent)
			if err != nil {
				return nil, fmt.Errorf("slot %d parent: %w", update.Slot, err)
			}
			parent = &p
		}

		batch.Queue(upsertSlotStatusQuery,
			slot,
			parent,
			string(update.Status),
			update.Status.Rank(),
			update.Blockhash,
			update.Leader,
			update.Timestamp,
		)
	}
	return batch, nil
}
