package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/geyserwatch/solsink-backend/internal/model"
)

// InsertBlockMetadata writes one metadata row per produced block.
func (s *Store) InsertBlockMetadata(ctx context.Context, blocks []model.BlockMetadataRecord) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("insert_block_metadata", len(blocks), err, started)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO block_metadata (
	slot,
	blockhash,
	rewards,
	block_time,
	block_height,
	parent_slot,
	parent_blockhash,
	executed_transaction_count
) VALUES`

	batch, err := s.session().PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare block metadata batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			block.Slot,
			block.Blockhash,
			string(block.Rewards),
			block.BlockTime,
			block.BlockHeight,
			block.ParentSlot,
			block.ParentBlockhash,
			block.ExecutedTransactionCount,
		); err != nil {
			return fmt.Errorf("append block metadata: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block metadata: %w", err)
	}
	return nil
}
