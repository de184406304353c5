package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/geyserwatch/solsink-backend/internal/model"
	"github.com/geyserwatch/solsink-backend/pkg/safe"
)

const insertBlockMetadataQuery = `
INSERT INTO block_metadata (
	slot,
	blockhash,
	rewards,
	block_time,
	block_height,
	parent_slot,
	parent_blockhash,
	executed_transaction_count
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (slot) DO NOTHING`

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

	batch, err := insertBlockMetadataBatch(blocks)
	if err != nil {
		return err
	}
	if err = s.sendBatch(ctx, batch); err != nil {
		err = fmt.Errorf("insert block metadata: %w", err)
		return err
	}
	return nil
}

func insertBlockMetadataBatch(blocks []model.BlockMetadataRecord) (*pgx.Batch, error) {
	batch := &pgx.Batch{}
	for _, block := range blocks {
		slot, err := safe.Int64(block.Slot)
		if err != nil {
			return nil, fmt.Errorf("block slot: %w", err)
		}
		parentSlot, err := safe.Int64(block.ParentSlot)
		if err != nil {
			return nil, fmt.Errorf("block %d parent slot: %w", block.Slot, err)
		}
		count, err := safe.Int64(block.ExecutedTransactionCount)
		if err != nil {
			return nil, fmt.Errorf("block %d transaction count: %w", block.Slot, err)
		}
		var height *int64
		if block.BlockHeight != nil {
			h, err := safe.Int64(*block.BlockHeight)
			if err != nil {
				return nil, fmt.Errorf("block %d height: %w", block.Slot, err)
			}
			height = &h
		}

		batch.Queue(insertBlockMetadataQuery,
			slot,
			block.Blockhash,
			block.Rewards,
			block.BlockTime,
			height,
			parentSlot,
			block.ParentBlockhash,
			count,
		)
	}
	return batch, nil
}
