package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/geyserwatch/solsink-backend/internal/model"
	"github.com/geyserwatch/solsink-backend/pkg/safe"
)

var indexTables = map[model.IndexKind]string{
	model.TokenOwnerIndex: "token_owner_index",
	model.TokenMintIndex:  "token_mint_index",
}

// InsertTokenIndexEntries writes derived secondary index rows into the table
// matching the index kind. Later slots win so a replayed batch is harmless.
func (s *Store) InsertTokenIndexEntries(ctx context.Context, kind model.IndexKind, entries []model.TokenIndexEntry) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("insert_"+string(kind), len(entries), err, started)
	}()

	table, ok := indexTables[kind]
	if !ok {
		err = fmt.Errorf("unknown index kind %q", kind)
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	var batch *pgx.Batch
	batch, err = insertTokenIndexEntriesBatch(table, entries)
	if err != nil {
		return err
	}
	if err = s.sendBatch(ctx, batch); err != nil {
		err = fmt.Errorf("insert %s entries: %w", table, err)
		return err
	}
	return nil
}

func insertTokenIndexEntriesBatch(table string, entries []model.TokenIndexEntry) (*pgx.Batch, error) {
	query := fmt.Sprintf(`
INSERT INTO %s (
	secondary_key,
	account_key,
	slot
) VALUES ($1, $2, $3)
ON CONFLICT (secondary_key, account_key) DO UPDATE SET
	slot = EXCLUDED.slot
WHERE %s.slot < EXCLUDED.slot`, table, table)

	batch := &pgx.Batch{}
	for _, entry := range entries {
		slot, err := safe.Int64(entry.Slot)
		if err != nil {
			return nil, fmt.Errorf("index entry slot: %w", err)
		}
		batch.Queue(query,
			entry.SecondaryKey.String(),
			entry.AccountKey.String(),
			slot,
		)
	}
	return batch, nil
}
