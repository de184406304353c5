package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/geyserwatch/solsink-backend/internal/model"
)

var indexTables = map[model.IndexKind]string{
	model.TokenOwnerIndex: "token_owner_index",
	model.TokenMintIndex:  "token_mint_index",
}

// InsertTokenIndexEntries writes derived secondary index rows into the table
// matching the index kind.
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

	query := fmt.Sprintf(`
INSERT INTO %s (
	secondary_key,
	account_key,
	slot
) VALUES`, table)

	batch, err := s.session().PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare %s batch: %w", table, err)
	}

	for _, entry := range entries {
		if err = batch.Append(
			entry.SecondaryKey.String(),
			entry.AccountKey.String(),
			entry.Slot,
		); err != nil {
			return fmt.Errorf("append %s entry: %w", table, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert %s entries: %w", table, err)
	}
	return nil
}
