package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/geyserwatch/solsink-backend/internal/model"
	"github.com/geyserwatch/solsink-backend/pkg/safe"
)

const insertAccountHistoryQuery = `
INSERT INTO account_history (
	pubkey,
	lamports,
	owner,
	executable,
	rent_epoch,
	data,
	slot,
	write_version,
	txn_signature
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// InsertAccountHistory appends one row per account write; unlike accounts,
// the history table keeps every version.
func (s *Store) InsertAccountHistory(ctx context.Context, accounts []model.AccountUpdate) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("insert_account_history", len(accounts), err, started)
	}()

	if len(accounts) == 0 {
		return nil
	}

	batch, err := insertAccountHistoryBatch(accounts)
	if err != nil {
		return err
	}
	if err = s.sendBatch(ctx, batch); err != nil {
		err = fmt.Errorf("insert account history: %w", err)
		return err
	}
	return nil
}

func insertAccountHistoryBatch(accounts []model.AccountUpdate) (*pgx.Batch, error) {
	batch := &pgx.Batch{}
	for _, account := range accounts {
		lamports, err := safe.Int64(account.Lamports)
		if err != nil {
			return nil, fmt.Errorf("account %s lamports: %w", account.Pubkey, err)
		}
		slot, err := safe.Int64(account.Slot)
		if err != nil {
			return nil, fmt.Errorf("account %s slot: %w", account.Pubkey, err)
		}
		writeVersion, err := safe.Int64(account.WriteVersion)
		if err != nil {
			return nil, fmt.Errorf("account %s write version: %w", account.Pubkey, err)
		}

		batch.Queue(insertAccountHistoryQuery,
			account.Pubkey.String(),
			lamports,
			account.Owner.String(),
			account.Executable,
			int64(account.RentEpoch),
			account.Data,
			slot,
			writeVersion,
			signatureString(account.TxnSignature),
		)
	}
	return batch, nil
}
