package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/geyserwatch/solsink-backend/internal/model"
)

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

	const query = `
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
) VALUES`

	batch, err := s.session().PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare account history batch: %w", err)
	}

	for _, account := range accounts {
		if err = batch.Append(
			account.Pubkey.String(),
			account.Lamports,
			account.Owner.String(),
			account.Executable,
			account.RentEpoch,
			account.Data,
			account.Slot,
			account.WriteVersion,
			signatureString(account.TxnSignature),
		); err != nil {
			return fmt.Errorf("append account history row: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert account history: %w", err)
	}
	return nil
}
