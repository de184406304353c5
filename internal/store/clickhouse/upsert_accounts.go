package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/geyserwatch/solsink-backend/internal/model"
)

// UpsertAccounts writes the latest account state rows. The accounts table is
// ordered by pubkey and versioned by write_version, so replaying a batch or
// racing another worker can never downgrade a row.
func (s *Store) UpsertAccounts(ctx context.Context, accounts []model.AccountUpdate) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("upsert_accounts", len(accounts), err, started)
	}()

	if len(accounts) == 0 {
		return nil
	}

	const query = `
INSERT INTO accounts (
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
		return fmt.Errorf("prepare accounts batch: %w", err)
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
			return fmt.Errorf("append account: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("upsert accounts: %w", err)
	}
	return nil
}
