package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/geyserwatch/solsink-backend/internal/model"
	"github.com/geyserwatch/solsink-backend/pkg/safe"
)

const upsertAccountQuery = `
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
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (pubkey) DO UPDATE SET
	lamports      = EXCLUDED.lamports,
	owner         = EXCLUDED.owner,
	executable    = EXCLUDED.executable,
	rent_epoch    = EXCLUDED.rent_epoch,
	data          = EXCLUDED.data,
	slot          = EXCLUDED.slot,
	write_version = EXCLUDED.write_version,
	txn_signature = EXCLUDED.txn_signature
WHERE accounts.write_version < EXCLUDED.write_version`

// UpsertAccounts writes the latest account state rows. The conditional
// DO UPDATE means replaying a batch or racing another worker can never
// downgrade a row.
func (s *Store) UpsertAccounts(ctx context.Context, accounts []model.AccountUpdate) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("upsert_accounts", len(accounts), err, started)
	}()

	if len(accounts) == 0 {
		return nil
	}

	batch, err := upsertAccountsBatch(accounts)
	if err != nil {
		return err
	}
	if err = s.sendBatch(ctx, batch); err != nil {
		err = fmt.Errorf("upsert accounts: %w", err)
		return err
	}
	return nil
}

func upsertAccountsBatch(accounts []model.AccountUpdate) (*pgx.Batch, error) {
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

		batch.Queue(upsertAccountQuery,
			account.Pubkey.String(),
			lamports,
			account.Owner.String(),
			account.Executable,
			// rent epoch is u64 max for rent-exempt accounts; stored wrapped
			int64(account.RentEpoch),
			account.Data,
			slot,
			writeVersion,
			signatureString(account.TxnSignature),
		)
	}
	return batch, nil
}
