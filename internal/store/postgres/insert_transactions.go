package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/geyserwatch/solsink-backend/internal/model"
	"github.com/geyserwatch/solsink-backend/pkg/safe"
)

const insertTransactionQuery = `
INSERT INTO transactions (
	signature,
	slot,
	idx,
	is_vote,
	error,
	fee,
	pre_balances,
	post_balances,
	inner_instructions,
	logs,
	signer
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (slot, idx) DO NOTHING`

// InsertTransactions writes transaction rows, keyed by (slot, idx) so a
// replayed batch collapses onto the rows it already wrote.
func (s *Store) InsertTransactions(ctx context.Context, txns []model.TransactionRecord) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("insert_transactions", len(txns), err, started)
	}()

	if len(txns) == 0 {
		return nil
	}

	batch, err := insertTransactionsBatch(txns)
	if err != nil {
		return err
	}
	if err = s.sendBatch(ctx, batch); err != nil {
		err = fmt.Errorf("insert transactions: %w", err)
		return err
	}
	return nil
}

func insertTransactionsBatch(txns []model.TransactionRecord) (*pgx.Batch, error) {
	batch := &pgx.Batch{}
	for _, txn := range txns {
		slot, err := safe.Int64(txn.Slot)
		if err != nil {
			return nil, fmt.Errorf("transaction %s slot: %w", txn.Signature, err)
		}
		fee, err := safe.Int64(txn.Fee)
		if err != nil {
			return nil, fmt.Errorf("transaction %s fee: %w", txn.Signature, err)
		}
		pre, err := int64Slice(txn.PreBalances)
		if err != nil {
			return nil, fmt.Errorf("transaction %s pre balances: %w", txn.Signature, err)
		}
		post, err := int64Slice(txn.PostBalances)
		if err != nil {
			return nil, fmt.Errorf("transaction %s post balances: %w", txn.Signature, err)
		}

		batch.Queue(insertTransactionQuery,
			txn.Signature.String(),
			slot,
			int32(txn.Index),
			txn.IsVote,
			txn.Err,
			fee,
			pre,
			post,
			txn.InnerInstructions,
			txn.Logs,
			txn.Signer.String(),
		)
	}
	return batch, nil
}

func int64Slice(values []uint64) ([]int64, error) {
	out := make([]int64, len(values))
	for i, v := range values {
		converted, err := safe.Int64(v)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}
