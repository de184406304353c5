package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/geyserwatch/solsink-backend/internal/model"
)

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

	const query = `
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
) VALUES`

	batch, err := s.session().PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, txn := range txns {
		if err = batch.Append(
			txn.Signature.String(),
			txn.Slot,
			txn.Index,
			txn.IsVote,
			txn.Err,
			txn.Fee,
			txn.PreBalances,
			txn.PostBalances,
			string(txn.InnerInstructions),
			txn.Logs,
			txn.Signer.String(),
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
