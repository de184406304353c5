package synthetic

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/geyserwatch/solsink-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Sink accepts converted records for ingestion.
	Sink interface {
		SubmitAccount(ctx context.Context, acc model.AccountUpdate) error
		SubmitSlot(ctx context.Context, slot model.SlotStatusUpdate) error
		SubmitTransaction(ctx context.Context, txn model.TransactionRecord) error
		SubmitBlock(ctx context.Context, block model.BlockMetadataRecord) error
		NotifyEndOfStartup(ctx context.Context) error
	}

	// AccountFilter decides which account updates pass into the sink.
	AccountFilter interface {
		IsAccountSelected(account, owner solana.PublicKey) bool
	}
)
