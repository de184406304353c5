package model

import "github.com/gagliardetto/solana-go"

// TransactionRecord represents a processed transaction within a slot.
// (Slot, Index) is the unique intra-slot ordering key.
type TransactionRecord struct {
	Signature         solana.Signature
	Slot              uint64
	Index             uint32
	IsVote            bool
	Err               *string
	Fee               uint64
	PreBalances       []uint64
	PostBalances      []uint64
	InnerInstructions []byte
	Logs              []string
	Signer            solana.PublicKey
}
