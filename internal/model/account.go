// Package model defines domain records for Solana account-stream ingestion.
package model

import "github.com/gagliardetto/solana-go"

// AccountUpdate captures a single account write reported by the validator.
// For any pubkey the update carrying the highest WriteVersion is authoritative.
type AccountUpdate struct {
	Pubkey       solana.PublicKey
	Lamports     uint64
	Owner        solana.PublicKey
	Executable   bool
	RentEpoch    uint64
	Data         []byte
	Slot         uint64
	WriteVersion uint64
	TxnSignature *solana.Signature
}
