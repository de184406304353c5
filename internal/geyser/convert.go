package geyser

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/geyserwatch/solsink-backend/internal/model"
	"github.com/geyserwatch/solsink-backend/pkg/safe"
)

const signatureLength = 64

// ParseSlotStatus maps a wire status string onto a known commitment level.
func ParseSlotStatus(value string) (model.SlotStatus, error) {
	switch model.SlotStatus(value) {
	case model.SlotProcessed:
		return model.SlotProcessed, nil
	case model.SlotConfirmed:
		return model.SlotConfirmed, nil
	case model.SlotRooted:
		return model.SlotRooted, nil
	}
	return "", fmt.Errorf("unknown slot status %q", value)
}

func publicKey(field string, b []byte) (solana.PublicKey, error) {
	if len(b) != solana.PublicKeyLength {
		return solana.PublicKey{}, fmt.Errorf("%s: expected %d key bytes, got %d", field, solana.PublicKeyLength, len(b))
	}
	return solana.PublicKeyFromBytes(b), nil
}

// BuildAccountUpdate maps a raw account notification observed at slot into a
// model record, validating key and signature lengths.
func BuildAccountUpdate(slot uint64, src AccountInfo) (model.AccountUpdate, error) {
	pubkey, err := publicKey("pubkey", src.Pubkey)
	if err != nil {
		return model.AccountUpdate{}, fmt.Errorf("account at slot %d: %w", slot, err)
	}
	owner, err := publicKey("owner", src.Owner)
	if err != nil {
		return model.AccountUpdate{}, fmt.Errorf("account %s: %w", pubkey, err)
	}

	var txnSig *solana.Signature
	if len(src.TxnSignature) > 0 {
		if len(src.TxnSignature) != signatureLength {
			return model.AccountUpdate{}, fmt.Errorf("account %s: expected %d signature bytes, got %d",
				pubkey, signatureLength, len(src.TxnSignature))
		}
		sig := solana.SignatureFromBytes(src.TxnSignature)
		txnSig = &sig
	}

	return model.AccountUpdate{
		Pubkey:       pubkey,
		Lamports:     src.Lamports,
		Owner:        owner,
		Executable:   src.Executable,
		RentEpoch:    src.RentEpoch,
		Data:         src.Data,
		Slot:         slot,
		WriteVersion: src.WriteVersion,
		TxnSignature: txnSig,
	}, nil
}

// BuildSlotStatusUpdate maps a raw slot notification into a model record.
func BuildSlotStatusUpdate(src SlotInfo) (model.SlotStatusUpdate, error) {
	status, err := ParseSlotStatus(src.Status)
	if err != nil {
		return model.SlotStatusUpdate{}, fmt.Errorf("slot %d: %w", src.Slot, err)
	}

	return model.SlotStatusUpdate{
		Slot:      src.Slot,
		Parent:    src.Parent,
		Status:    status,
		Blockhash: src.Blockhash,
		Leader:    src.Leader,
		Timestamp: src.Timestamp,
	}, nil
}

// BuildTransactionRecord maps a raw transaction notification executed at slot
// into a model record.
func BuildTransactionRecord(slot uint64, src TransactionInfo) (model.TransactionRecord, error) {
	if len(src.Signature) != signatureLength {
		return model.TransactionRecord{}, fmt.Errorf("transaction at slot %d: expected %d signature bytes, got %d",
			slot, signatureLength, len(src.Signature))
	}
	signer, err := publicKey("signer", src.Signer)
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("transaction at slot %d: %w", slot, err)
	}
	index, err := safe.Uint32(src.Index)
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("transaction at slot %d index overflow: %w", slot, err)
	}

	return model.TransactionRecord{
		Signature:         solana.SignatureFromBytes(src.Signature),
		Slot:              slot,
		Index:             index,
		IsVote:            src.IsVote,
		Err:               src.Err,
		Fee:               src.Fee,
		PreBalances:       src.PreBalances,
		PostBalances:      src.PostBalances,
		InnerInstructions: src.InnerInstructions,
		Logs:              src.Logs,
		Signer:            signer,
	}, nil
}

// BuildBlockMetadataRecord maps a raw block notification into a model record.
func BuildBlockMetadataRecord(src BlockInfo) (model.BlockMetadataRecord, error) {
	count, err := safe.Uint64(src.ExecutedTransactionCount)
	if err != nil {
		return model.BlockMetadataRecord{}, fmt.Errorf("block %d transaction count: %w", src.Slot, err)
	}

	return model.BlockMetadataRecord{
		Slot:                     src.Slot,
		Blockhash:                src.Blockhash,
		Rewards:                  src.Rewards,
		BlockTime:                src.BlockTime,
		BlockHeight:              src.BlockHeight,
		ParentSlot:               src.ParentSlot,
		ParentBlockhash:          src.ParentBlockhash,
		ExecutedTransactionCount: count,
	}, nil
}
