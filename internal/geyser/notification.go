// Package geyser defines the native notification shapes delivered by the
// validator account stream and their conversion into domain records.
package geyser

// AccountInfo is the raw account payload of an account-update notification.
// Key fields arrive as raw bytes and are validated during conversion.
type AccountInfo struct {
	Pubkey       []byte
	Lamports     uint64
	Owner        []byte
	Executable   bool
	RentEpoch    uint64
	Data         []byte
	WriteVersion uint64
	TxnSignature []byte
}

// SlotInfo reports a slot reaching a commitment level.
type SlotInfo struct {
	Slot      uint64
	Parent    *uint64
	Status    string
	Blockhash string
	Leader    string
	Timestamp *int64
}

// TransactionInfo is the raw payload of a transaction notification. Index is
// the position assigned by the executor within the slot.
type TransactionInfo struct {
	Signature         []byte
	IsVote            bool
	Index             int
	Err               *string
	Fee               uint64
	PreBalances       []uint64
	PostBalances      []uint64
	InnerInstructions []byte
	Logs              []string
	Signer            []byte
}

// BlockInfo is the raw payload of a block-metadata notification.
type BlockInfo struct {
	Slot                     uint64
	Blockhash                string
	Rewards                  []byte
	BlockTime                *int64
	BlockHeight              *uint64
	ParentSlot               uint64
	ParentBlockhash          string
	ExecutedTransactionCount int
}
