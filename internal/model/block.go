package model

// BlockMetadataRecord carries block-level metadata emitted once per produced block.
type BlockMetadataRecord struct {
	Slot                     uint64
	Blockhash                string
	Rewards                  []byte
	BlockTime                *int64
	BlockHeight              *uint64
	ParentSlot               uint64
	ParentBlockhash          string
	ExecutedTransactionCount uint64
}
