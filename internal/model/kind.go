package model

// RecordKind identifies one of the ingested record streams.
type RecordKind string

var (
	KindAccount     RecordKind = "account"
	KindSlot        RecordKind = "slot"
	KindTransaction RecordKind = "transaction"
	KindBlock       RecordKind = "block"
)
