package model

// SlotStatus describes the commitment level reported for a slot.
type SlotStatus string

var (
	// SlotProcessed marks a slot the validator has executed.
	SlotProcessed SlotStatus = "processed"
	// SlotConfirmed marks a slot voted on by a cluster supermajority.
	SlotConfirmed SlotStatus = "confirmed"
	// SlotRooted marks a slot finalized beyond rollback.
	SlotRooted SlotStatus = "rooted"
)

// Rank orders statuses by commitment strength so that a persisted status
// never regresses. Unknown statuses rank zero and never displace a known one.
func (s SlotStatus) Rank() uint8 {
	switch s {
	case SlotProcessed:
		return 1
	case SlotConfirmed:
		return 2
	case SlotRooted:
		return 3
	}
	return 0
}

// SlotStatusUpdate reports a slot reaching a commitment level.
type SlotStatusUpdate struct {
	Slot      uint64
	Parent    *uint64
	Status    SlotStatus
	Blockhash string
	Leader    string
	Timestamp *int64
}
