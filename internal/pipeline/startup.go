package pipeline

import (
	"sort"
	"sync"
)

type startupMode int

const (
	modeStartup startupMode = iota
	modeDraining
	modeSteady
)

// startupCoordinator tracks the one-way transition from snapshot replay to
// live streaming. While in startup it records every slot an account update
// was observed at; the set is handed out once at the end-of-startup barrier
// so those slots can be bulk-marked rooted, then discarded for good.
type startupCoordinator struct {
	mu    sync.Mutex
	mode  startupMode
	slots map[uint64]struct{}
}

func newStartupCoordinator() *startupCoordinator {
	return &startupCoordinator{slots: make(map[uint64]struct{})}
}

// observeSlot records the slot of a replayed account update. After the
// end-of-startup signal it is a no-op.
func (c *startupCoordinator) observeSlot(slot uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != modeStartup {
		return
	}
	c.slots[slot] = struct{}{}
}

// steady reports whether the pipeline left the replay phase.
func (c *startupCoordinator) steady() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode == modeSteady
}

// begin moves the coordinator into the barrier-drain phase. Only the first
// end-of-startup signal succeeds.
func (c *startupCoordinator) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != modeStartup {
		return ErrStartupAlreadyComplete
	}
	c.mode = modeDraining
	return nil
}

// complete finishes the transition and returns the recorded startup slots in
// ascending order. The set is discarded; later lookups are impossible.
func (c *startupCoordinator) complete() []uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	slots := make([]uint64, 0, len(c.slots))
	for slot := range c.slots {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	c.slots = nil
	c.mode = modeSteady
	return slots
}
