// Package clock holds the timing primitives behind the flush retry policy:
// a context-aware sleep and the bounded exponential delay schedule.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d unless the context ends first, in which case
// it returns the context's error without waiting out the timer. A
// non-positive duration never arms a timer.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
