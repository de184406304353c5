package clock

import "time"

// BackoffDelay returns the bounded exponential delay preceding retry attempt
// number attempt (zero-based): base, 2*base, 4*base, ... capped at max.
func BackoffDelay(attempt int, base, max time.Duration) time.Duration {
	if base <= 0 {
		base = time.Millisecond
	}
	if max < base {
		max = base
	}
	if attempt < 0 {
		attempt = 0
	}

	d := base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= max || d < 0 {
			return max
		}
	}
	return d
}
