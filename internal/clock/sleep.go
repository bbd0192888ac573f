// Package clock provides context-aware waiting used by retry loops.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or returns ctx.Err() as soon as ctx ends.
// Non-positive durations only check the context.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
