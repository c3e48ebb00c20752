package service

import (
	"context"
	"time"
)

// Delay waits d before the next request to the external API. It returns
// early with ctx.Err() when the context is cancelled.
type Delay func(ctx context.Context, d time.Duration) error

// SleepDelay is the production Delay.
func SleepDelay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoDelay never waits. Used by tests.
func NoDelay(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
