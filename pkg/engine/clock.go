// pkg/engine/clock.go
package engine

import (
	"context"
	"time"
)

// Clock is the game's only source of time and its only suspension point.
type Clock interface {
	Now() time.Time
	// SleepUntil blocks until t or until ctx is done, returning ctx.Err() in that case.
	SleepUntil(ctx context.Context, t time.Time) error
}

// RealClock is the wall clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// SleepUntil blocks until t or ctx cancellation.
func (RealClock) SleepUntil(ctx context.Context, t time.Time) error {
	d := time.Until(t)
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

// ticker paces the loop at a fixed interval against absolute deadlines.
// Each deadline is the previous one plus the interval, so sleep jitter does not
// accumulate. A tick that finishes after its deadline runs the next one immediately;
// missed ticks are neither replayed nor skipped.
type ticker struct {
	clock    Clock
	interval time.Duration
	deadline time.Time
	overruns uint64
}

func newTicker(clock Clock, interval time.Duration) *ticker {
	return &ticker{
		clock:    clock,
		interval: interval,
		deadline: clock.Now(),
	}
}

// wait advances the deadline and sleeps until it. It reports whether the deadline
// had already passed.
func (t *ticker) wait(ctx context.Context) (overrun bool, err error) {
	t.deadline = t.deadline.Add(t.interval)

	if t.clock.Now().After(t.deadline) {
		t.overruns++
		return true, ctx.Err()
	}
	return false, t.clock.SleepUntil(ctx, t.deadline)
}

// Deadline returns the deadline the ticker last waited for.
func (t *ticker) Deadline() time.Time {
	return t.deadline
}

// tickInterval converts dt seconds to a duration, rounded to the nanosecond.
func tickInterval(dt float64) time.Duration {
	return time.Duration(dt*float64(time.Second) + 0.5)
}
