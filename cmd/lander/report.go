// cmd/lander/report.go
package main

import (
	"context"
	"sync"

	"github.com/opd-ai/go-lander/pkg/event"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// report builds the end-of-run summary from game events. With the engo backend
// the game publishes from its own goroutine.
type report struct {
	mu            sync.Mutex
	ended         bool
	outcome       physics.Outcome
	quit          bool
	ticks         uint64
	fuelEmpty     bool
	fuelEmptyTick uint64

	subs []*event.Subscription
}

// watchGame subscribes a report to bus.
func watchGame(bus *event.Bus) *report {
	r := &report{}
	r.subs = []*event.Subscription{
		bus.Subscribe(event.GameEnded, r.onGameEnded),
		bus.Subscribe(event.FuelDepleted, r.onFuelDepleted),
	}
	return r
}

func (r *report) onGameEnded(e event.Event) {
	ended, ok := e.(*event.GameEndedEvent)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ended = true
	r.outcome = ended.Outcome
	r.quit = ended.Quit
	r.ticks = ended.Ticks
}

func (r *report) onFuelDepleted(e event.Event) {
	depleted, ok := e.(*event.CraftEvent)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.fuelEmpty {
		r.fuelEmpty = true
		r.fuelEmptyTick = depleted.Tick
	}
}

// Close unsubscribes the report.
func (r *report) Close() {
	for _, sub := range r.subs {
		sub.Cancel()
	}
}

// Log writes the summary. A run that never reached GameEnded, because setup
// failed before the loop started, is reported as such.
func (r *report) Log(ctx context.Context, logger *logging.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ended {
		logger.Warn(ctx, "Lander stopped before the game started")
		return
	}
	args := []any{
		"outcome", r.outcome.String(),
		"quit", r.quit,
		"ticks", r.ticks,
	}
	if r.fuelEmpty {
		args = append(args, "fuel_empty_tick", r.fuelEmptyTick)
	}
	logger.Info(ctx, "Lander finished", args...)
}
