package engine

import (
	"context"
	"time"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// manualClock only moves when the game sleeps or a test advances it.
type manualClock struct {
	now    time.Time
	sleeps []time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) SleepUntil(ctx context.Context, t time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleeps = append(c.sleeps, t)
	if t.After(c.now) {
		c.now = t
	}
	return nil
}

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// recordingRenderer logs every call and the craft position it was shown.
type recordingRenderer struct {
	calls     []string
	positions []physics.Vector2D
	outcomes  []physics.Outcome
	presents  int
	onPresent func(n int)
}

func (r *recordingRenderer) Clear() { r.calls = append(r.calls, "clear") }
func (r *recordingRenderer) RenderWall(*entity.Wall) { r.calls = append(r.calls, "wall") }
func (r *recordingRenderer) RenderParticle(entity.Particle) {
	r.calls = append(r.calls, "particle")
}
func (r *recordingRenderer) RenderFuelGauge(entity.FuelGauge) {
	r.calls = append(r.calls, "gauge")
}

func (r *recordingRenderer) RenderCraft(c *entity.Craft) {
	r.calls = append(r.calls, "craft")
	r.positions = append(r.positions, c.Position)
}

func (r *recordingRenderer) RenderOutcome(o physics.Outcome, _ *entity.Craft) {
	r.calls = append(r.calls, "outcome")
	r.outcomes = append(r.outcomes, o)
}

func (r *recordingRenderer) Present() {
	r.calls = append(r.calls, "present")
	r.presents++
	if r.onPresent != nil {
		r.onPresent(r.presents)
	}
}

func (r *recordingRenderer) reset() { r.calls = nil }

// fakeInput holds keys steadily and reports a quit on the quitAt-th poll.
type fakeInput struct {
	keys   map[entity.Key]bool
	quitAt int
	polls  int
}

func (f *fakeInput) PollEvents() []entity.InputEvent {
	f.polls++
	if f.quitAt > 0 && f.polls >= f.quitAt {
		return []entity.InputEvent{{Type: entity.EventQuit}}
	}
	return nil
}

func (f *fakeInput) KeyState(k entity.Key) bool { return f.keys[k] }

// testConfig is the default level without walls or an end-screen pause.
func testConfig() *config.GameConfig {
	cfg := config.DefaultConfig()
	cfg.Level.Walls = nil
	cfg.Display.EndScreenDelay = 0
	return cfg
}
