// pkg/render/engo/renderer.go
package engo

import (
	"sync"

	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// Frame is a copy of everything drawn between one Clear and Present.
// It holds no pointers into game state.
type Frame struct {
	Seq       uint64
	HasCraft  bool
	Craft     physics.Rect
	CraftType entity.CraftType
	Walls     []physics.Rect
	Particles []entity.Particle
	Gauge     entity.FuelGauge
	Outcome   physics.Outcome
	Explosion physics.Rect
}

// EngoRenderer implements entity.Renderer for the engo window. The game calls it
// from its own goroutine; the scene reads the last presented frame on the main thread.
type EngoRenderer struct {
	pending Frame

	mu     sync.Mutex
	seq    uint64
	latest Frame
	ready  bool
}

// NewEngoRenderer creates a renderer with no presented frame.
func NewEngoRenderer() *EngoRenderer {
	return &EngoRenderer{}
}

// Latest returns the last presented frame, or false before the first Present.
func (r *EngoRenderer) Latest() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest, r.ready
}

// Clear implements entity.Renderer.
func (r *EngoRenderer) Clear() {
	r.pending = Frame{}
}

// RenderCraft implements entity.Renderer.
func (r *EngoRenderer) RenderCraft(craft *entity.Craft) {
	if craft == nil {
		return
	}
	r.pending.HasCraft = true
	r.pending.Craft = craft.Bounds()
	r.pending.CraftType = craft.Type
}

// RenderWall implements entity.Renderer.
func (r *EngoRenderer) RenderWall(wall *entity.Wall) {
	if wall == nil {
		return
	}
	r.pending.Walls = append(r.pending.Walls, wall.Bounds())
}

// RenderParticle implements entity.Renderer.
func (r *EngoRenderer) RenderParticle(p entity.Particle) {
	r.pending.Particles = append(r.pending.Particles, p)
}

// RenderFuelGauge implements entity.Renderer.
func (r *EngoRenderer) RenderFuelGauge(g entity.FuelGauge) {
	r.pending.Gauge = g
}

// RenderOutcome implements entity.Renderer.
func (r *EngoRenderer) RenderOutcome(outcome physics.Outcome, craft *entity.Craft) {
	r.pending.Outcome = outcome
	if outcome == physics.Crashed && craft != nil {
		r.pending.Explosion = entity.ExplosionRect(craft)
	}
}

// Present implements entity.Renderer. The pending frame's slices are handed
// over, and the next Clear starts fresh ones.
func (r *EngoRenderer) Present() {
	r.mu.Lock()
	r.seq++
	r.pending.Seq = r.seq
	r.latest = r.pending
	r.ready = true
	r.mu.Unlock()

	r.pending = Frame{}
}
