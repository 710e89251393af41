package entity

import (
	"github.com/opd-ai/go-lander/pkg/physics"
)

// Renderer draws one frame. The game calls Clear, then the Render* methods, then
// Present, exactly once per tick. Implementations must not retain pointers past Present.
type Renderer interface {
	Clear()
	RenderCraft(craft *Craft)
	RenderWall(wall *Wall)
	RenderParticle(particle Particle)
	RenderFuelGauge(gauge FuelGauge)
	RenderOutcome(outcome physics.Outcome, craft *Craft)
	Present()
}

// ExplosionSize is the footprint of the crash sprite.
var ExplosionSize = physics.Size{W: 72, H: 60}

// ExplosionRect centres the crash sprite on the craft.
func ExplosionRect(c *Craft) physics.Rect {
	return physics.Rect{
		X: c.Position.X + c.Size.W/2 - ExplosionSize.W/2,
		Y: c.Position.Y + c.Size.H/2 - ExplosionSize.H/2,
		W: ExplosionSize.W,
		H: ExplosionSize.H,
	}
}

// BannerRect centres a w×h banner in the arena.
func BannerRect(arena physics.Arena, w, h float64) physics.Rect {
	return physics.Rect{
		X: arena.Width/2 - w/2,
		Y: arena.Height/2 - h/2,
		W: w,
		H: h,
	}
}
