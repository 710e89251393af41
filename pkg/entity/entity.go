// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-lander/pkg/physics"
)

// Entity is anything the game hands to a Renderer each frame.
type Entity interface {
	Render(r Renderer)
}

// Bounded is an entity with a collision box.
type Bounded interface {
	Entity
	Bounds() physics.Rect
}

// Render dispatches the craft to the renderer.
func (c *Craft) Render(r Renderer) {
	r.RenderCraft(c)
}

// Render dispatches the wall to the renderer.
func (w *Wall) Render(r Renderer) {
	r.RenderWall(w)
}

// Render dispatches every particle, oldest first.
func (t *Trail) Render(r Renderer) {
	for _, p := range t.Particles() {
		r.RenderParticle(p)
	}
}

// Render dispatches the gauge to the renderer.
func (g FuelGauge) Render(r Renderer) {
	r.RenderFuelGauge(g)
}
