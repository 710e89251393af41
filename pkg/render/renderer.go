// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// NullRenderer is a headless implementation of entity.Renderer that logs each
// frame at debug level.
type NullRenderer struct {
	logger *logging.Logger
	frames uint64
}

// NewNullRenderer creates a NullRenderer. A nil logger discards everything.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullRenderer{logger: logger}
}

// Frames returns the number of presented frames.
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.frames++
}

// RenderCraft implements entity.Renderer.
func (d *NullRenderer) RenderCraft(craft *entity.Craft) {
	if craft == nil {
		return
	}
	d.logger.Debug(context.Background(), "frame",
		"frame", d.frames,
		"x", craft.Position.X,
		"y", craft.Position.Y,
		"dx", craft.Velocity.X,
		"dy", craft.Velocity.Y,
		"fuel_percent", craft.FuelPercent(),
	)
}

// RenderWall implements entity.Renderer.
func (d *NullRenderer) RenderWall(*entity.Wall) {}

// RenderParticle implements entity.Renderer.
func (d *NullRenderer) RenderParticle(entity.Particle) {}

// RenderFuelGauge implements entity.Renderer.
func (d *NullRenderer) RenderFuelGauge(entity.FuelGauge) {}

// RenderOutcome implements entity.Renderer.
func (d *NullRenderer) RenderOutcome(outcome physics.Outcome, craft *entity.Craft) {
	args := []any{"frame", d.frames, "outcome", outcome.String()}
	if craft != nil {
		args = append(args, "x", craft.Position.X, "y", craft.Position.Y)
	}
	d.logger.Debug(context.Background(), "outcome shown", args...)
}
