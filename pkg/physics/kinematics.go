// pkg/physics/kinematics.go
package physics

// DefaultDrag is the per-tick horizontal velocity retention ("wind drag").
const DefaultDrag = 0.999

// Body is the kinematic state of the craft.
type Body struct {
	Position     Vector2D
	Velocity     Vector2D
	Acceleration Vector2D
}

// Rest zeroes velocity and acceleration, leaving the position untouched.
func (b *Body) Rest() {
	b.Velocity = Vector2D{}
	b.Acceleration = Vector2D{}
}

// Integrator advances a Body by a fixed timestep.
type Integrator struct {
	Drag float64
}

// NewIntegrator returns an integrator applying the given horizontal drag factor.
func NewIntegrator(drag float64) Integrator {
	return Integrator{Drag: drag}
}

// Step advances b by dt using Integrate with the integrator's drag.
func (in Integrator) Step(b *Body, dt float64) {
	Integrate(b, dt, in.Drag)
}

// Integrate advances position and velocity by dt.
//
// Position takes the pre-step velocity plus the half-acceleration correction term.
// Horizontal velocity is scaled by drag before the acceleration is added; vertical
// velocity is not dragged.
func Integrate(b *Body, dt, drag float64) {
	dt2 := dt * dt

	b.Position.X += b.Velocity.X*dt + 0.5*b.Acceleration.X*dt2
	b.Position.Y += b.Velocity.Y*dt + 0.5*b.Acceleration.Y*dt2

	b.Velocity.X *= drag
	b.Velocity.X += b.Acceleration.X * dt
	b.Velocity.Y += b.Acceleration.Y * dt
}
