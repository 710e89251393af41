// pkg/physics/thrust.go
package physics

// ControlInput is the per-tick key state relevant to the craft.
type ControlInput struct {
	Up    bool
	Left  bool
	Right bool
}

// Thruster maps control input and remaining fuel to an acceleration.
// Magnitudes are positive; Gravity pulls toward +y, Thrust pushes toward -y.
type Thruster struct {
	Gravity float64
	Thrust  float64
	Lateral float64
}

// DefaultThruster returns the stock engine: gravity 100, thrust 150, lateral 75.
func DefaultThruster() Thruster {
	return Thruster{
		Gravity: 100,
		Thrust:  150,
		Lateral: 75,
	}
}

// Apply computes this tick's acceleration and burns fuel.
//
// Vertical thrust requires fuel > 0 and costs dt per tick, so fuel can end at most one
// dt below zero. Lateral thrust only works while vertical thrust is active this tick.
// When Left and Right are both held, Right wins.
func (t Thruster) Apply(in ControlInput, fuel *float64, dt float64) Vector2D {
	acc := Vector2D{X: 0, Y: t.Gravity}

	if in.Up && *fuel > 0 {
		acc.Y = -t.Thrust
		*fuel -= dt
	}
	if in.Left && acc.Y < 0 {
		acc.X = -t.Lateral
	}
	if in.Right && acc.Y < 0 {
		acc.X = t.Lateral
	}

	return acc
}
