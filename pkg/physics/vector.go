// pkg/physics/vector.go
package physics

import "math"

// Vector2D represents a 2D vector in screen space (y grows downward)
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// ApproxEqual reports whether both components differ by at most eps.
func (v Vector2D) ApproxEqual(other Vector2D, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps && math.Abs(v.Y-other.Y) <= eps
}
