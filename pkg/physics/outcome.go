// pkg/physics/outcome.go
package physics

// Outcome classifies the state of a round.
type Outcome int

const (
	// Active is the only non-terminal outcome.
	Active Outcome = iota
	// Crashed covers leaving the arena, a hard landing and hitting a wall.
	Crashed
	// Won means the craft rests on the floor past the arena midline.
	Won
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Active:
		return "active"
	case Crashed:
		return "crashed"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the round.
func (o Outcome) Terminal() bool {
	return o == Crashed || o == Won
}

// Contact identifies which rule of the resolver matched during a tick.
type Contact int

const (
	// NoContact means the craft is airborne and inside the arena.
	NoContact Contact = iota
	// BoundsContact means the craft left the arena.
	BoundsContact
	// LandingContact is a safe touchdown on the floor.
	LandingContact
	// HardLandingContact is a floor touchdown descending faster than MaxLandingSpeed.
	HardLandingContact
	// WallContact means the craft overlaps a wall.
	WallContact
)

// String returns a short name for logs and events.
func (c Contact) String() string {
	switch c {
	case NoContact:
		return "none"
	case BoundsContact:
		return "bounds"
	case LandingContact:
		return "landing"
	case HardLandingContact:
		return "hard_landing"
	case WallContact:
		return "wall"
	default:
		return "unknown"
	}
}
