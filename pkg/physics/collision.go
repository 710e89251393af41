// pkg/physics/collision.go
package physics

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two rectangles share interior area.
func (r Rect) Overlaps(other Rect) bool {
	return r.Right() > other.X &&
		r.X < other.Right() &&
		r.Bottom() > other.Y &&
		r.Y < other.Bottom()
}

// Inset returns the rectangle with its top and left edges pushed inward by margin.
// The right and bottom edges stay where they are.
func (r Rect) Inset(margin float64) Rect {
	return Rect{
		X: r.X + margin,
		Y: r.Y + margin,
		W: r.W - margin,
		H: r.H - margin,
	}
}

// Size is a width/height pair.
type Size struct {
	W float64
	H float64
}

// Arena is the playable window.
type Arena struct {
	Width  float64
	Height float64
}

// ResolverConfig holds everything the resolver needs; it never changes after NewResolver.
type ResolverConfig struct {
	Arena           Arena
	Craft           Size
	Walls           []Rect
	LeftMargin      float64
	WallInset       float64
	MaxLandingSpeed float64
}

// Resolver detects collisions and decides the outcome of a tick.
type Resolver struct {
	cfg   ResolverConfig
	floor float64
}

// NewResolver copies cfg so later changes to the caller's wall slice have no effect.
func NewResolver(cfg ResolverConfig) *Resolver {
	walls := make([]Rect, len(cfg.Walls))
	copy(walls, cfg.Walls)
	cfg.Walls = walls

	return &Resolver{
		cfg:   cfg,
		floor: cfg.Arena.Height - cfg.Craft.H,
	}
}

// Floor returns the resting y coordinate of the craft.
func (r *Resolver) Floor() float64 {
	return r.floor
}

// Walls returns a copy of the obstacle rectangles.
func (r *Resolver) Walls() []Rect {
	walls := make([]Rect, len(r.cfg.Walls))
	copy(walls, r.cfg.Walls)
	return walls
}

// Resolve returns the outcome after checking b against the arena and walls.
func (r *Resolver) Resolve(b *Body, prev Outcome) Outcome {
	outcome, _ := r.ResolveDetailed(b, prev)
	return outcome
}

// ResolveDetailed is Resolve plus the rule that matched.
//
// Checks run in priority order and at most one of bounds, floor and wall applies per
// tick. Touching the floor clamps the craft onto it and zeroes its motion, also on a
// hard landing. The win test runs afterwards and only while still Active.
// A terminal prev is returned untouched.
func (r *Resolver) ResolveDetailed(b *Body, prev Outcome) (Outcome, Contact) {
	if prev.Terminal() {
		return prev, NoContact
	}

	outcome := prev
	contact := NoContact

	switch {
	case r.outOfBounds(b.Position):
		outcome = Crashed
		contact = BoundsContact
	case b.Position.Y > r.floor:
		b.Position.Y = r.floor
		contact = LandingContact
		if b.Velocity.Y > r.cfg.MaxLandingSpeed {
			outcome = Crashed
			contact = HardLandingContact
		}
		b.Rest()
	case r.hitsWall(b.Position):
		outcome = Crashed
		contact = WallContact
	}

	if outcome == Active && r.landedPastMidline(b.Position) {
		outcome = Won
	}

	return outcome, contact
}

// outOfBounds uses a fixed left margin but lets the craft reach the right edge exactly.
func (r *Resolver) outOfBounds(pos Vector2D) bool {
	return pos.X > r.cfg.Arena.Width-r.cfg.Craft.W ||
		pos.X < r.cfg.LeftMargin ||
		pos.Y < 0
}

func (r *Resolver) hitsWall(pos Vector2D) bool {
	craft := r.craftRect(pos)
	for _, wall := range r.cfg.Walls {
		if craft.Overlaps(wall.Inset(r.cfg.WallInset)) {
			return true
		}
	}
	return false
}

func (r *Resolver) landedPastMidline(pos Vector2D) bool {
	return pos.X > r.cfg.Arena.Width/2 && pos.Y == r.floor
}

func (r *Resolver) craftRect(pos Vector2D) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: r.cfg.Craft.W, H: r.cfg.Craft.H}
}
