// pkg/entity/craft.go
package entity

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-lander/pkg/physics"
)

// CraftType selects the sprite and fixed dimensions of the player's craft.
type CraftType int

const (
	Helicopter CraftType = iota
	Rocket
)

// craftSizes are the on-screen sprite sizes of each craft type.
var craftSizes = map[CraftType]physics.Size{
	Helicopter: {W: 128 * 0.75, H: 64 * 0.75},
	Rocket:     {W: 32 * 2, H: 64 * 2},
}

// String returns the config name of the craft type.
func (t CraftType) String() string {
	switch t {
	case Helicopter:
		return "helicopter"
	case Rocket:
		return "rocket"
	default:
		return fmt.Sprintf("CraftType(%d)", int(t))
	}
}

// ParseCraftType maps a config name to a CraftType.
func ParseCraftType(name string) (CraftType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "helicopter", "":
		return Helicopter, nil
	case "rocket":
		return Rocket, nil
	default:
		return 0, fmt.Errorf("unknown craft type %q", name)
	}
}

// Size returns the default dimensions for the craft type.
func (t CraftType) Size() physics.Size {
	return craftSizes[t]
}

// Craft is the player-controlled vehicle. The game loop owns it exclusively.
type Craft struct {
	physics.Body
	Type         CraftType
	Size         physics.Size
	Fuel         float64
	StartingFuel float64
}

// NewCraft creates a craft at rest at position with a full tank.
// A zero size falls back to the craft type's default dimensions.
func NewCraft(craftType CraftType, position physics.Vector2D, size physics.Size, fuel float64) *Craft {
	if size.W <= 0 || size.H <= 0 {
		size = craftType.Size()
	}
	return &Craft{
		Body:         physics.Body{Position: position},
		Type:         craftType,
		Size:         size,
		Fuel:         fuel,
		StartingFuel: fuel,
	}
}

// Bounds returns the craft's bounding box.
func (c *Craft) Bounds() physics.Rect {
	return physics.Rect{X: c.Position.X, Y: c.Position.Y, W: c.Size.W, H: c.Size.H}
}

// FuelPercent returns remaining fuel as an integer percentage, truncated toward zero.
func (c *Craft) FuelPercent() int {
	if c.StartingFuel <= 0 {
		return 0
	}
	return int(c.Fuel / c.StartingFuel * 100)
}

// Wall is a static obstacle.
type Wall struct {
	physics.Rect
}

// NewWall creates a wall from its top-left corner and size.
func NewWall(x, y, w, h float64) *Wall {
	return &Wall{Rect: physics.Rect{X: x, Y: y, W: w, H: h}}
}

// Bounds returns the wall rectangle.
func (w *Wall) Bounds() physics.Rect {
	return w.Rect
}
