// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// Validation failures, wrapped with detail by Validate.
var (
	ErrInvalidArena  = errors.New("invalid arena")
	ErrInvalidCraft  = errors.New("invalid craft")
	ErrInvalidTrail  = errors.New("invalid trail")
	ErrInvalidTiming = errors.New("invalid timing")
)

// GameConfig contains configuration for one lander round
type GameConfig struct {
	Arena   ArenaConfig   `json:"arena" mapstructure:"arena"`
	Craft   CraftConfig   `json:"craft" mapstructure:"craft"`
	Physics PhysicsConfig `json:"physics" mapstructure:"physics"`
	Level   LevelConfig   `json:"level" mapstructure:"level"`
	Trail   TrailConfig   `json:"trail" mapstructure:"trail"`
	Assets  AssetsConfig  `json:"assets" mapstructure:"assets"`
	Display DisplayConfig `json:"display" mapstructure:"display"`
	Log     LogConfig     `json:"log" mapstructure:"log"`
}

// ArenaConfig is the size of the playfield in pixels
type ArenaConfig struct {
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
}

// CraftConfig describes the player's craft. A zero Width or Height uses the craft
// type's sprite size.
type CraftConfig struct {
	Type         string  `json:"type" mapstructure:"type"`
	Width        float64 `json:"width" mapstructure:"width"`
	Height       float64 `json:"height" mapstructure:"height"`
	StartX       float64 `json:"startX" mapstructure:"startX"`
	StartY       float64 `json:"startY" mapstructure:"startY"`
	StartingFuel float64 `json:"startingFuel" mapstructure:"startingFuel"`
}

// PhysicsConfig contains physics-related configuration
type PhysicsConfig struct {
	TickRate        int     `json:"tickRate" mapstructure:"tickRate"`
	Gravity         float64 `json:"gravity" mapstructure:"gravity"`
	Thrust          float64 `json:"thrust" mapstructure:"thrust"`
	Lateral         float64 `json:"lateral" mapstructure:"lateral"`
	Drag            float64 `json:"drag" mapstructure:"drag"`
	MaxLandingSpeed float64 `json:"maxLandingSpeed" mapstructure:"maxLandingSpeed"`
	LeftMargin      float64 `json:"leftMargin" mapstructure:"leftMargin"`
	WallInset       float64 `json:"wallInset" mapstructure:"wallInset"`
}

// LevelConfig lists the static obstacles
type LevelConfig struct {
	Walls []WallConfig `json:"walls" mapstructure:"walls"`
}

// WallConfig is one wall rectangle, top-left origin
type WallConfig struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
	W float64 `json:"w" mapstructure:"w"`
	H float64 `json:"h" mapstructure:"h"`
}

// TrailConfig describes the exhaust trail. Alphas are oldest first.
type TrailConfig struct {
	Alphas   []int    `json:"alphas" mapstructure:"alphas"`
	Lifespan Duration `json:"lifespan" mapstructure:"lifespan"`
	OffsetX  float64  `json:"offsetX" mapstructure:"offsetX"`
	OffsetY  float64  `json:"offsetY" mapstructure:"offsetY"`
}

// AssetsConfig points at the sprite images used by the window backend
type AssetsConfig struct {
	Dir        string `json:"dir" mapstructure:"dir"`
	Rocket     string `json:"rocket" mapstructure:"rocket"`
	Helicopter string `json:"helicopter" mapstructure:"helicopter"`
	Explosion  string `json:"explosion" mapstructure:"explosion"`
	Won        string `json:"won" mapstructure:"won"`
}

// DisplayConfig contains window and end-of-round presentation settings
type DisplayConfig struct {
	Title          string   `json:"title" mapstructure:"title"`
	Fullscreen     bool     `json:"fullscreen" mapstructure:"fullscreen"`
	VSync          bool     `json:"vsync" mapstructure:"vsync"`
	EndScreenDelay Duration `json:"endScreenDelay" mapstructure:"endScreenDelay"`
	GaugeWidth     float64  `json:"gaugeWidth" mapstructure:"gaugeWidth"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `json:"level" mapstructure:"level"`
	File  string `json:"file" mapstructure:"file"`
}

// Duration is a time.Duration written as a Go duration string ("100ms", "10s").
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// LoadConfig loads a configuration from a JSON file. Missing fields keep their defaults.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	config.Level.Walls = nil
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Level.Walls == nil && !hasJSONWalls(data) {
		config.Level.Walls = DefaultConfig().Level.Walls
	}

	return config, nil
}

func hasJSONWalls(data []byte) bool {
	var probe struct {
		Level struct {
			Walls json.RawMessage `json:"walls"`
		} `json:"level"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Level.Walls != nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	if config == nil {
		return errors.New("failed to marshal config: nil config")
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the stock level: a 640x480 arena, a helicopter on the left
// floor with five seconds of fuel and two walls between it and the landing zone.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Arena: ArenaConfig{Width: 640, Height: 480},
		Craft: CraftConfig{
			Type:         entity.Helicopter.String(),
			StartX:       75,
			StartY:       432,
			StartingFuel: 5,
		},
		Physics: PhysicsConfig{
			TickRate:        120,
			Gravity:         100,
			Thrust:          150,
			Lateral:         75,
			Drag:            physics.DefaultDrag,
			MaxLandingSpeed: 60,
			LeftMargin:      10,
			WallInset:       5,
		},
		Level: LevelConfig{
			Walls: []WallConfig{
				{X: 200, Y: 280, W: 40, H: 200},
				{X: 400, Y: 0, W: 40, H: 260},
			},
		},
		Trail: TrailConfig{
			Alphas:   []int{55, 105, 155, 205, 255},
			Lifespan: Duration(100 * time.Millisecond),
			OffsetX:  25,
			OffsetY:  30,
		},
		Assets: AssetsConfig{
			Dir:        "assets",
			Rocket:     "rocket.png",
			Helicopter: "helicopter.png",
			Explosion:  "explosion.png",
			Won:        "won.png",
		},
		Display: DisplayConfig{
			Title:          "Lander",
			VSync:          true,
			EndScreenDelay: Duration(10 * time.Second),
			GaugeWidth:     10,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c *GameConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: size %vx%v must be positive", ErrInvalidArena, c.Arena.Width, c.Arena.Height)
	}

	craftType, err := entity.ParseCraftType(c.Craft.Type)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCraft, err)
	}
	if c.Craft.Width < 0 || c.Craft.Height < 0 {
		return fmt.Errorf("%w: negative size %vx%v", ErrInvalidCraft, c.Craft.Width, c.Craft.Height)
	}
	size := c.CraftSize(craftType)
	if size.W > c.Arena.Width || size.H > c.Arena.Height {
		return fmt.Errorf("%w: %vx%v does not fit the arena", ErrInvalidCraft, size.W, size.H)
	}
	if c.Craft.StartingFuel < 0 {
		return fmt.Errorf("%w: starting fuel %v is negative", ErrInvalidCraft, c.Craft.StartingFuel)
	}

	if c.Physics.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidTiming, c.Physics.TickRate)
	}
	if c.Display.EndScreenDelay < 0 {
		return fmt.Errorf("%w: end screen delay %v is negative", ErrInvalidTiming, time.Duration(c.Display.EndScreenDelay))
	}

	if len(c.Trail.Alphas) == 0 {
		return fmt.Errorf("%w: at least one particle is required", ErrInvalidTrail)
	}
	for i, a := range c.Trail.Alphas {
		if a < 0 || a > 255 {
			return fmt.Errorf("%w: alpha[%d] = %d is outside 0-255", ErrInvalidTrail, i, a)
		}
	}
	if c.Trail.Lifespan <= 0 {
		return fmt.Errorf("%w: lifespan must be positive", ErrInvalidTrail)
	}

	for i, w := range c.Level.Walls {
		if w.W <= 0 || w.H <= 0 {
			return fmt.Errorf("%w: wall %d has non-positive size", ErrInvalidArena, i)
		}
	}

	return nil
}

// TickDuration returns the fixed timestep dt in seconds.
func (c *GameConfig) TickDuration() float64 {
	return 1.0 / float64(c.Physics.TickRate)
}

// CraftType returns the parsed craft type, defaulting to the helicopter.
func (c *GameConfig) CraftType() entity.CraftType {
	t, err := entity.ParseCraftType(c.Craft.Type)
	if err != nil {
		return entity.Helicopter
	}
	return t
}

// CraftSize returns the configured craft size, falling back to the type's sprite size.
func (c *GameConfig) CraftSize(t entity.CraftType) physics.Size {
	if c.Craft.Width > 0 && c.Craft.Height > 0 {
		return physics.Size{W: c.Craft.Width, H: c.Craft.Height}
	}
	return t.Size()
}

// ArenaBounds returns the arena as a physics value.
func (c *GameConfig) ArenaBounds() physics.Arena {
	return physics.Arena{Width: c.Arena.Width, Height: c.Arena.Height}
}

// WallRects returns the wall rectangles.
func (c *GameConfig) WallRects() []physics.Rect {
	rects := make([]physics.Rect, len(c.Level.Walls))
	for i, w := range c.Level.Walls {
		rects[i] = physics.Rect{X: w.X, Y: w.Y, W: w.W, H: w.H}
	}
	return rects
}

// ResolverConfig builds the collision resolver settings.
func (c *GameConfig) ResolverConfig() physics.ResolverConfig {
	return physics.ResolverConfig{
		Arena:           c.ArenaBounds(),
		Craft:           c.CraftSize(c.CraftType()),
		Walls:           c.WallRects(),
		LeftMargin:      c.Physics.LeftMargin,
		WallInset:       c.Physics.WallInset,
		MaxLandingSpeed: c.Physics.MaxLandingSpeed,
	}
}

// Thruster builds the control/fuel model.
func (c *GameConfig) Thruster() physics.Thruster {
	return physics.Thruster{
		Gravity: c.Physics.Gravity,
		Thrust:  c.Physics.Thrust,
		Lateral: c.Physics.Lateral,
	}
}

// TrailSettings builds the particle trail settings.
func (c *GameConfig) TrailSettings() entity.TrailConfig {
	alphas := make([]uint8, len(c.Trail.Alphas))
	for i, a := range c.Trail.Alphas {
		alphas[i] = uint8(a)
	}
	return entity.TrailConfig{
		Alphas:   alphas,
		Lifespan: time.Duration(c.Trail.Lifespan),
		Offset:   physics.Vector2D{X: c.Trail.OffsetX, Y: c.Trail.OffsetY},
	}
}
