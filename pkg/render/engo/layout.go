// pkg/render/engo/layout.go
package engo

import (
	"image/color"

	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// Sprite sizes in arena pixels.
const (
	particleSize = 5
	bannerWidth  = 256
	bannerHeight = 64
)

var (
	wallColor     = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	particleColor = color.NRGBA{R: 200, G: 200, B: 200}
	spriteColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// spriteState is where one drawable goes in a frame and how it is tinted.
type spriteState struct {
	Rect   physics.Rect
	Color  color.NRGBA
	Hidden bool
}

// layout places every drawable of a frame.
type layout struct {
	Walls     []spriteState
	Particles []spriteState
	Craft     spriteState
	Gauge     spriteState
	Explosion spriteState
	Banner    spriteState
}

func layoutFrame(f Frame, arena physics.Arena) layout {
	l := layout{
		Walls:     make([]spriteState, len(f.Walls)),
		Particles: make([]spriteState, len(f.Particles)),
		Craft:     spriteState{Rect: f.Craft, Color: spriteColor, Hidden: !f.HasCraft},
		Gauge: spriteState{
			Rect:   f.Gauge.Rect,
			Color:  GaugeColor(f.Gauge.Level),
			Hidden: f.Gauge.Rect.H <= 0,
		},
		Explosion: spriteState{Rect: f.Explosion, Color: spriteColor, Hidden: f.Outcome != physics.Crashed},
		Banner: spriteState{
			Rect:   entity.BannerRect(arena, bannerWidth, bannerHeight),
			Color:  spriteColor,
			Hidden: f.Outcome != physics.Won,
		},
	}
	for i, w := range f.Walls {
		l.Walls[i] = spriteState{Rect: w, Color: wallColor}
	}
	for i, p := range f.Particles {
		c := particleColor
		c.A = p.Alpha
		l.Particles[i] = spriteState{
			Rect: physics.Rect{
				X: p.Position.X - particleSize/2,
				Y: p.Position.Y - particleSize/2,
				W: particleSize,
				H: particleSize,
			},
			Color: c,
		}
	}
	return l
}

// GaugeColor maps a fuel band to its colour.
func GaugeColor(level entity.GaugeLevel) color.NRGBA {
	switch level {
	case entity.GaugeFull:
		return color.NRGBA{G: 200, A: 255}
	case entity.GaugeMedium:
		return color.NRGBA{R: 230, G: 220, A: 255}
	case entity.GaugeLow:
		return color.NRGBA{R: 255, G: 140, A: 255}
	default:
		return color.NRGBA{R: 220, A: 255}
	}
}
