package entity

import (
	"github.com/opd-ai/go-lander/pkg/physics"
)

// GaugeLevel is the colour band of the fuel gauge.
type GaugeLevel int

const (
	GaugeCritical GaugeLevel = iota // 0-24%
	GaugeLow                        // 25-50%
	GaugeMedium                     // 51-75%
	GaugeFull                       // 76-100%
)

// String returns the band name.
func (l GaugeLevel) String() string {
	switch l {
	case GaugeFull:
		return "full"
	case GaugeMedium:
		return "medium"
	case GaugeLow:
		return "low"
	default:
		return "critical"
	}
}

// FuelGauge is a vertical bar anchored to the bottom of the arena.
type FuelGauge struct {
	Percent int
	Level   GaugeLevel
	Rect    physics.Rect
}

// NewFuelGauge builds the gauge for craft in a bar of the given x and width.
// The bar height is the fuel percentage of the arena height, in whole pixels.
func NewFuelGauge(craft *Craft, arena physics.Arena, x, width float64) FuelGauge {
	percent := craft.FuelPercent()
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	height := int(arena.Height)
	top := height - height*percent/100

	return FuelGauge{
		Percent: percent,
		Level:   gaugeLevel(percent),
		Rect: physics.Rect{
			X: x,
			Y: float64(top),
			W: width,
			H: float64(height - top),
		},
	}
}

func gaugeLevel(percent int) GaugeLevel {
	switch {
	case percent >= 76:
		return GaugeFull
	case percent >= 51:
		return GaugeMedium
	case percent >= 25:
		return GaugeLow
	default:
		return GaugeCritical
	}
}
