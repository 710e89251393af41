// pkg/entity/trail.go
package entity

import (
	"time"

	"github.com/opd-ai/go-lander/pkg/physics"
)

// Particle is one fading marker of the craft's exhaust trail.
type Particle struct {
	Position physics.Vector2D
	Lifespan time.Duration
	Alpha    uint8
}

// TrailConfig describes the exhaust trail.
type TrailConfig struct {
	// Alphas has one entry per particle, oldest first. Its length fixes the capacity.
	Alphas   []uint8
	Lifespan time.Duration
	// Offset places new particles relative to the craft's top-left corner.
	Offset physics.Vector2D
}

// DefaultTrailConfig returns the stock five-particle trail.
func DefaultTrailConfig() TrailConfig {
	return TrailConfig{
		Alphas:   []uint8{55, 105, 155, 205, 255},
		Lifespan: 100 * time.Millisecond,
		Offset:   physics.Vector2D{X: 25, Y: 30},
	}
}

// Trail is a fixed-size ring of particles ordered by age.
//
// Only the oldest particle's lifespan is counted down. When it expires, it is replaced
// by a fresh particle at the craft and every slot gets its alpha by age. Younger
// particles keep their full lifespan until they become the oldest.
type Trail struct {
	particles []Particle
	head      int // index of the oldest particle
	cfg       TrailConfig
}

// NewTrail creates a trail with every particle at origin and full lifespan.
func NewTrail(cfg TrailConfig, origin physics.Vector2D) *Trail {
	alphas := make([]uint8, len(cfg.Alphas))
	copy(alphas, cfg.Alphas)
	cfg.Alphas = alphas

	t := &Trail{
		particles: make([]Particle, len(alphas)),
		cfg:       cfg,
	}
	spawn := origin.Add(cfg.Offset)
	for i := range t.particles {
		t.particles[i] = Particle{Position: spawn, Lifespan: cfg.Lifespan}
	}
	t.assignAlphas()
	return t
}

// Len returns the fixed number of particles.
func (t *Trail) Len() int {
	return len(t.particles)
}

// At returns the i-th particle counting from the oldest.
func (t *Trail) At(i int) Particle {
	return t.particles[t.slot(i)]
}

// Particles returns a copy of the particles, oldest first.
func (t *Trail) Particles() []Particle {
	out := make([]Particle, len(t.particles))
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// Update advances the trail by one tick of dt seconds with the craft at craftPos.
// The elapsed time is truncated to whole milliseconds.
func (t *Trail) Update(dt float64, craftPos physics.Vector2D) {
	if len(t.particles) == 0 {
		return
	}

	oldest := &t.particles[t.head]
	oldest.Lifespan -= time.Duration(int(1000.0*dt)) * time.Millisecond
	if oldest.Lifespan >= 0 {
		return
	}

	// The oldest slot becomes the newest once head moves past it.
	*oldest = Particle{
		Position: craftPos.Add(t.cfg.Offset),
		Lifespan: t.cfg.Lifespan,
	}
	t.head = (t.head + 1) % len(t.particles)
	t.assignAlphas()
}

func (t *Trail) assignAlphas() {
	for i, alpha := range t.cfg.Alphas {
		t.particles[t.slot(i)].Alpha = alpha
	}
}

func (t *Trail) slot(i int) int {
	return (t.head + i) % len(t.particles)
}
