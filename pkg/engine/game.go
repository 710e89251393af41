// pkg/engine/game.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/event"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// GameStatus is the lifecycle state of a Game.
type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

// ErrAlreadyStarted is returned by Run on a game that has already been run.
var ErrAlreadyStarted = errors.New("game already started")

// Result summarises a finished round.
type Result struct {
	Outcome physics.Outcome
	// Quit is set when the player closed the game before a terminal outcome.
	Quit          bool
	Ticks         uint64
	Overruns      uint64
	FuelRemaining float64
}

// Game owns the craft and runs the fixed-timestep loop. It is not safe for
// concurrent use; backends that render on another goroutine copy what they need
// inside their Renderer methods.
type Game struct {
	Config      *config.GameConfig
	Craft       *entity.Craft
	Walls       []*entity.Wall
	Trail       *entity.Trail
	Outcome     physics.Outcome
	Status      GameStatus
	CurrentTick uint64
	EventBus    *event.Bus

	renderer   entity.Renderer
	input      entity.InputSource
	resolver   *physics.Resolver
	integrator physics.Integrator
	thruster   physics.Thruster
	arena      physics.Arena
	dt         float64
	interval   time.Duration
	clock      Clock
	logger     *logging.Logger

	overruns     uint64
	lastContact  physics.Contact
	fuelReported bool
}

// Option customises a Game at construction.
type Option func(*Game)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithEventBus publishes game events on an existing bus.
func WithEventBus(b *event.Bus) Option {
	return func(g *Game) { g.EventBus = b }
}

// NewGame creates a round from a validated configuration. The renderer and input
// source are borrowed for the lifetime of the game.
func NewGame(cfg *config.GameConfig, renderer entity.Renderer, input entity.InputSource, opts ...Option) (*Game, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if renderer == nil || input == nil {
		return nil, errors.New("renderer and input source are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	craftType := cfg.CraftType()
	start := physics.Vector2D{X: cfg.Craft.StartX, Y: cfg.Craft.StartY}

	game := &Game{
		Config:     cfg,
		Craft:      entity.NewCraft(craftType, start, cfg.CraftSize(craftType), cfg.Craft.StartingFuel),
		Trail:      entity.NewTrail(cfg.TrailSettings(), start),
		Outcome:    physics.Active,
		Status:     GameStatusWaiting,
		EventBus:   event.NewEventBus(),
		renderer:   renderer,
		input:      input,
		resolver:   physics.NewResolver(cfg.ResolverConfig()),
		integrator: physics.NewIntegrator(cfg.Physics.Drag),
		thruster:   cfg.Thruster(),
		arena:      cfg.ArenaBounds(),
		dt:         cfg.TickDuration(),
		clock:      RealClock{},
		logger:     logging.NewNopLogger(),
	}
	game.interval = tickInterval(game.dt)

	for _, w := range cfg.Level.Walls {
		game.Walls = append(game.Walls, entity.NewWall(w.X, w.Y, w.W, w.H))
	}

	for _, opt := range opts {
		opt(game)
	}

	return game, nil
}

// Run drives the loop until the outcome is terminal, the player quits or ctx is
// cancelled. After a terminal outcome the last frame stays up for the configured
// end-screen delay. Cancellation returns ctx.Err() with the result so far.
// A game runs once.
func (g *Game) Run(ctx context.Context) (Result, error) {
	if g.Status != GameStatusWaiting {
		return g.Result(), ErrAlreadyStarted
	}
	if logging.GetSessionID(ctx) == "" {
		ctx = logging.WithSessionID(ctx, "")
	}

	g.start(ctx)
	tk := newTicker(g.clock, g.interval)

	for {
		if err := ctx.Err(); err != nil {
			return g.end(ctx, false), err
		}

		quit := entity.HasQuit(g.input.PollEvents())
		outcome := g.tick(ctx)

		if quit {
			g.EventBus.Publish(&event.BaseEvent{EventType: event.QuitRequested, Source: g})
			return g.end(ctx, true), nil
		}
		if outcome.Terminal() {
			if err := g.holdEndScreen(ctx); err != nil {
				return g.end(ctx, false), err
			}
			return g.end(ctx, false), nil
		}

		overrun, err := tk.wait(ctx)
		if overrun {
			g.overruns = tk.overruns
			g.logger.Debug(ctx, "tick overrun",
				"tick", g.CurrentTick,
				"late_by", g.clock.Now().Sub(tk.Deadline()).String())
			g.EventBus.Publish(&event.BaseEvent{EventType: event.TickOverrun, Source: g})
		}
		if err != nil {
			return g.end(ctx, false), err
		}
	}
}

// Step runs one tick with the given controls and no pacing: resolve the previous
// move, render, then apply the controls and advance the craft and trail.
// It returns the outcome established by this tick's resolution.
func (g *Game) Step(in physics.ControlInput) physics.Outcome {
	return g.step(context.Background(), func() physics.ControlInput { return in })
}

func (g *Game) tick(ctx context.Context) physics.Outcome {
	return g.step(ctx, func() physics.ControlInput { return entity.ReadControls(g.input) })
}

func (g *Game) step(ctx context.Context, controls func() physics.ControlInput) physics.Outcome {
	prev := g.Outcome
	outcome, contact := g.resolver.ResolveDetailed(&g.Craft.Body, prev)
	g.Outcome = outcome
	g.report(ctx, prev, contact)

	g.render()

	g.Craft.Acceleration = g.thruster.Apply(controls(), &g.Craft.Fuel, g.dt)
	if !g.fuelReported && g.Craft.Fuel <= 0 && g.Craft.StartingFuel > 0 {
		g.fuelReported = true
		g.logger.Info(ctx, "fuel depleted", "tick", g.CurrentTick)
		g.publishCraftEvent(event.FuelDepleted, physics.NoContact)
	}

	g.integrator.Step(&g.Craft.Body, g.dt)
	g.Trail.Update(g.dt, g.Craft.Position)

	g.CurrentTick++
	return outcome
}

func (g *Game) render() {
	r := g.renderer
	r.Clear()
	for _, w := range g.Walls {
		w.Render(r)
	}
	g.Trail.Render(r)
	g.Craft.Render(r)
	entity.NewFuelGauge(g.Craft, g.arena, g.arena.Width-g.Config.Display.GaugeWidth, g.Config.Display.GaugeWidth).Render(r)
	if g.Outcome.Terminal() {
		r.RenderOutcome(g.Outcome, g.Craft)
	}
	r.Present()
}

// report logs and publishes outcome transitions and fresh floor contacts.
func (g *Game) report(ctx context.Context, prev physics.Outcome, contact physics.Contact) {
	defer func() { g.lastContact = contact }()

	if g.Outcome != prev {
		switch g.Outcome {
		case physics.Crashed:
			g.logger.Info(ctx, "craft crashed",
				"tick", g.CurrentTick,
				"contact", contact.String(),
				"x", g.Craft.Position.X,
				"y", g.Craft.Position.Y,
				"speed", g.Craft.Velocity.Length())
			g.publishCraftEvent(event.CraftCrashed, contact)
		case physics.Won:
			g.logger.Info(ctx, "craft landed in the target zone",
				"tick", g.CurrentTick,
				"x", g.Craft.Position.X,
				"fuel", g.Craft.Fuel)
			g.publishCraftEvent(event.CraftWon, contact)
		}
		return
	}

	if contact == physics.LandingContact && g.lastContact != physics.LandingContact {
		g.logger.Debug(ctx, "craft touched down", "tick", g.CurrentTick, "x", g.Craft.Position.X)
		g.publishCraftEvent(event.CraftLanded, contact)
	}
}

func (g *Game) publishCraftEvent(t event.Type, contact physics.Contact) {
	g.EventBus.Publish(event.NewCraftEvent(t, g, g.CurrentTick, g.Craft.Body, g.Craft.Fuel, contact))
}

// holdEndScreen keeps the final frame up while still honouring quit requests.
func (g *Game) holdEndScreen(ctx context.Context) error {
	delay := time.Duration(g.Config.Display.EndScreenDelay)
	if delay <= 0 {
		return nil
	}

	end := g.clock.Now().Add(delay)
	for g.clock.Now().Before(end) {
		if entity.HasQuit(g.input.PollEvents()) {
			return nil
		}
		next := g.clock.Now().Add(g.interval)
		if next.After(end) {
			next = end
		}
		if err := g.clock.SleepUntil(ctx, next); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) start(ctx context.Context) {
	g.Status = GameStatusActive
	g.logger.Info(ctx, "game started",
		"craft", g.Craft.Type.String(),
		"fuel", g.Craft.StartingFuel,
		"tick_rate", g.Config.Physics.TickRate,
		"walls", len(g.Walls))
	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g})
}

func (g *Game) end(ctx context.Context, quit bool) Result {
	g.Status = GameStatusEnded
	result := g.Result()
	result.Quit = quit

	g.logger.Info(ctx, "game ended",
		"outcome", result.Outcome.String(),
		"quit", quit,
		"ticks", result.Ticks,
		"overruns", result.Overruns,
		"fuel_remaining", result.FuelRemaining)
	g.EventBus.Publish(event.NewGameEndedEvent(g, result.Outcome, quit, result.Ticks))
	return result
}

// Result reports the current state of the round.
func (g *Game) Result() Result {
	return Result{
		Outcome:       g.Outcome,
		Ticks:         g.CurrentTick,
		Overruns:      g.overruns,
		FuelRemaining: g.Craft.Fuel,
	}
}

// TickDuration returns the fixed timestep in seconds.
func (g *Game) TickDuration() float64 {
	return g.dt
}
