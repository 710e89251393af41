package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/physics"
)

var testArena = physics.Arena{Width: 640, Height: 480}

// newSimTerminal returns a renderer on a 64x24 simulation screen, one cell per
// 10x20 arena pixels.
func newSimTerminal(t *testing.T, opts ...TerminalOption) (*TerminalRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	r, err := NewTerminalRenderer(screen, testArena, opts...)
	if err != nil {
		t.Fatalf("NewTerminalRenderer failed: %v", err)
	}
	t.Cleanup(r.Close)

	screen.SetSize(64, 24)
	r.handle(tcell.NewEventResize(64, 24))
	return r, screen
}

func cellRune(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func TestTerminalRenderer_Resize(t *testing.T) {
	r, _ := newSimTerminal(t)
	if r.width != 64 || r.height != 24 {
		t.Errorf("size = %dx%d, want 64x24", r.width, r.height)
	}
	if x, y := r.toCell(320, 240); x != 32 || y != 12 {
		t.Errorf("arena centre maps to (%d,%d), want (32,12)", x, y)
	}
}

func TestTerminalRenderer_DrawsFrame(t *testing.T) {
	r, screen := newSimTerminal(t)
	craft := entity.NewCraft(entity.Helicopter, physics.Vector2D{X: 100, Y: 200}, physics.Size{}, 5)

	r.Clear()
	r.RenderWall(entity.NewWall(200, 280, 40, 200))
	r.RenderParticle(entity.Particle{Position: physics.Vector2D{X: 125, Y: 230}, Alpha: 255})
	r.RenderCraft(craft)
	r.RenderFuelGauge(entity.NewFuelGauge(craft, testArena, 630, 10))
	r.Present()

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"craft top-left", 10, 10, 'H'},
		{"craft bottom-right", 18, 11, 'H'},
		{"right of craft", 19, 10, ' '},
		{"wall top", 20, 14, '█'},
		{"wall bottom", 23, 23, '█'},
		{"above wall", 20, 13, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellRune(screen, tt.x, tt.y); got != tt.want {
				t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}

	_, _, style, _ := screen.GetContent(63, 23)
	if _, bg, _ := style.Decompose(); bg != tcell.ColorGreen {
		t.Errorf("full gauge background = %v, want green", bg)
	}
}

func TestTerminalRenderer_ParticleUnderCraft(t *testing.T) {
	r, screen := newSimTerminal(t)

	r.Clear()
	r.RenderParticle(entity.Particle{Position: physics.Vector2D{X: 125, Y: 230}, Alpha: 55})

	if got := cellRune(screen, 12, 11); got != '·' {
		t.Errorf("particle cell = %q", got)
	}
}

func TestTerminalRenderer_Outcome(t *testing.T) {
	craft := entity.NewCraft(entity.Rocket, physics.Vector2D{X: 300, Y: 100}, physics.Size{}, 5)

	t.Run("crash", func(t *testing.T) {
		r, screen := newSimTerminal(t)
		r.Clear()
		r.RenderOutcome(physics.Crashed, craft)

		// Explosion centred on the craft: 72x60 around (332,164).
		if got := cellRune(screen, 30, 7); got != '*' {
			t.Errorf("explosion cell = %q, want '*'", got)
		}
		if got := cellRune(screen, 29, 12); got != 'C' {
			t.Errorf("banner cell = %q, want 'C'", got)
		}
	})

	t.Run("won", func(t *testing.T) {
		r, screen := newSimTerminal(t)
		r.Clear()
		r.RenderOutcome(physics.Won, craft)

		if got := cellRune(screen, 29, 12); got != 'L' {
			t.Errorf("banner cell = %q, want 'L'", got)
		}
	})
}

func TestTerminalRenderer_KeyHold(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r, _ := newSimTerminal(t, WithKeyHold(100*time.Millisecond), WithNow(func() time.Time { return now }))

	if r.KeyState(entity.KeyUp) {
		t.Fatal("key held before any press")
	}

	r.handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if !r.KeyState(entity.KeyUp) {
		t.Error("up not held right after the press")
	}

	now = now.Add(100 * time.Millisecond)
	if !r.KeyState(entity.KeyUp) {
		t.Error("up released before the hold window ended")
	}

	now = now.Add(time.Millisecond)
	if r.KeyState(entity.KeyUp) {
		t.Error("up still held after the hold window")
	}
}

func TestTerminalRenderer_Keys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		key  entity.Key
		quit bool
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), entity.KeyUp, false},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), entity.KeyUp, false},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), entity.KeyLeft, false},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), entity.KeyLeft, false},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), entity.KeyRight, false},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), entity.KeyRight, false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), -1, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), -1, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newSimTerminal(t)

			if quit := r.handle(tt.ev); quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
			if tt.key >= 0 && !r.KeyState(tt.key) {
				t.Errorf("%v not held", tt.key)
			}
		})
	}
}

func TestTerminalRenderer_LateralKeysExclusive(t *testing.T) {
	r, _ := newSimTerminal(t)

	r.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	r.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	if r.KeyState(entity.KeyLeft) || !r.KeyState(entity.KeyRight) {
		t.Errorf("left=%v right=%v, want only right held", r.KeyState(entity.KeyLeft), r.KeyState(entity.KeyRight))
	}
}

func TestTerminalRenderer_PollEventsDrainsQueue(t *testing.T) {
	r, _ := newSimTerminal(t)
	r.PollEvents()

	r.events <- tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	r.events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	events := r.PollEvents()
	if !entity.HasQuit(events) {
		t.Errorf("events = %v, want a quit", events)
	}
	if !r.KeyState(entity.KeyUp) {
		t.Error("up press in the same batch was lost")
	}
	if more := r.PollEvents(); len(more) != 0 {
		t.Errorf("second poll returned %v, want nothing", more)
	}
}

func TestGaugeColor(t *testing.T) {
	tests := []struct {
		level entity.GaugeLevel
		want  tcell.Color
	}{
		{entity.GaugeFull, tcell.ColorGreen},
		{entity.GaugeMedium, tcell.ColorYellow},
		{entity.GaugeLow, tcell.ColorOrange},
		{entity.GaugeCritical, tcell.ColorRed},
	}
	for _, tt := range tests {
		if got := GaugeColor(tt.level); got != tt.want {
			t.Errorf("GaugeColor(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
