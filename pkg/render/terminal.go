package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/physics"
)

// DefaultKeyHold is how long a key counts as held after its last press or repeat.
// Terminals report no key releases, so holding a key is inferred from auto-repeat.
const DefaultKeyHold = 250 * time.Millisecond

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorGray)
	craftStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	boomStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	wonStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	lostStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
)

// TerminalRenderer draws the arena scaled onto a tcell screen and doubles as the
// game's input source.
type TerminalRenderer struct {
	screen tcell.Screen
	arena  physics.Arena
	width  int
	height int

	events   chan tcell.Event
	hold     time.Duration
	now      func() time.Time
	lastDown map[entity.Key]time.Time
}

// TerminalOption customises a TerminalRenderer.
type TerminalOption func(*TerminalRenderer)

// WithKeyHold changes how long a key press is treated as held.
func WithKeyHold(d time.Duration) TerminalOption {
	return func(r *TerminalRenderer) { r.hold = d }
}

// WithNow replaces the time source used for key holds.
func WithNow(now func() time.Time) TerminalOption {
	return func(r *TerminalRenderer) { r.now = now }
}

// NewTerminal opens the controlling terminal.
func NewTerminal(arena physics.Arena, opts ...TerminalOption) (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return NewTerminalRenderer(screen, arena, opts...)
}

// NewTerminalRenderer initialises screen and starts reading its events.
// Close releases the screen.
func NewTerminalRenderer(screen tcell.Screen, arena physics.Arena, opts ...TerminalOption) (*TerminalRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	r := &TerminalRenderer{
		screen:   screen,
		arena:    arena,
		events:   make(chan tcell.Event, 100),
		hold:     DefaultKeyHold,
		now:      time.Now,
		lastDown: make(map[entity.Key]time.Time),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.width, r.height = screen.Size()

	go r.pollLoop()
	return r, nil
}

// pollLoop forwards screen events until the screen is finalised.
func (r *TerminalRenderer) pollLoop() {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case r.events <- ev:
		default:
			// Drop events while the game is not draining; key state is time based.
		}
	}
}

// Close restores the terminal.
func (r *TerminalRenderer) Close() {
	r.screen.Fini()
}

// PollEvents implements entity.InputSource.
func (r *TerminalRenderer) PollEvents() []entity.InputEvent {
	var out []entity.InputEvent
	for {
		select {
		case ev := <-r.events:
			if r.handle(ev) {
				out = append(out, entity.InputEvent{Type: entity.EventQuit})
			}
		default:
			return out
		}
	}
}

// KeyState implements entity.InputSource.
func (r *TerminalRenderer) KeyState(k entity.Key) bool {
	t, ok := r.lastDown[k]
	if !ok {
		return false
	}
	return r.now().Sub(t) <= r.hold
}

// handle applies one terminal event and reports whether it asks to quit.
func (r *TerminalRenderer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			r.press(entity.KeyUp)
		case tcell.KeyLeft:
			r.press(entity.KeyLeft)
		case tcell.KeyRight:
			r.press(entity.KeyRight)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'w', 'W':
				r.press(entity.KeyUp)
			case 'a', 'A':
				r.press(entity.KeyLeft)
			case 'd', 'D':
				r.press(entity.KeyRight)
			}
		}
	case *tcell.EventResize:
		r.screen.Sync()
		r.width, r.height = r.screen.Size()
	}
	return false
}

func (r *TerminalRenderer) press(k entity.Key) {
	r.lastDown[k] = r.now()
	// Only one lateral key is reported as held at a time.
	switch k {
	case entity.KeyLeft:
		delete(r.lastDown, entity.KeyRight)
	case entity.KeyRight:
		delete(r.lastDown, entity.KeyLeft)
	}
}

// toCell maps an arena point to a screen cell.
func (r *TerminalRenderer) toCell(x, y float64) (int, int) {
	return int(x * float64(r.width) / r.arena.Width), int(y * float64(r.height) / r.arena.Height)
}

// fill paints every cell covered by rect, at least one cell.
func (r *TerminalRenderer) fill(rect physics.Rect, ch rune, style tcell.Style) {
	x0, y0 := r.toCell(rect.X, rect.Y)
	x1, y1 := r.toCell(rect.Right(), rect.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.set(x, y, ch, style)
		}
	}
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.set(x+i, y, ch, style)
	}
}

// Clear implements entity.Renderer.
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// Present implements entity.Renderer.
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// RenderWall implements entity.Renderer.
func (r *TerminalRenderer) RenderWall(wall *entity.Wall) {
	r.fill(wall.Bounds(), '█', wallStyle)
}

// RenderCraft implements entity.Renderer.
func (r *TerminalRenderer) RenderCraft(craft *entity.Craft) {
	glyph := 'H'
	if craft.Type == entity.Rocket {
		glyph = 'A'
	}
	r.fill(craft.Bounds(), glyph, craftStyle)
}

// RenderParticle implements entity.Renderer. Older particles are drawn darker.
func (r *TerminalRenderer) RenderParticle(p entity.Particle) {
	a := int32(p.Alpha)
	x, y := r.toCell(p.Position.X, p.Position.Y)
	r.set(x, y, '·', tcell.StyleDefault.Foreground(tcell.NewRGBColor(a, a, a)))
}

// RenderFuelGauge implements entity.Renderer.
func (r *TerminalRenderer) RenderFuelGauge(g entity.FuelGauge) {
	if g.Rect.H <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(GaugeColor(g.Level))
	r.fill(g.Rect, ' ', style)
}

// RenderOutcome implements entity.Renderer.
func (r *TerminalRenderer) RenderOutcome(outcome physics.Outcome, craft *entity.Craft) {
	switch outcome {
	case physics.Crashed:
		if craft != nil {
			r.fill(entity.ExplosionRect(craft), '*', boomStyle)
		}
		r.banner(" CRASHED ", lostStyle)
	case physics.Won:
		r.banner(" LANDED! ", wonStyle)
	}
}

func (r *TerminalRenderer) banner(msg string, style tcell.Style) {
	n := len([]rune(msg))
	r.text(r.width/2-n/2, r.height/2, msg, style)
}

// GaugeColor maps a fuel band to its colour.
func GaugeColor(level entity.GaugeLevel) tcell.Color {
	switch level {
	case entity.GaugeFull:
		return tcell.ColorGreen
	case entity.GaugeMedium:
		return tcell.ColorYellow
	case entity.GaugeLow:
		return tcell.ColorOrange
	default:
		return tcell.ColorRed
	}
}
