// pkg/render/engo/input.go
package engo

import (
	"sync"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-lander/pkg/entity"
)

// Button names registered with engo.Input.
const (
	ButtonThrust = "thrust"
	ButtonLeft   = "left"
	ButtonRight  = "right"
	ButtonQuit   = "quit"
)

// SetupInputBindings registers the lander's buttons. It must run after engo has
// started, from the scene's Setup.
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonThrust, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape, engo.KeyQ)
}

// InputState is the key snapshot shared between the engo main loop, which
// writes it, and the game goroutine, which reads it as an entity.InputSource.
type InputState struct {
	mu    sync.Mutex
	up    bool
	left  bool
	right bool
	quit  bool
}

// NewInputState creates a state with nothing held.
func NewInputState() *InputState {
	return &InputState{}
}

// Set records which movement keys are down.
func (s *InputState) Set(up, left, right bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.up, s.left, s.right = up, left, right
}

// RequestQuit makes every following poll report a quit.
func (s *InputState) RequestQuit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quit = true
}

// PollEvents implements entity.InputSource.
func (s *InputState) PollEvents() []entity.InputEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.quit {
		return nil
	}
	return []entity.InputEvent{{Type: entity.EventQuit}}
}

// KeyState implements entity.InputSource.
func (s *InputState) KeyState(k entity.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch k {
	case entity.KeyUp:
		return s.up
	case entity.KeyLeft:
		return s.left
	case entity.KeyRight:
		return s.right
	default:
		return false
	}
}

// InputSystem copies engo's button state into an InputState every frame.
type InputSystem struct {
	state *InputState
}

// NewInputSystem creates an input system feeding state.
func NewInputSystem(state *InputState) *InputSystem {
	return &InputSystem{state: state}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(ecs.BasicEntity) {}

// Update satisfies the ecs.System interface
func (is *InputSystem) Update(dt float32) {
	is.state.Set(
		engo.Input.Button(ButtonThrust).Down(),
		engo.Input.Button(ButtonLeft).Down(),
		engo.Input.Button(ButtonRight).Down(),
	)
	if engo.Input.Button(ButtonQuit).JustPressed() {
		is.state.RequestQuit()
	}
}
