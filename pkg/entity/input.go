package entity

import (
	"github.com/opd-ai/go-lander/pkg/physics"
)

// Key is a control key the game reads every tick.
type Key int

const (
	KeyUp Key = iota
	KeyLeft
	KeyRight
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// InputEventType distinguishes the window events the game cares about.
type InputEventType int

const (
	EventOther InputEventType = iota
	EventQuit
)

// InputEvent is a window/system event drained once per tick.
type InputEvent struct {
	Type InputEventType
}

// InputSource reports raw key states and pending window events.
type InputSource interface {
	// PollEvents drains all pending events without blocking.
	PollEvents() []InputEvent
	// KeyState reports whether k is currently held.
	KeyState(k Key) bool
}

// ReadControls samples the control keys from src.
func ReadControls(src InputSource) physics.ControlInput {
	return physics.ControlInput{
		Up:    src.KeyState(KeyUp),
		Left:  src.KeyState(KeyLeft),
		Right: src.KeyState(KeyRight),
	}
}

// HasQuit reports whether events contains a quit request.
func HasQuit(events []InputEvent) bool {
	for _, ev := range events {
		if ev.Type == EventQuit {
			return true
		}
	}
	return false
}
