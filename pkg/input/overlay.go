package input

import "github.com/opd-ai/go-lander/pkg/entity"

// Overlay takes held keys from Keys while still honouring quit requests from
// Window, so a scripted run can be closed like an interactive one.
type Overlay struct {
	Keys   entity.InputSource
	Window entity.InputSource
}

// PollEvents implements entity.InputSource. Both sources are drained.
func (o Overlay) PollEvents() []entity.InputEvent {
	events := o.Keys.PollEvents()
	if o.Window != nil {
		events = append(events, o.Window.PollEvents()...)
	}
	return events
}

// KeyState implements entity.InputSource.
func (o Overlay) KeyState(k entity.Key) bool {
	return o.Keys.KeyState(k)
}
