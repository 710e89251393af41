// pkg/event/event.go
package event

import (
	"sort"
	"sync"

	"github.com/opd-ai/go-lander/pkg/physics"
)

// Type represents the type of event
type Type string

// Game event types
const (
	GameStarted   Type = "game_started"
	GameEnded     Type = "game_ended"
	CraftLanded   Type = "craft_landed"
	CraftCrashed  Type = "craft_crashed"
	CraftWon      Type = "craft_won"
	FuelDepleted  Type = "fuel_depleted"
	QuitRequested Type = "quit_requested"
	TickOverrun   Type = "tick_overrun"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed later.
type Subscription struct {
	bus       *Bus
	id        uint64
	eventType Type
}

// Cancel removes the handler from the bus. Calling it more than once is a no-op.
func (s *Subscription) Cancel() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.remove(s.eventType, s.id)
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type]map[uint64]Handler
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type]map[uint64]Handler),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[uint64]Handler)
	}
	id := b.nextID
	b.nextID++
	b.handlers[eventType][id] = handler

	return &Subscription{bus: b, id: id, eventType: eventType}
}

func (b *Bus) remove(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers, ok := b.handlers[eventType]
	if !ok {
		return
	}
	delete(handlers, id)
	if len(handlers) == 0 {
		delete(b.handlers, eventType)
	}
}

// Publish calls every handler subscribed to the event's type, in subscription order.
// Handlers run on the publisher's goroutine.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	registered := b.handlers[event.GetType()]
	ids := make([]uint64, 0, len(registered))
	for id := range registered {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, registered[id])
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// CraftEvent carries the craft's state at the moment something happened to it.
type CraftEvent struct {
	BaseEvent
	Tick     uint64
	Position physics.Vector2D
	Velocity physics.Vector2D
	Fuel     float64
	Contact  physics.Contact
}

// NewCraftEvent creates a new craft event
func NewCraftEvent(eventType Type, source interface{}, tick uint64, body physics.Body, fuel float64, contact physics.Contact) *CraftEvent {
	return &CraftEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Tick:     tick,
		Position: body.Position,
		Velocity: body.Velocity,
		Fuel:     fuel,
		Contact:  contact,
	}
}

// GameEndedEvent reports how a round finished.
type GameEndedEvent struct {
	BaseEvent
	Outcome physics.Outcome
	Quit    bool
	Ticks   uint64
}

// NewGameEndedEvent creates a new game ended event
func NewGameEndedEvent(source interface{}, outcome physics.Outcome, quit bool, ticks uint64) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: BaseEvent{
			EventType: GameEnded,
			Source:    source,
		},
		Outcome: outcome,
		Quit:    quit,
		Ticks:   ticks,
	}
}
