package core

// Event represents a simulation event
type Event struct {
	Type    EventType
	Source  EntityID
	Payload interface{}
}

type EventType uint16

const (
	EvtActorSpawned EventType = iota
	EvtActorRemoved
	EvtActorDamaged
	EvtActorDied
	EvtAbilityUsed
	EvtCollision
)

// DamagePayload accompanies EvtActorDamaged
type DamagePayload struct {
	Amount int
	Health int
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch. A nil bus drops the event.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes the events queued so far. Events emitted by handlers
// during dispatch stay queued for the next call.
func (eb *EventBus) Dispatch() {
	queue := eb.queue
	eb.queue = nil
	for _, e := range queue {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
}
