package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// Subscription identifies a registered handler so it can be removed later
type Subscription struct {
	eventType EventType
	id        uint64
}

type subscriber struct {
	id      uint64
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventType][]subscriber
	nextID      uint64
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) Subscription {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscriber{id: em.nextID, handler: handler})
	return Subscription{eventType: eventType, id: em.nextID}
}

// Unsubscribe removes a previously registered handler
func (em *EventManager) Unsubscribe(sub Subscription) {
	handlers, exists := em.subscribers[sub.eventType]
	if !exists {
		return
	}

	kept := handlers[:0]
	for _, h := range handlers {
		if h.id != sub.id {
			kept = append(kept, h)
		}
	}

	if len(kept) == 0 {
		delete(em.subscribers, sub.eventType)
	} else {
		em.subscribers[sub.eventType] = kept
	}
}

// Emit dispatches an event to all subscribed handlers in subscription order
func (em *EventManager) Emit(event Event) {
	for _, h := range em.subscribers[event.Type()] {
		h.handler(event)
	}
}
