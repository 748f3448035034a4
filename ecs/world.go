package ecs

import (
	"github.com/pkg/errors"
)

// World manages all entities and components
type World struct {
	nextEntityID EntityID
	// Live entities in creation order
	entities []EntityID
	alive    map[EntityID]struct{}
	// One store per component kind
	stores map[ComponentID]*store
	// Number of view iterations currently in progress
	iterating int
	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		entities:     make([]EntityID, 0, 64),
		alive:        make(map[EntityID]struct{}),
		stores:       make(map[ComponentID]*store),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world.
// It panics with ErrStructuralMutation when called while a view is being iterated.
func (w *World) CreateEntity() EntityID {
	if w.iterating > 0 {
		panic(errors.Wrap(ErrStructuralMutation, "create entity"))
	}

	id := w.nextEntityID
	w.nextEntityID++
	w.entities = append(w.entities, id)
	w.alive[id] = struct{}{}
	return id
}

// RemoveEntity removes an entity and all its components from the world
func (w *World) RemoveEntity(id EntityID) error {
	if w.iterating > 0 {
		return errors.Wrapf(ErrStructuralMutation, "remove %s", id)
	}
	if !w.Exists(id) {
		return errors.Wrapf(ErrUnknownEntity, "remove %s", id)
	}

	for _, s := range w.stores {
		s.remove(id)
	}
	delete(w.alive, id)
	for i, e := range w.entities {
		if e == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			break
		}
	}
	return nil
}

// Exists reports whether the entity is live
func (w *World) Exists(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// AddComponent attaches a component to an entity, replacing any existing
// component of the same kind
func (w *World) AddComponent(id EntityID, componentID ComponentID, component Component) error {
	if !w.Exists(id) {
		return errors.Wrapf(ErrUnknownEntity, "add %s to %s", componentID, id)
	}

	s, exists := w.stores[componentID]

	// Replacing a value keeps view membership unchanged, so it is allowed mid-iteration
	if w.iterating > 0 && (!exists || !s.has(id)) {
		return errors.Wrapf(ErrStructuralMutation, "add %s to %s", componentID, id)
	}

	if !exists {
		s = newStore()
		w.stores[componentID] = s
	}
	s.set(id, component)
	return nil
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(id EntityID, componentID ComponentID) (Component, bool) {
	s, exists := w.stores[componentID]
	if !exists {
		return nil, false
	}
	c, ok := s.values[id]
	return c, ok
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(id EntityID, componentID ComponentID) bool {
	s, exists := w.stores[componentID]
	return exists && s.has(id)
}

// RemoveComponent detaches a component from an entity. Removing a component the
// entity does not carry is a no-op.
func (w *World) RemoveComponent(id EntityID, componentID ComponentID) error {
	if !w.Exists(id) {
		return errors.Wrapf(ErrUnknownEntity, "remove %s from %s", componentID, id)
	}
	s, exists := w.stores[componentID]
	if !exists || !s.has(id) {
		return nil
	}
	if w.iterating > 0 {
		return errors.Wrapf(ErrStructuralMutation, "remove %s from %s", componentID, id)
	}

	s.remove(id)
	return nil
}

// Get is a typed accessor over GetComponent
func Get[T any](w *World, id EntityID, componentID ComponentID) (T, bool) {
	var zero T
	c, ok := w.GetComponent(id, componentID)
	if !ok {
		return zero, false
	}
	typed, ok := c.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// Entities returns a copy of all live entities in creation order
func (w *World) Entities() []EntityID {
	out := make([]EntityID, len(w.entities))
	copy(out, w.entities)
	return out
}

// Clear removes every entity and component. Entity IDs keep counting up so
// identities from before the clear are never reissued.
func (w *World) Clear() error {
	if w.iterating > 0 {
		return errors.Wrap(ErrStructuralMutation, "clear world")
	}
	w.entities = w.entities[:0]
	w.alive = make(map[EntityID]struct{})
	w.stores = make(map[ComponentID]*store)
	return nil
}

// EventManager returns the world's event manager
func (w *World) EventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}
