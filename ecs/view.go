package ecs

import "iter"

// View is a lazy query over entities that carry every included component and
// none of the excluded ones. It is evaluated each time it is iterated.
//
// Iteration follows the insertion order of the smallest included store, so
// repeated iteration over an unchanged world yields the same sequence.
// While iterating, component values may be mutated or replaced, but creating
// or removing entities or component kinds fails with ErrStructuralMutation.
type View struct {
	world   *World
	include []ComponentID
	exclude []ComponentID
}

// View creates a view over entities carrying all of the given components
func (w *World) View(include ...ComponentID) *View {
	return &View{
		world:   w,
		include: append([]ComponentID(nil), include...),
	}
}

// Exclude filters out entities carrying any of the given components
func (v *View) Exclude(exclude ...ComponentID) *View {
	v.exclude = append(v.exclude, exclude...)
	return v
}

// Entities returns the matching entities as a sequence
func (v *View) Entities() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		candidates, ok := v.candidates()
		if !ok {
			return
		}

		v.world.iterating++
		defer func() { v.world.iterating-- }()

		for _, id := range candidates {
			if !v.matches(id) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// Each calls fn for every matching entity
func (v *View) Each(fn func(id EntityID)) {
	for id := range v.Entities() {
		fn(id)
	}
}

// Count returns the number of matching entities
func (v *View) Count() int {
	n := 0
	for range v.Entities() {
		n++
	}
	return n
}

// Contains reports whether the entity currently matches the view
func (v *View) Contains(id EntityID) bool {
	return v.world.Exists(id) && v.matches(id)
}

// candidates picks the smallest included store to drive iteration
func (v *View) candidates() ([]EntityID, bool) {
	w := v.world
	if len(v.include) == 0 {
		return w.entities, true
	}

	var driver *store
	for _, cid := range v.include {
		s, exists := w.stores[cid]
		if !exists {
			return nil, false
		}
		if driver == nil || s.count() < driver.count() {
			driver = s
		}
	}
	return driver.dense, true
}

func (v *View) matches(id EntityID) bool {
	for _, cid := range v.include {
		if !v.world.HasComponent(id, cid) {
			return false
		}
	}
	for _, cid := range v.exclude {
		if v.world.HasComponent(id, cid) {
			return false
		}
	}
	return true
}
