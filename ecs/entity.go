package ecs

import "strconv"

// EntityID is a unique identifier for an entity. Zero is never issued.
type EntityID uint64

// NoEntity is the zero EntityID, never returned by CreateEntity
const NoEntity EntityID = 0

func (id EntityID) String() string {
	return "entity#" + strconv.FormatUint(uint64(id), 10)
}
