package ecs

import "fmt"

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is the base interface for all components
type Component interface{}

var componentNames = map[ComponentID]string{}

// RegisterComponentName attaches a human readable name to a component ID for logs and errors
func RegisterComponentName(id ComponentID, name string) {
	componentNames[id] = name
}

// String returns the registered name of the component kind
func (id ComponentID) String() string {
	if name, ok := componentNames[id]; ok {
		return name
	}
	return fmt.Sprintf("component(%d)", uint(id))
}
