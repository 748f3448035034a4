package ecs

import "github.com/pkg/errors"

var (
	// ErrUnknownEntity is returned when an operation targets an entity that was
	// never created or has already been removed
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrStructuralMutation is returned when entities or component kinds are
	// added or removed while a view is being iterated
	ErrStructuralMutation = errors.New("structural mutation during iteration")
)
