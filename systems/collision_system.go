package systems

import (
	"go.uber.org/zap"

	"ebiten-tilecollide/components"
	"ebiten-tilecollide/ecs"
)

// CollisionCounter counts every overlap detected across frames
type CollisionCounter struct {
	total uint64
}

// Total returns the number of overlaps detected so far
func (c *CollisionCounter) Total() uint64 {
	return c.total
}

func (c *CollisionCounter) increment() uint64 {
	c.total++
	return c.total
}

// CollisionReport lists the collisions found during one frame
type CollisionReport struct {
	Events   []CollisionEvent
	Detected int    // Overlapping pairs this frame
	Total    uint64 // Counter value after this frame
}

// CollisionSystem tests every player collider against every non-player collider
type CollisionSystem struct {
	logger *zap.Logger
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(logger *zap.Logger) *CollisionSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollisionSystem{logger: logger}
}

// Update detects overlaps, counts them on counter and emits one event per overlapping pair.
// Component data is only read. Events are emitted after iteration completes.
func (s *CollisionSystem) Update(world *ecs.World, counter *CollisionCounter) CollisionReport {
	players := world.View(components.Collider, components.Player)
	others := world.View(components.Collider).Exclude(components.Player)

	var report CollisionReport
	players.Each(func(p ecs.EntityID) {
		pc, _ := ecs.Get[*components.ColliderComponent](world, p, components.Collider)
		if pc == nil {
			return
		}

		others.Each(func(o ecs.EntityID) {
			if o == p {
				return
			}
			oc, _ := ecs.Get[*components.ColliderComponent](world, o, components.Collider)
			if oc == nil || !pc.Bounds.Overlaps(oc.Bounds) {
				return
			}

			event, ok := s.dispatch(world, p, o, oc.Category)
			if !ok {
				return
			}
			event.Count = counter.increment()
			report.Events = append(report.Events, event)
		})
	})

	report.Detected = len(report.Events)
	report.Total = counter.Total()

	for _, e := range report.Events {
		s.logger.Debug(e.Message(), zap.Uint64("count", e.Count), zap.Stringer("other", e.Other))
		world.EmitEvent(e)
	}
	return report
}

func (s *CollisionSystem) dispatch(world *ecs.World, p, o ecs.EntityID, category components.CollisionCategory) (CollisionEvent, bool) {
	event := CollisionEvent{Player: p, Other: o}

	switch category {
	case components.CategoryPlayer:
		event.Kind = EventPlayerPlayer
	case components.CategoryEnemy:
		event.Kind = EventPlayerEnemy
		if enemy, ok := ecs.Get[*components.EnemyComponent](world, o, components.Enemy); ok {
			event.EnemyName = enemy.Name
			event.Damage = enemy.Damage
		} else {
			s.logger.Warn("enemy collider without enemy component", zap.Stringer("entity", o))
		}
	case components.CategoryWall:
		event.Kind = EventPlayerWall
	default:
		return event, false
	}
	return event, true
}
