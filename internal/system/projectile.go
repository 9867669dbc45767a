// internal/system/projectile.go
package system

import (
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
)

// ProjectileSystem flies shells and clears away the ones that have settled.
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	timeStep        float64
	gravity         float64
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher, timeStep, gravity float64) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		timeStep:        timeStep,
		gravity:         gravity,
	}
}

// Update moves every shell one tick.
func (s *ProjectileSystem) Update() {
	for _, shell := range s.world.Shells {
		shell.Move(s.timeStep, s.gravity, s.world.Arena)
	}
}

// Sweep removes dead shells, keeping the survivors in firing order, and
// returns how many were removed.
func (s *ProjectileSystem) Sweep() int {
	shells := s.world.Shells
	kept := shells[:0]
	for _, shell := range shells {
		if shell.Alive {
			kept = append(kept, shell)
			continue
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.ShellSettled, Data: shell})
	}
	removed := len(shells) - len(kept)
	clear(shells[len(kept):])
	s.world.Shells = kept
	return removed
}
