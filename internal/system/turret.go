// internal/system/turret.go
package system

import (
	"go-artillery/internal/component"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
)

// TurretSystem charges the player's cannon and runs the enemy autopilots.
type TurretSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             component.Rand
	chargeStep      float64
}

func NewTurretSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng component.Rand, chargeStep float64) *TurretSystem {
	return &TurretSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		chargeStep:      chargeStep,
	}
}

// Update runs once per tick. Enemy shells join the board but do not count
// against the player's score.
func (s *TurretSystem) Update() {
	if s.world.Player != nil {
		s.world.Player.Gain(s.chargeStep)
	}
	for _, enemy := range s.world.Enemies {
		shell := enemy.Update(s.rng)
		if shell == nil {
			continue
		}
		s.world.AddShell(shell)
		s.eventDispatcher.Dispatch(event.Event{Type: event.ShellFired, Data: event.ShellFiredData{Shell: shell}})
	}
}
