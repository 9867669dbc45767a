// internal/system/movement.go
package system

import "go-artillery/internal/entity"

// MovementSystem advances every target along its motion pattern.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update() {
	for _, target := range s.world.Targets {
		target.Move(s.world.Arena)
	}
}
