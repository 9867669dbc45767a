// internal/component/projectile.go
package component

import (
	"image/color"

	"go-artillery/pkg/physics"
)

// restSpeed is the speed below which a shell lying on the floor settles.
const restSpeed = 2.0

// Owner identifies who fired a shell: OwnerPlayer or an enemy index.
type Owner int

const OwnerPlayer Owner = -1

func (o Owner) IsPlayer() bool {
	return o == OwnerPlayer
}

// Shell is a ball in flight. Its velocity only ever holds whole numbers.
type Shell struct {
	Pos    physics.Vec2
	Vel    physics.Vec2
	Radius float64
	Color  color.RGBA
	Alive  bool
	Owner  Owner
}

func NewShell(pos, vel physics.Vec2, radius float64, clr color.RGBA) *Shell {
	if radius <= 0 {
		panic("shell radius must be positive")
	}
	return &Shell{
		Pos:    pos,
		Vel:    vel,
		Radius: radius,
		Color:  clr,
		Alive:  true,
		Owner:  OwnerPlayer,
	}
}

// Move advances the shell by dt under gravity, bounces it off the arena walls
// and marks it dead once it has come to rest near the floor.
func (s *Shell) Move(dt, gravity float64, arena physics.Arena) {
	physics.ApplyGravity(&s.Vel, gravity)
	s.Pos = s.Pos.Add(s.Vel.Scale(dt))
	arena.Rebound(&s.Pos, &s.Vel, s.Radius)

	if s.Vel.Len2() < restSpeed*restSpeed && s.Pos.Y > arena.Height-2*s.Radius {
		s.Alive = false
	}
}
