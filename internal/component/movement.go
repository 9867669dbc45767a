// internal/component/movement.go
package component

import "go-artillery/pkg/physics"

// Motion moves a target of the given radius one tick inside the arena.
// Implementations keep their own direction state.
type Motion interface {
	Step(pos *physics.Vec2, radius float64, arena physics.Arena)
}

// Still never moves.
type Still struct{}

func (Still) Step(*physics.Vec2, float64, physics.Arena) {}

// Oscillate flies left and right, turning round past either side wall.
type Oscillate struct {
	Speed float64
	dir   float64
}

func NewOscillate(speed float64) *Oscillate {
	return &Oscillate{Speed: speed, dir: 1}
}

func (m *Oscillate) Step(pos *physics.Vec2, radius float64, arena physics.Arena) {
	pos.X += m.dir * m.Speed
	if pos.X < radius || pos.X > arena.Width-radius {
		m.dir = -m.dir
	}
}

// Bounce flies diagonally; each axis turns round independently at its walls.
type Bounce struct {
	Speed  float64
	dx, dy float64
}

func NewBounce(speed float64) *Bounce {
	return &Bounce{Speed: speed, dx: 1, dy: 1}
}

func (m *Bounce) Step(pos *physics.Vec2, radius float64, arena physics.Arena) {
	pos.X += m.dx * m.Speed
	pos.Y += m.dy * m.Speed
	if pos.X < radius || pos.X > arena.Width-radius {
		m.dx = -m.dx
	}
	if pos.Y < radius || pos.Y > arena.Height-radius {
		m.dy = -m.dy
	}
}
