// pkg/physics/arena.go
package physics

import "math"

const (
	// DefaultReflOrt damps the velocity component normal to the wall that was hit.
	DefaultReflOrt = 0.8
	// DefaultReflPar damps the velocity component along the wall that was hit.
	DefaultReflPar = 0.9
)

// Arena is the rectangular playfield [0, Width] x [0, Height] with inelastic walls.
type Arena struct {
	Width, Height float64
	ReflOrt       float64
	ReflPar       float64
}

func DefaultArena(width, height float64) Arena {
	return Arena{
		Width:   width,
		Height:  height,
		ReflOrt: DefaultReflOrt,
		ReflPar: DefaultReflPar,
	}
}

func (a Arena) size(i int) float64 {
	if i == 0 {
		return a.Width
	}
	return a.Height
}

// ApplyGravity accelerates vel downwards by g.
func ApplyGravity(vel *Vec2, g float64) {
	vel.Y += g
}

// Rebound keeps a disc of radius r inside the arena. For each axis, X first,
// a disc past a wall is clamped back onto it, the normal velocity is reversed
// and damped by ReflOrt, and the other component is damped by ReflPar.
// Velocity changes are truncated toward zero so velocities stay integral.
// The Y pass sees the X pass's result, so a corner hit damps both twice.
func (a Arena) Rebound(pos, vel *Vec2, r float64) {
	for i := 0; i < 2; i++ {
		p := pos.axis(i)
		v := vel.axis(i)
		cross := vel.axis(1 - i)
		upper := a.size(i) - r

		switch {
		case *p < r:
			*p = r
		case *p > upper:
			*p = upper
		default:
			continue
		}
		*v = -math.Trunc(*v * a.ReflOrt)
		*cross = math.Trunc(*cross * a.ReflPar)
	}
}

// Contains reports whether a disc of radius r centred at pos lies fully inside.
func (a Arena) Contains(pos Vec2, r float64) bool {
	return pos.X >= r && pos.X <= a.Width-r && pos.Y >= r && pos.Y <= a.Height-r
}
