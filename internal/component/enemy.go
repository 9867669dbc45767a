// internal/component/enemy.go
package component

import (
	"math"

	"go-artillery/pkg/physics"
	"go-artillery/pkg/render"
)

// Rand is the random source components draw decisions from.
type Rand interface {
	Intn(n int) int
	Uniform(lo, hi float64) float64
}

// Autopilot drives an enemy cannon: it shuffles back and forth every
// Threshold ticks and fires at random into the quarter-circle ahead.
type Autopilot struct {
	Threshold   int     // ticks between patrol steps
	Step        float64 // patrol step in pixels
	FirePercent int     // chance to fire per tick, in percent
	Reach       float64 // distance of the aim point

	counter   int
	direction int
}

func NewAutopilot(threshold int, step float64, firePercent int, reach float64) Autopilot {
	if threshold <= 0 {
		panic("autopilot threshold must be positive")
	}
	return Autopilot{
		Threshold:   threshold,
		Step:        step,
		FirePercent: firePercent,
		Reach:       reach,
		direction:   1,
	}
}

// Direction is +1 when the last patrol step went right, -1 when it went left.
func (a *Autopilot) Direction() int {
	return a.direction
}

// Enemy is a cannon steered by an Autopilot instead of player input.
type Enemy struct {
	*Cannon
	Pilot Autopilot
}

func NewEnemy(cannon *Cannon, pilot Autopilot) *Enemy {
	return &Enemy{Cannon: cannon, Pilot: pilot}
}

// Update runs one tick of the patrol and fire policy. It returns the shell
// fired this tick, or nil.
func (e *Enemy) Update(rng Rand) *Shell {
	p := &e.Pilot
	p.counter++
	if p.counter >= p.Threshold {
		p.counter = 0
		p.direction = -p.direction
		e.MoveBy(float64(p.direction) * p.Step)
	}

	if rng.Intn(100) >= p.FirePercent {
		return nil
	}
	theta := rng.Uniform(-math.Pi/4, math.Pi/4)
	e.SetAim(e.Pos.Add(physics.Polar(p.Reach, theta)))
	e.Activate()
	return e.Fire(render.RandColor(rng))
}
