// internal/component/target.go
package component

import (
	"image/color"

	"go-artillery/pkg/physics"
	"go-artillery/pkg/render"
)

// Kind selects how a target moves and looks.
type Kind int

const (
	KindStatic Kind = iota
	KindButterfly
	KindBird
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindButterfly:
		return "butterfly"
	case KindBird:
		return "bird"
	}
	return "unknown"
}

// Target is something to shoot at.
type Target struct {
	Pos    physics.Vec2
	Radius float64
	Color  color.RGBA
	Kind   Kind
	Sprite render.Sprite // nil draws a plain disc
	Motion Motion
}

// NewTarget builds a target of the given kind; speed is ignored for static ones.
func NewTarget(kind Kind, pos physics.Vec2, radius float64, clr color.RGBA, speed float64) *Target {
	if radius < 1 {
		panic("target radius must be at least 1")
	}
	var motion Motion
	switch kind {
	case KindButterfly:
		motion = NewOscillate(speed)
	case KindBird:
		motion = NewBounce(speed)
	default:
		motion = Still{}
	}
	return &Target{
		Pos:    pos,
		Radius: radius,
		Color:  clr,
		Kind:   kind,
		Motion: motion,
	}
}

func (t *Target) Move(arena physics.Arena) {
	t.Motion.Step(&t.Pos, t.Radius, arena)
}

// CheckCollision reports whether shell s touches or overlaps the target.
func (t *Target) CheckCollision(s *Shell) bool {
	return t.Pos.Dist(s.Pos) <= t.Radius+s.Radius
}
