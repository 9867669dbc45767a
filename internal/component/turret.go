// internal/component/turret.go
package component

import (
	"image/color"
	"math"

	"go-artillery/pkg/physics"
	"go-artillery/pkg/utils"
)

// CannonConfig collects the construction parameters of a Cannon.
type CannonConfig struct {
	Pos         physics.Vec2
	MinPower    float64
	MaxPower    float64
	Color       color.RGBA
	ShellRadius float64
	// Margin keeps the cannon this far from both side walls of an arena
	// ArenaWidth pixels wide.
	Margin     float64
	ArenaWidth float64
	Owner      Owner
}

// Cannon is a tank that aims, charges and fires shells.
// Power always stays within [MinPower, MaxPower].
type Cannon struct {
	Pos         physics.Vec2
	Angle       float64 // radians, screen coordinates
	Power       float64
	MinPower    float64
	MaxPower    float64
	Active      bool // charging
	Color       color.RGBA
	ShellRadius float64
	Owner       Owner

	minX, maxX float64
}

func NewCannon(cfg CannonConfig) *Cannon {
	if cfg.MinPower > cfg.MaxPower {
		panic("cannon power range is empty")
	}
	c := &Cannon{
		Pos:         cfg.Pos,
		Power:       cfg.MinPower,
		MinPower:    cfg.MinPower,
		MaxPower:    cfg.MaxPower,
		Color:       cfg.Color,
		ShellRadius: cfg.ShellRadius,
		Owner:       cfg.Owner,
		minX:        cfg.Margin,
		maxX:        cfg.ArenaWidth - cfg.Margin,
	}
	c.Pos.X = utils.Clamp(c.Pos.X, c.minX, c.maxX)
	return c
}

// Activate starts charging.
func (c *Cannon) Activate() {
	c.Active = true
}

// Gain adds inc to the charge while charging, never past MaxPower.
func (c *Cannon) Gain(inc float64) {
	if c.Active && c.Power < c.MaxPower {
		c.Power = math.Min(c.Power+inc, c.MaxPower)
	}
}

// Fire launches a shell along the barrel with the current charge and resets
// the charge. Firing without charging yields a MinPower shot.
func (c *Cannon) Fire(paint color.RGBA) *Shell {
	vel := physics.Polar(c.Power, c.Angle).Trunc()
	shell := NewShell(c.Pos, vel, c.ShellRadius, paint)
	shell.Owner = c.Owner
	c.Power = c.MinPower
	c.Active = false
	return shell
}

// SetAim points the barrel at target.
func (c *Cannon) SetAim(target physics.Vec2) {
	c.Angle = math.Atan2(target.Y-c.Pos.Y, target.X-c.Pos.X)
}

// MoveBy shifts the cannon horizontally, keeping it on its track.
func (c *Cannon) MoveBy(dx float64) {
	c.Pos.X = utils.Clamp(c.Pos.X+dx, c.minX, c.maxX)
}
