// internal/system/render.go
package system

import (
	"math"

	"go-artillery/internal/component"
	"go-artillery/internal/entity"
	"go-artillery/internal/ui"
	"go-artillery/pkg/physics"
	"go-artillery/pkg/render"
)

const (
	barrelHalfWidth = 5
	wheelRadius     = 7
)

// RenderSystem draws the board through a Canvas.
type RenderSystem struct {
	world *entity.World
	panel *ui.ScorePanel
}

func NewRenderSystem(world *entity.World, panel *ui.ScorePanel) *RenderSystem {
	return &RenderSystem{world: world, panel: panel}
}

// Draw paints shells, targets, the player, the score and the enemies, in
// that order.
func (s *RenderSystem) Draw(c render.Canvas) {
	for _, shell := range s.world.Shells {
		c.FillCircle(shell.Pos, shell.Radius, shell.Color)
	}
	for _, target := range s.world.Targets {
		drawTarget(c, target)
	}
	if s.world.Player != nil {
		drawCannon(c, s.world.Player)
	}
	if s.panel != nil {
		s.panel.Draw(c, s.world.Score)
	}
	for _, enemy := range s.world.Enemies {
		drawCannon(c, enemy.Cannon)
	}
}

func drawTarget(c render.Canvas, t *component.Target) {
	if t.Sprite == nil {
		c.FillCircle(t.Pos, t.Radius, t.Color)
		return
	}
	c.DrawSprite(t.Sprite, t.Pos, 2*t.Radius)
}

func drawCannon(c render.Canvas, cn *component.Cannon) {
	x, y := cn.Pos.X, cn.Pos.Y
	c.FillRect(x-30, y, 55, 15, cn.Color)
	c.FillCircle(physics.V(x-16, y+18), wheelRadius, cn.Color)
	c.FillCircle(physics.V(x+13, y+18), wheelRadius, cn.Color)
	c.FillPolygon(BarrelShape(cn), cn.Color)
}

// BarrelShape returns the barrel as a quadrilateral whose length shows the
// current charge.
func BarrelShape(cn *component.Cannon) []physics.Vec2 {
	side := physics.Polar(barrelHalfWidth, cn.Angle-math.Pi/2).Trunc()
	along := physics.Polar(cn.Power, cn.Angle).Trunc()
	p := cn.Pos
	return []physics.Vec2{
		p.Add(side),
		p.Add(side).Add(along),
		p.Add(along).Sub(side),
		p.Sub(side),
	}
}
