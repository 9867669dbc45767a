// internal/rlfront/pause_button.go
package rlfront

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PauseButton is a round on-screen toggle: two bars while running, a play
// triangle while paused. It pulses briefly after each click.
type PauseButton struct {
	X, Y          float32
	Size          float32
	IsPaused      bool
	LastClickTime time.Time
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw() {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		col := colorToRL(b.PlayColor)
		p1 := rl.NewVector2(b.X-size, b.Y-size*1.2)
		p2 := rl.NewVector2(b.X-size, b.Y+size*1.2)
		p3 := rl.NewVector2(b.X+size, b.Y)
		rl.DrawTriangle(p1, p2, p3, col)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
		return
	}

	col := colorToRL(b.PauseColor)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		rl.DrawRectangleV(rl.NewVector2(x, b.Y-height/2), rl.NewVector2(width, height), col)
		rl.DrawRectangleLines(int32(x), int32(b.Y-height/2), int32(width), int32(height), rl.White)
	}
}

// IsClicked reports a primary press inside the button this frame.
func (b *PauseButton) IsClicked(mousePos rl.Vector2) bool {
	return rl.IsMouseButtonPressed(rl.MouseLeftButton) &&
		rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5)
}

func (b *PauseButton) Toggle() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}
