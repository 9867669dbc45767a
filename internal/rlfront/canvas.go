// internal/rlfront/canvas.go
package rlfront

import (
	"image/color"
	"slices"

	"go-artillery/pkg/physics"
	"go-artillery/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Canvas draws through raylib's immediate mode. Calls must happen between
// rl.BeginDrawing and rl.EndDrawing.
type Canvas struct {
	fontSize int32
}

var _ render.Canvas = (*Canvas)(nil)

func NewCanvas(fontSize int32) *Canvas {
	return &Canvas{fontSize: fontSize}
}

func (c *Canvas) FillCircle(center physics.Vec2, radius float64, clr color.Color) {
	rl.DrawCircleV(vec(center), float32(radius), colorToRL(clr))
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	rl.DrawRectangleV(rl.NewVector2(float32(x), float32(y)), rl.NewVector2(float32(w), float32(h)), colorToRL(clr))
}

// FillPolygon fills a convex polygon. The fan is drawn in both windings since
// raylib culls one of them and callers do not agree on orientation.
func (c *Canvas) FillPolygon(points []physics.Vec2, clr color.Color) {
	if len(points) < 3 {
		return
	}
	fan := make([]rl.Vector2, len(points))
	for i, p := range points {
		fan[i] = vec(p)
	}
	col := colorToRL(clr)
	rl.DrawTriangleFan(fan, col)
	slices.Reverse(fan)
	rl.DrawTriangleFan(fan, col)
}

// DrawSprite stretches a texture over the size x size square around center.
// Sprites that did not come from this package are skipped.
func (c *Canvas) DrawSprite(s render.Sprite, center physics.Vec2, size float64) {
	tex, ok := s.(*Texture)
	if !ok || tex.ID == 0 {
		return
	}
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(float32(center.X-size/2), float32(center.Y-size/2), float32(size), float32(size))
	rl.DrawTexturePro(tex.Texture2D, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}

func (c *Canvas) DrawText(str string, x, y float64, clr color.Color) {
	rl.DrawText(str, int32(x), int32(y), c.fontSize, colorToRL(clr))
}

func vec(v physics.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

// colorToRL converts a standard color.Color to rl.Color.
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
