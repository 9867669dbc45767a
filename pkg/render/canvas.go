// pkg/render/canvas.go
package render

//go:generate go tool mockgen -source=canvas.go -destination=mock_render/mock_canvas.go -package=mock_render

import (
	"image"
	"image/color"

	"go-artillery/pkg/physics"
)

// Sprite is an opaque image handle owned by a frontend. The simulation only
// ever passes it back to the Canvas that understands it.
type Sprite interface {
	Bounds() image.Rectangle
}

// Canvas is the drawing surface the simulation renders into. It owns the
// pixels; callers only describe shapes in logical screen coordinates.
type Canvas interface {
	FillCircle(center physics.Vec2, radius float64, clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	FillPolygon(points []physics.Vec2, clr color.Color)
	// DrawSprite scales s to size x size pixels centred on center.
	DrawSprite(s Sprite, center physics.Vec2, size float64)
	// DrawText draws str with its top-left corner at (x, y).
	DrawText(str string, x, y float64, clr color.Color)
}
