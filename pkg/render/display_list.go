// pkg/render/display_list.go
package render

import (
	"image/color"
	"slices"

	"go-artillery/pkg/physics"
)

// DisplayList is a Canvas that records draw calls so they can be replayed
// onto a real surface later. A frame is recorded during the simulation tick
// and replayed from the frontend's draw callback.
type DisplayList struct {
	ops []func(Canvas)
}

var _ Canvas = (*DisplayList)(nil)

func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

// Reset drops all recorded calls, keeping the allocated capacity.
func (d *DisplayList) Reset() {
	clear(d.ops)
	d.ops = d.ops[:0]
}

func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Replay issues every recorded call on dst in recording order.
func (d *DisplayList) Replay(dst Canvas) {
	for _, op := range d.ops {
		op(dst)
	}
}

func (d *DisplayList) FillCircle(center physics.Vec2, radius float64, clr color.Color) {
	d.ops = append(d.ops, func(c Canvas) { c.FillCircle(center, radius, clr) })
}

func (d *DisplayList) FillRect(x, y, w, h float64, clr color.Color) {
	d.ops = append(d.ops, func(c Canvas) { c.FillRect(x, y, w, h, clr) })
}

func (d *DisplayList) FillPolygon(points []physics.Vec2, clr color.Color) {
	pts := slices.Clone(points)
	d.ops = append(d.ops, func(c Canvas) { c.FillPolygon(pts, clr) })
}

func (d *DisplayList) DrawSprite(s Sprite, center physics.Vec2, size float64) {
	d.ops = append(d.ops, func(c Canvas) { c.DrawSprite(s, center, size) })
}

func (d *DisplayList) DrawText(str string, x, y float64, clr color.Color) {
	d.ops = append(d.ops, func(c Canvas) { c.DrawText(str, x, y, clr) })
}
