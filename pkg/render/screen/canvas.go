// pkg/render/screen/canvas.go
package screen

import (
	"image"
	"image/color"

	"go-artillery/pkg/physics"
	"go-artillery/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas draws onto an ebiten image.
type Canvas struct {
	dst  *ebiten.Image
	face font.Face
}

var _ render.Canvas = (*Canvas)(nil)

// New wraps dst. face may be nil, in which case text is skipped.
func New(dst *ebiten.Image, face font.Face) *Canvas {
	return &Canvas{dst: dst, face: face}
}

func (c *Canvas) FillCircle(center physics.Vec2, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, true)
}

func (c *Canvas) FillPolygon(points []physics.Vec2, clr color.Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	c.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func (c *Canvas) DrawSprite(s render.Sprite, center physics.Vec2, size float64) {
	img, ok := s.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	op.GeoM.Translate(center.X-size/2, center.Y-size/2)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

func (c *Canvas) DrawText(str string, x, y float64, clr color.Color) {
	if c.face == nil {
		return
	}
	// text.Draw positions the baseline, so shift down by the ascent.
	ascent := c.face.Metrics().Ascent.Ceil()
	text.Draw(c.dst, str, c.face, int(x), int(y)+ascent, clr)
}
