package render_test

import (
	"image/color"
	"testing"

	"go-artillery/pkg/physics"
	"go-artillery/pkg/render"
	"go-artillery/pkg/render/mock_render"

	"go.uber.org/mock/gomock"
)

func TestDisplayListReplaysInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	canvas := mock_render.NewMockCanvas(ctrl)
	sprite := mock_render.NewMockSprite(ctrl)

	red := color.RGBA{255, 0, 0, 255}
	poly := []physics.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	dl := render.NewDisplayList()
	dl.FillCircle(physics.V(1, 2), 3, red)
	dl.FillRect(0, 0, 55, 15, red)
	dl.FillPolygon(poly, red)
	dl.DrawSprite(sprite, physics.V(40, 50), 60)
	dl.DrawText("Total: 0", 10, 70, color.White)

	// Mutating the caller's slice must not leak into the recording.
	poly[0] = physics.V(99, 99)

	gomock.InOrder(
		canvas.EXPECT().FillCircle(physics.V(1, 2), 3.0, red),
		canvas.EXPECT().FillRect(0.0, 0.0, 55.0, 15.0, red),
		canvas.EXPECT().FillPolygon([]physics.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, red),
		canvas.EXPECT().DrawSprite(sprite, physics.V(40, 50), 60.0),
		canvas.EXPECT().DrawText("Total: 0", 10.0, 70.0, color.White),
	)
	dl.Replay(canvas)
}

func TestDisplayListReset(t *testing.T) {
	dl := render.NewDisplayList()
	dl.FillCircle(physics.V(0, 0), 1, color.Black)
	dl.FillCircle(physics.V(0, 0), 1, color.Black)
	if dl.Len() != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", dl.Len())
	}
	dl.Reset()
	if dl.Len() != 0 {
		t.Errorf("expected empty list after reset, got %d", dl.Len())
	}

	ctrl := gomock.NewController(t)
	canvas := mock_render.NewMockCanvas(ctrl)
	// No expectations: any call would fail the test.
	dl.Replay(canvas)
}

type fixedInts struct{ v int }

func (f fixedInts) Intn(n int) int { return f.v % n }

func TestRandColorIsOpaque(t *testing.T) {
	c := render.RandColor(fixedInts{v: 300})
	if c != (color.RGBA{44, 44, 44, 255}) {
		t.Errorf("unexpected colour %v", c)
	}
}

func TestDarkenColor(t *testing.T) {
	got := render.DarkenColor(color.RGBA{200, 100, 50, 128})
	if got != (color.RGBA{100, 50, 25, 128}) {
		t.Errorf("unexpected darkened colour %v", got)
	}
}
