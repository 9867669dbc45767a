package entity

import (
	"image/color"
	"testing"

	"go-artillery/internal/component"
	"go-artillery/pkg/physics"
)

func TestWorldEmpty(t *testing.T) {
	w := NewWorld(physics.DefaultArena(800, 600))
	if !w.Empty() {
		t.Fatal("new world should be empty")
	}

	w.AddShell(nil)
	if !w.Empty() {
		t.Error("adding nil must be a no-op")
	}

	w.AddShell(component.NewShell(physics.V(1, 1), physics.V(0, 0), 1, color.RGBA{}))
	if w.Empty() {
		t.Error("world with a shell is not empty")
	}

	w.Shells = w.Shells[:0]
	w.Targets = append(w.Targets, component.NewTarget(component.KindStatic, physics.V(50, 50), 10, color.RGBA{}, 0))
	if w.Empty() {
		t.Error("world with a target is not empty")
	}
}
