package system

import (
	"image/color"
	"testing"

	"go-artillery/internal/component"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/pkg/physics"
)

func shellAt(x, y float64) *component.Shell {
	return component.NewShell(physics.V(x, y), physics.V(0, 0), 20, color.RGBA{})
}

func targetAt(kind component.Kind, x, y float64) *component.Target {
	return component.NewTarget(kind, physics.V(x, y), 30, color.RGBA{}, 3)
}

func TestFindStrikesDescendingAndDeduplicated(t *testing.T) {
	targets := []*component.Target{
		targetAt(component.KindStatic, 100, 100),
		targetAt(component.KindStatic, 400, 300),
		targetAt(component.KindStatic, 700, 500),
	}
	shells := []*component.Shell{
		shellAt(110, 100),
		shellAt(90, 100),
		shellAt(700, 480),
	}

	strikes := FindStrikes(shells, targets)
	want := []Strike{{Index: 2, Hits: 1}, {Index: 0, Hits: 2}}
	if len(strikes) != len(want) {
		t.Fatalf("expected %v, got %v", want, strikes)
	}
	for i := range want {
		if strikes[i] != want[i] {
			t.Errorf("strike %d: expected %v, got %v", i, want[i], strikes[i])
		}
	}
}

func TestCollisionSystemDestroysEachTargetOnce(t *testing.T) {
	w := entity.NewWorld(physics.DefaultArena(800, 600))
	w.Targets = []*component.Target{
		targetAt(component.KindBird, 100, 100),
		targetAt(component.KindStatic, 400, 300),
		targetAt(component.KindButterfly, 700, 500),
	}
	w.Shells = []*component.Shell{shellAt(100, 100), shellAt(105, 100), shellAt(700, 500)}

	d := event.NewDispatcher()
	var destroyed []event.TargetDestroyedData
	d.Subscribe(event.TargetDestroyed, event.ListenerFunc(func(e event.Event) {
		destroyed = append(destroyed, e.Data.(event.TargetDestroyedData))
	}))

	n := NewCollisionSystem(w, d).Update()

	if n != 2 || w.Score.Destroyed != 2 {
		t.Fatalf("expected 2 destroyed, got n=%d score=%d", n, w.Score.Destroyed)
	}
	if len(w.Targets) != 1 || w.Targets[0].Kind != component.KindStatic {
		t.Errorf("the untouched static target should remain, got %v", w.Targets)
	}
	if len(w.Shells) != 3 {
		t.Errorf("shells must survive impacts, got %d", len(w.Shells))
	}
	if len(destroyed) != 2 || destroyed[0].Kind != component.KindButterfly || destroyed[1].Hits != 2 {
		t.Errorf("unexpected events %+v", destroyed)
	}
}

func TestCollisionSystemNoHits(t *testing.T) {
	w := entity.NewWorld(physics.DefaultArena(800, 600))
	w.Targets = []*component.Target{targetAt(component.KindStatic, 400, 300)}
	w.Shells = []*component.Shell{shellAt(100, 100)}

	if n := NewCollisionSystem(w, nil).Update(); n != 0 {
		t.Errorf("expected no hits, got %d", n)
	}
	if len(w.Targets) != 1 || w.Score.Destroyed != 0 {
		t.Error("nothing should change without hits")
	}
}
