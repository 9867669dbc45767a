// internal/rlfront/input.go
package rlfront

import (
	"go-artillery/internal/input"
	"go-artillery/pkg/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var mouseButtons = []struct {
	raw    rl.MouseButton
	button input.Button
}{
	{rl.MouseLeftButton, input.ButtonPrimary},
	{rl.MouseRightButton, input.ButtonSecondary},
}

// Poll collects the input raylib saw during the last frame. Closing the
// window or pressing Escape is reported as Quit.
func Poll() input.Snapshot {
	var snap input.Snapshot
	if rl.WindowShouldClose() {
		snap.Events = append(snap.Events, input.QuitEvent())
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		snap.Events = append(snap.Events, input.KeyEvent(input.KeyLeft))
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		snap.Events = append(snap.Events, input.KeyEvent(input.KeyRight))
	}
	for _, mb := range mouseButtons {
		if rl.IsMouseButtonPressed(mb.raw) {
			snap.Events = append(snap.Events, input.PressEvent(mb.button))
		}
	}
	for _, mb := range mouseButtons {
		if rl.IsMouseButtonReleased(mb.raw) {
			snap.Events = append(snap.Events, input.ReleaseEvent(mb.button))
		}
	}

	pos := rl.GetMousePosition()
	snap.Pointer = physics.V(float64(pos.X), float64(pos.Y))
	snap.Focused = rl.IsWindowFocused() && rl.IsCursorOnScreen()
	return snap
}
