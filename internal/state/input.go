// internal/state/input.go
package state

import (
	"go-artillery/internal/config"
	"go-artillery/internal/input"
	"go-artillery/pkg/physics"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = config.ScreenWidth
	screenHeight = config.ScreenHeight
)

var mouseButtons = []struct {
	raw    ebiten.MouseButton
	button input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonPrimary},
	{ebiten.MouseButtonRight, input.ButtonSecondary},
}

// quitRequested reports a window close or an Escape press.
func quitRequested() bool {
	return ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// PollInput collects what happened since the previous tick. Keys fire once
// per press; holding an arrow does not repeat.
func PollInput() input.Snapshot {
	var snap input.Snapshot
	if quitRequested() {
		snap.Events = append(snap.Events, input.QuitEvent())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		snap.Events = append(snap.Events, input.KeyEvent(input.KeyLeft))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		snap.Events = append(snap.Events, input.KeyEvent(input.KeyRight))
	}
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.raw) {
			snap.Events = append(snap.Events, input.PressEvent(mb.button))
		}
	}
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(mb.raw) {
			snap.Events = append(snap.Events, input.ReleaseEvent(mb.button))
		}
	}

	x, y := ebiten.CursorPosition()
	snap.Pointer = physics.V(float64(x), float64(y))
	snap.Focused = ebiten.IsFocused() && x >= 0 && x < screenWidth && y >= 0 && y < screenHeight
	return snap
}
