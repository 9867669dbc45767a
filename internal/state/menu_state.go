// internal/state/menu_state.go
package state

import (
	"go-artillery/internal/config"
	"go-artillery/pkg/render/screen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

var _ State = (*MenuState)(nil)

// MenuState is the title screen. Space or a click starts the game.
type MenuState struct {
	sm    *StateMachine
	start func() State
	face  font.Face
}

// NewMenuState builds the title screen. start is called once, when the player
// leaves it.
func NewMenuState(sm *StateMachine, face font.Face, start func() State) *MenuState {
	return &MenuState{sm: sm, start: start, face: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.start())
	}
	return nil
}

func (m *MenuState) Draw(dst *ebiten.Image) {
	dst.Fill(config.BackgroundColor)
	c := screen.New(dst, m.face)
	c.DrawText(config.WindowTitle, 200, 240, config.TextDarkColor)
	c.DrawText("Space or click to start, P to pause", 200, 290, config.TextDarkColor)
}

func (m *MenuState) Exit() {}
