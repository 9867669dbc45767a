// internal/state/pause_state.go
package state

import (
	"go-artillery/internal/ui"
	"go-artillery/pkg/render/screen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game and draws the last frame under a veil.
type PauseState struct {
	sm            *StateMachine
	previousState State
	face          font.Face
	indicator     *ui.PauseIndicator
}

func NewPauseState(sm *StateMachine, prevState State, face font.Face) *PauseState {
	return &PauseState{
		sm:            sm,
		previousState: prevState,
		face:          face,
		indicator:     ui.DefaultPauseIndicator(),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(dst *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(dst)
	}
	s.indicator.Draw(screen.New(dst, s.face))
}

func (s *PauseState) Exit() {}
