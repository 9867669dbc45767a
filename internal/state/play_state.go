// internal/state/play_state.go
package state

import (
	"go-artillery/internal/app"
	"go-artillery/internal/config"
	"go-artillery/internal/ui"
	"go-artillery/pkg/render"
	"go-artillery/pkg/render/screen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

var _ State = (*PlayState)(nil)

// PlayState runs the simulation. Each tick is recorded into a display list
// that Draw replays, so the world is only touched from Update.
type PlayState struct {
	sm      *StateMachine
	manager *app.Manager
	frame   *render.DisplayList
	face    font.Face
	wave    *ui.WaveIndicator
}

func NewPlayState(sm *StateMachine, manager *app.Manager, face font.Face) *PlayState {
	return &PlayState{
		sm:      sm,
		manager: manager,
		frame:   render.NewDisplayList(),
		face:    face,
		wave:    ui.DefaultWaveIndicator(),
	}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.manager.CancelCharge()
		s.sm.SetState(NewPauseState(s.sm, s, s.face))
		return nil
	}
	s.frame.Reset()
	done := s.manager.Process(PollInput(), s.frame)
	s.wave.Draw(s.frame, s.manager.World.Wave)
	if done {
		return ebiten.Termination
	}
	return nil
}

func (s *PlayState) Draw(dst *ebiten.Image) {
	dst.Fill(config.BackgroundColor)
	s.frame.Replay(screen.New(dst, s.face))
}

func (s *PlayState) Exit() {}
