package app

import (
	"image/color"
	"testing"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/input"
	"go-artillery/internal/utils"
	"go-artillery/pkg/physics"
	"go-artillery/pkg/render/mock_render"

	"go.uber.org/mock/gomock"
)

func newTestManager(t *testing.T, firePercent int) *Manager {
	t.Helper()
	s := config.DefaultSettings()
	s.Seed = 42
	s.EnemyFirePercent = firePercent
	return NewManager(Context{Settings: s, Rng: utils.NewPRNGService(s.Seed)})
}

func TestNewManagerSpawnsFirstWave(t *testing.T) {
	m := newTestManager(t, 0)

	if m.World.Wave != 1 {
		t.Errorf("expected wave 1, got %d", m.World.Wave)
	}
	if want := 3 * config.TargetsPerKind; len(m.World.Targets) != want {
		t.Errorf("expected %d targets, got %d", want, len(m.World.Targets))
	}
	if m.World.Player.Pos != physics.V(config.PlayerX, 550) {
		t.Errorf("unexpected player position %v", m.World.Player.Pos)
	}
	if len(m.World.Enemies) != 2 {
		t.Errorf("expected 2 enemies, got %d", len(m.World.Enemies))
	}
}

func TestPlayerFireCountsShell(t *testing.T) {
	m := newTestManager(t, 0)

	m.HandleEvents([]input.Event{
		input.PressEvent(input.ButtonPrimary),
		input.ReleaseEvent(input.ButtonPrimary),
	})

	if len(m.World.Shells) != 1 {
		t.Fatalf("expected 1 shell, got %d", len(m.World.Shells))
	}
	if m.World.Score.Used != 1 {
		t.Errorf("expected Used 1, got %d", m.World.Score.Used)
	}
	shell := m.World.Shells[0]
	if shell.Vel != physics.V(config.MinPower, 0) {
		t.Errorf("expected uncharged shot (10,0), got %v", shell.Vel)
	}
	if !shell.Owner.IsPlayer() {
		t.Errorf("expected player shell, got owner %d", shell.Owner)
	}
}

func TestSecondaryButtonDoesNotFire(t *testing.T) {
	m := newTestManager(t, 0)

	m.HandleEvents([]input.Event{
		input.PressEvent(input.ButtonSecondary),
		input.ReleaseEvent(input.ButtonSecondary),
	})

	if len(m.World.Shells) != 0 || m.World.Score.Used != 0 {
		t.Errorf("expected no shot, got %d shells, Used %d", len(m.World.Shells), m.World.Score.Used)
	}
}

func TestChargedShotAcrossTicks(t *testing.T) {
	m := newTestManager(t, 0)
	m.World.Targets = nil

	m.Process(input.Snapshot{Events: []input.Event{input.PressEvent(input.ButtonPrimary)}}, nil)
	m.Process(input.Snapshot{}, nil)
	m.Process(input.Snapshot{Events: []input.Event{input.ReleaseEvent(input.ButtonPrimary)}}, nil)

	if len(m.World.Shells) != 1 {
		t.Fatalf("expected 1 shell, got %d", len(m.World.Shells))
	}
	// Charged on the first two ticks: 10 + 2 + 2.
	if vx := m.World.Shells[0].Vel.X; vx != 14 {
		t.Errorf("expected vx 14, got %v", vx)
	}
	if m.World.Player.Active || m.World.Player.Power != config.MinPower {
		t.Errorf("expected charge reset, got active=%v power=%v", m.World.Player.Active, m.World.Player.Power)
	}
}

func TestEnemyFireDoesNotCount(t *testing.T) {
	m := newTestManager(t, 100)

	m.Move()

	if len(m.World.Shells) != 2 {
		t.Fatalf("expected one shell per enemy, got %d", len(m.World.Shells))
	}
	if m.World.Score.Used != 0 {
		t.Errorf("enemy shots must not count, Used=%d", m.World.Score.Used)
	}
	if m.Stats.EnemyShots != 2 {
		t.Errorf("expected 2 enemy shots recorded, got %d", m.Stats.EnemyShots)
	}
}

func TestKeysMovePlayer(t *testing.T) {
	m := newTestManager(t, 0)

	m.HandleEvents([]input.Event{input.KeyEvent(input.KeyRight), input.KeyEvent(input.KeyRight)})
	if x := m.World.Player.Pos.X; x != config.PlayerX+2*config.PlayerStep {
		t.Errorf("expected x %v, got %v", config.PlayerX+2*config.PlayerStep, x)
	}

	for i := 0; i < 5; i++ {
		m.HandleEvents([]input.Event{input.KeyEvent(input.KeyLeft)})
	}
	if x := m.World.Player.Pos.X; x != config.CannonMargin {
		t.Errorf("expected player held at the margin, got %v", x)
	}
}

func TestQuitFinishesTick(t *testing.T) {
	m := newTestManager(t, 0)
	m.World.Targets = nil

	done := m.Process(input.Snapshot{Events: []input.Event{input.QuitEvent()}}, nil)

	if !done {
		t.Fatal("expected quit to be reported")
	}
	if m.World.Wave != 2 {
		t.Errorf("expected the tick to complete and respawn, wave=%d", m.World.Wave)
	}
}

func TestRespawnOnlyWhenEmpty(t *testing.T) {
	m := newTestManager(t, 0)
	m.World.Targets = nil
	m.World.AddShell(component.NewShell(physics.V(400, 100), physics.V(20, 0), 20, color.RGBA{}))

	m.Process(input.Snapshot{}, nil)
	if m.World.Wave != 1 {
		t.Fatalf("a shell in flight must block the next wave, wave=%d", m.World.Wave)
	}

	m.World.Shells = nil
	m.Process(input.Snapshot{}, nil)
	if m.World.Wave != 2 {
		t.Errorf("expected wave 2, got %d", m.World.Wave)
	}
	if want := 3 * config.TargetsPerKind; len(m.World.Targets) != want {
		t.Errorf("expected %d targets, got %d", want, len(m.World.Targets))
	}
}

func TestCollideScoresAndRecordsKind(t *testing.T) {
	m := newTestManager(t, 0)
	m.World.Targets = []*component.Target{
		component.NewTarget(component.KindBird, physics.V(400, 300), 20, color.RGBA{}, 0),
		component.NewTarget(component.KindStatic, physics.V(100, 100), 20, color.RGBA{}, 0),
	}
	m.World.AddShell(component.NewShell(physics.V(410, 300), physics.V(0, 0), 20, color.RGBA{}))

	if n := m.Collide(); n != 1 {
		t.Fatalf("expected 1 target destroyed, got %d", n)
	}
	if m.Score().Destroyed != 1 {
		t.Errorf("expected Destroyed 1, got %d", m.Score().Destroyed)
	}
	if m.Stats.Kills[component.KindBird] != 1 {
		t.Errorf("expected a bird kill, got %v", m.Stats.Kills)
	}
	if len(m.World.Shells) != 1 {
		t.Errorf("shells survive impact, got %d", len(m.World.Shells))
	}
}

func TestFocusAimsBarrel(t *testing.T) {
	m := newTestManager(t, 0)

	m.Process(input.Snapshot{Pointer: physics.V(config.PlayerX, 0), Focused: true}, nil)
	if a := m.World.Player.Angle; a > -1.57 || a < -1.58 {
		t.Errorf("expected barrel pointing up, got %v", a)
	}

	m.Process(input.Snapshot{Pointer: physics.V(800, 550), Focused: false}, nil)
	if a := m.World.Player.Angle; a > -1.57 || a < -1.58 {
		t.Errorf("unfocused pointer must not move the barrel, got %v", a)
	}
}

func TestProcessDrawsFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	canvas := mock_render.NewMockCanvas(ctrl)
	m := newTestManager(t, 0)

	canvas.EXPECT().FillCircle(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	canvas.EXPECT().FillRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(3)
	canvas.EXPECT().FillPolygon(gomock.Any(), gomock.Any()).Times(3)
	canvas.EXPECT().DrawText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(3)

	m.Process(input.Snapshot{}, canvas)
}

func TestCancelChargeDropsPendingShot(t *testing.T) {
	m := newTestManager(t, 0)
	m.World.Targets = nil

	m.Process(input.Snapshot{Events: []input.Event{input.PressEvent(input.ButtonPrimary)}}, nil)
	m.CancelCharge()
	for i := 0; i < 30; i++ {
		m.Process(input.Snapshot{}, nil)
	}

	if m.World.Player.Active || m.World.Player.Power != config.MinPower {
		t.Errorf("expected an idle cannon, got active=%v power=%v", m.World.Player.Active, m.World.Player.Power)
	}

	m.HandleEvents([]input.Event{input.ReleaseEvent(input.ButtonPrimary)})
	if vx := m.World.Shells[0].Vel.X; vx != config.MinPower {
		t.Errorf("a later release fires an uncharged shot, got vx %v", vx)
	}
}
