// internal/app/game.go
package app

import (
	"image/color"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/input"
	"go-artillery/internal/system"
	"go-artillery/internal/ui"
	"go-artillery/internal/utils"
	"go-artillery/pkg/physics"
	"go-artillery/pkg/render"
)

// Context carries what a session needs from the outside world.
type Context struct {
	Settings config.Settings
	Rng      *utils.PRNGService
	Sprites  map[component.Kind]render.Sprite // nil entries draw plain discs
	Events   *event.Dispatcher                // optional
}

// Manager runs the simulation one tick at a time. It is the only writer of
// the World.
type Manager struct {
	World            *entity.World
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	TurretSystem     *system.TurretSystem
	CollisionSystem  *system.CollisionSystem
	WaveSystem       *system.WaveSystem
	RenderSystem     *system.RenderSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Stats            Stats

	playerStep float64
}

// NewManager builds the world, places the cannons and spawns the first wave.
func NewManager(ctx Context) *Manager {
	if ctx.Rng == nil {
		panic("manager needs a random source")
	}
	if ctx.Events == nil {
		ctx.Events = event.NewDispatcher()
	}
	s := ctx.Settings

	arena := physics.Arena{
		Width:   config.ScreenWidth,
		Height:  config.ScreenHeight,
		ReflOrt: s.ReflOrt,
		ReflPar: s.ReflPar,
	}
	world := entity.NewWorld(arena)
	world.Player = newCannon(s, config.PlayerX, config.PlayerColor, component.OwnerPlayer)
	for i, es := range s.Enemies {
		cannon := newCannon(s, es.X, es.Color, component.Owner(i))
		pilot := component.NewAutopilot(es.Threshold, es.Step, s.EnemyFirePercent, config.EnemyAimReach)
		world.Enemies = append(world.Enemies, component.NewEnemy(cannon, pilot))
	}

	panel := ui.DefaultScorePanel()
	m := &Manager{
		World:            world,
		ProjectileSystem: system.NewProjectileSystem(world, ctx.Events, config.TimeStep, s.Gravity),
		MovementSystem:   system.NewMovementSystem(world),
		TurretSystem:     system.NewTurretSystem(world, ctx.Events, ctx.Rng, s.ChargeStep),
		CollisionSystem:  system.NewCollisionSystem(world, ctx.Events),
		WaveSystem: system.NewWaveSystem(world, ctx.Events, ctx.Rng, system.WaveConfig{
			PerKind:    s.Targets,
			BaseRadius: s.TargetBaseRadius,
			Speed:      s.TargetSpeed,
			Sprites:    ctx.Sprites,
		}),
		RenderSystem:    system.NewRenderSystem(world, panel),
		EventDispatcher: ctx.Events,
		Rng:             ctx.Rng,
		Stats:           Stats{Kills: make(map[component.Kind]int)},
		playerStep:      s.PlayerStep,
	}

	listener := &GameEventListener{game: m}
	ctx.Events.Subscribe(event.ShellFired, listener)
	ctx.Events.Subscribe(event.TargetDestroyed, listener)
	ctx.Events.Subscribe(event.WaveSpawned, listener)

	m.NewMission()
	return m
}

func newCannon(s config.Settings, x float64, clr color.RGBA, owner component.Owner) *component.Cannon {
	return component.NewCannon(component.CannonConfig{
		Pos:         physics.V(x, config.ScreenHeight-config.CannonFloorGap),
		MinPower:    s.MinPower,
		MaxPower:    s.MaxPower,
		Color:       clr,
		ShellRadius: s.ShellRadius,
		Margin:      config.CannonMargin,
		ArenaWidth:  config.ScreenWidth,
		Owner:       owner,
	})
}

// Process runs one full tick and reports whether a quit was requested. The
// tick is always completed, quit or not.
func (m *Manager) Process(snap input.Snapshot, canvas render.Canvas) bool {
	done := m.HandleEvents(snap.Events)
	if snap.Focused {
		m.World.Player.SetAim(snap.Pointer)
	}
	m.Move()
	m.Collide()
	m.ProjectileSystem.Sweep()
	m.Draw(canvas)
	m.WaveSystem.Update()
	return done
}

// HandleEvents applies discrete player input. Unrecognised events are ignored.
func (m *Manager) HandleEvents(events []input.Event) bool {
	done := false
	for _, ev := range events {
		switch ev.Kind {
		case input.Quit:
			done = true
		case input.KeyDown:
			switch ev.Key {
			case input.KeyLeft:
				m.World.Player.MoveBy(-m.playerStep)
			case input.KeyRight:
				m.World.Player.MoveBy(m.playerStep)
			}
		case input.PointerDown:
			if ev.Button == input.ButtonPrimary {
				m.World.Player.Activate()
			}
		case input.PointerUp:
			if ev.Button == input.ButtonPrimary {
				m.fire()
			}
		}
	}
	return done
}

func (m *Manager) fire() {
	shell := m.World.Player.Fire(render.RandColor(m.Rng))
	m.World.AddShell(shell)
	m.World.Score.Used++
	m.EventDispatcher.Dispatch(event.Event{Type: event.ShellFired, Data: event.ShellFiredData{Shell: shell}})
}

// CancelCharge drops a charge in progress without firing. Frontends call it
// when they stop delivering input, so a release they never see cannot leave
// the cannon charging.
func (m *Manager) CancelCharge() {
	p := m.World.Player
	p.Active = false
	p.Power = p.MinPower
}

// Move advances shells, targets and cannons by one tick.
func (m *Manager) Move() {
	m.ProjectileSystem.Update()
	m.MovementSystem.Update()
	m.TurretSystem.Update()
}

// Collide removes struck targets and returns how many there were.
func (m *Manager) Collide() int {
	return m.CollisionSystem.Update()
}

// Draw renders the board; a nil canvas skips drawing.
func (m *Manager) Draw(canvas render.Canvas) {
	if canvas == nil {
		return
	}
	m.RenderSystem.Draw(canvas)
}

// NewMission spawns a fresh wave of targets.
func (m *Manager) NewMission() {
	m.WaveSystem.Spawn()
}

// Score returns a copy of the score table.
func (m *Manager) Score() component.ScoreTable {
	return m.World.Score
}
