// internal/system/wave.go
package system

import (
	"go-artillery/internal/component"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/utils"
	"go-artillery/pkg/physics"
	"go-artillery/pkg/render"
	putils "go-artillery/pkg/utils"
)

// waveOrder is the order in which each group of a wave is created.
var waveOrder = []component.Kind{component.KindBird, component.KindStatic, component.KindButterfly}

// RadiusRange returns the closed range target radii are drawn from. Targets
// shrink as the score grows; a negative score counts as zero and the radius
// never drops below 1.
func RadiusRange(score, base int) (lo, hi int) {
	s := putils.MaxInt(0, score)
	lo = putils.MaxInt(1, base-2*s)
	hi = putils.MaxInt(1, base-s)
	return lo, hi
}

// WaveConfig holds the wave parameters taken from the settings.
type WaveConfig struct {
	PerKind    int // groups per wave; each group is one target of every kind
	BaseRadius int
	Speed      float64
	Sprites    map[component.Kind]render.Sprite
}

// WaveSystem refills the board once it is completely clear.
type WaveSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	cfg             WaveConfig
}

func NewWaveSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, cfg WaveConfig) *WaveSystem {
	return &WaveSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		cfg:             cfg,
	}
}

// Update spawns a wave when no shells and no targets are left and reports
// whether it did.
func (s *WaveSystem) Update() bool {
	if !s.world.Empty() {
		return false
	}
	return s.Spawn() > 0
}

// Spawn appends a new wave of targets sized for the current score and
// returns the number of targets added. A wave with no targets is not a wave:
// the counter stays put and nothing is announced.
func (s *WaveSystem) Spawn() int {
	if s.cfg.PerKind <= 0 {
		return 0
	}
	lo, hi := RadiusRange(s.world.Score.Score(), s.cfg.BaseRadius)
	added := 0
	for i := 0; i < s.cfg.PerKind; i++ {
		for _, kind := range waveOrder {
			s.world.Targets = append(s.world.Targets, s.newTarget(kind, lo, hi))
			added++
		}
	}
	s.world.Wave++
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveSpawned,
		Data: event.WaveSpawnedData{Number: s.world.Wave, Targets: added, Score: s.world.Score.Score()},
	})
	return added
}

func (s *WaveSystem) newTarget(kind component.Kind, lo, hi int) *component.Target {
	r := s.rng.IntRange(lo, hi)
	a := s.world.Arena
	pos := physics.V(
		float64(s.rng.IntRange(r, int(a.Width)-r)),
		float64(s.rng.IntRange(r, int(a.Height)-r)),
	)
	t := component.NewTarget(kind, pos, float64(r), render.RandColor(s.rng), s.cfg.Speed)
	t.Sprite = s.cfg.Sprites[kind]
	return t
}
