package app

import (
	"log"

	"go-artillery/internal/component"
	"go-artillery/internal/event"
)

// Stats are session counters that do not affect the score.
type Stats struct {
	EnemyShots int
	Kills      map[component.Kind]int
}

// GameEventListener keeps the manager's stats and logs wave changes.
type GameEventListener struct {
	game *Manager
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShellFired:
		if d, ok := e.Data.(event.ShellFiredData); ok && d.Shell != nil && !d.Shell.Owner.IsPlayer() {
			l.game.Stats.EnemyShots++
		}
	case event.TargetDestroyed:
		if d, ok := e.Data.(event.TargetDestroyedData); ok {
			l.game.Stats.Kills[d.Kind]++
		}
	case event.WaveSpawned:
		if d, ok := e.Data.(event.WaveSpawnedData); ok {
			log.Printf("Wave %d spawned: %d targets, score %d, enemy shots so far %d",
				d.Number, d.Targets, d.Score, l.game.Stats.EnemyShots)
		}
	}
}
