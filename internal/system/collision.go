// internal/system/collision.go
package system

import (
	"slices"

	"go-artillery/internal/component"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
)

// Strike records that a target was hit during a tick.
type Strike struct {
	Index int // position in the target slice
	Hits  int // shells touching it
}

// FindStrikes tests every shell against every target and returns one Strike
// per struck target, highest index first, so that removing them in order
// never shifts a target still waiting to be removed.
func FindStrikes(shells []*component.Shell, targets []*component.Target) []Strike {
	var strikes []Strike
	for j := len(targets) - 1; j >= 0; j-- {
		hits := 0
		for _, shell := range shells {
			if targets[j].CheckCollision(shell) {
				hits++
			}
		}
		if hits > 0 {
			strikes = append(strikes, Strike{Index: j, Hits: hits})
		}
	}
	return strikes
}

// CollisionSystem removes struck targets and credits them to the score.
// Shells fly on after a hit.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update resolves this tick's collisions and returns the number of targets
// destroyed. A target hit by several shells at once is destroyed once.
func (s *CollisionSystem) Update() int {
	strikes := FindStrikes(s.world.Shells, s.world.Targets)
	for _, st := range strikes {
		target := s.world.Targets[st.Index]
		s.world.Targets = slices.Delete(s.world.Targets, st.Index, st.Index+1)
		s.world.Score.Destroyed++
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TargetDestroyed,
			Data: event.TargetDestroyedData{Kind: target.Kind, Hits: st.Hits},
		})
	}
	return len(strikes)
}
