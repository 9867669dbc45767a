// internal/entity/ecs.go
package entity

import (
	"go-artillery/internal/component"
	"go-artillery/pkg/physics"
)

// World holds every piece of mutable simulation state. Systems read and
// write it; nothing else does.
type World struct {
	Arena   physics.Arena
	Shells  []*component.Shell
	Targets []*component.Target
	Player  *component.Cannon
	Enemies []*component.Enemy
	Score   component.ScoreTable
	Wave    int
}

func NewWorld(arena physics.Arena) *World {
	return &World{
		Arena:   arena,
		Shells:  make([]*component.Shell, 0, 16),
		Targets: make([]*component.Target, 0, 16),
	}
}

// AddShell puts a freshly fired shell into play.
func (w *World) AddShell(s *component.Shell) {
	if s != nil {
		w.Shells = append(w.Shells, s)
	}
}

// Empty reports whether the board holds neither shells nor targets.
func (w *World) Empty() bool {
	return len(w.Shells) == 0 && len(w.Targets) == 0
}
