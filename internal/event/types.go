// internal/event/types.go
package event

import "go-artillery/internal/component"

const (
	ShellFired      EventType = "ShellFired"      // data: ShellFiredData
	TargetDestroyed EventType = "TargetDestroyed" // data: TargetDestroyedData
	ShellSettled    EventType = "ShellSettled"    // data: *component.Shell
	WaveSpawned     EventType = "WaveSpawned"     // data: WaveSpawnedData
)

type ShellFiredData struct {
	Shell *component.Shell
}

type TargetDestroyedData struct {
	Kind component.Kind
	// Hits is the number of shells that struck the target in the same tick.
	Hits int
}

type WaveSpawnedData struct {
	Number  int
	Targets int
	Score   int
}
