// internal/component/score.go
package component

// ScoreTable counts destroyed targets and shells the player used.
type ScoreTable struct {
	Destroyed int
	Used      int
}

// Score is destroyed targets minus shells used; it may go negative.
func (s ScoreTable) Score() int {
	return s.Destroyed - s.Used
}
