// internal/ui/score_panel.go
package ui

import (
	"fmt"
	"image/color"

	"go-artillery/internal/component"
	"go-artillery/pkg/render"
)

// ScorePanel prints the score table in the top-left corner.
type ScorePanel struct {
	X, Y       float64
	LineStep   float64
	DarkColor  color.Color
	LightColor color.Color
}

func NewScorePanel(x, y, lineStep float64, dark, light color.Color) *ScorePanel {
	return &ScorePanel{
		X:          x,
		Y:          y,
		LineStep:   lineStep,
		DarkColor:  dark,
		LightColor: light,
	}
}

// Lines returns the three lines of the panel.
func (p *ScorePanel) Lines(s component.ScoreTable) []string {
	return []string{
		fmt.Sprintf("Destroyed: %d", s.Destroyed),
		fmt.Sprintf("Balls used: %d", s.Used),
		fmt.Sprintf("Total: %d", s.Score()),
	}
}

// Draw renders the counters in the dark colour and the total in the light one.
func (p *ScorePanel) Draw(c render.Canvas, s component.ScoreTable) {
	for i, line := range p.Lines(s) {
		clr := p.DarkColor
		if i == 2 {
			clr = p.LightColor
		}
		c.DrawText(line, p.X, p.Y+float64(i)*p.LineStep, clr)
	}
}
