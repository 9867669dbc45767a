// internal/ui/pause_indicator.go
package ui

import (
	"image/color"

	"go-artillery/pkg/render"
)

const pauseLabel = "PAUSED"

// PauseIndicator veils the frozen frame and shows a pause glyph with a label.
type PauseIndicator struct {
	Width, Height float64
	Size          float64 // half-height of the glyph
	CharWidth     float64
	Veil          color.Color
	Color         color.Color
}

func NewPauseIndicator(width, height, size, charWidth float64, veil, clr color.Color) *PauseIndicator {
	return &PauseIndicator{
		Width:     width,
		Height:    height,
		Size:      size,
		CharWidth: charWidth,
		Veil:      veil,
		Color:     clr,
	}
}

func (p *PauseIndicator) Draw(c render.Canvas) {
	c.FillRect(0, 0, p.Width, p.Height, p.Veil)

	cx, cy := p.Width/2, p.Height/2
	barWidth := p.Size * 0.6
	barHeight := p.Size * 2
	spacing := p.Size * 0.4
	c.FillRect(cx-barWidth-spacing/2, cy-barHeight, barWidth, barHeight, p.Color)
	c.FillRect(cx+spacing/2, cy-barHeight, barWidth, barHeight, p.Color)

	x := cx - float64(len(pauseLabel))*p.CharWidth/2
	c.DrawText(pauseLabel, x, cy+p.Size/2, p.Color)
}
