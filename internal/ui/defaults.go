// internal/ui/defaults.go
package ui

import (
	"go-artillery/internal/config"
	"go-artillery/pkg/render"
)

// DefaultScorePanel places the score table in the top-left corner.
func DefaultScorePanel() *ScorePanel {
	return NewScorePanel(config.ScoreX, config.ScoreY, config.ScoreLineStep, config.TextDarkColor, config.TextLightColor)
}

// DefaultWaveIndicator places the wave label in the top-right corner.
func DefaultWaveIndicator() *WaveIndicator {
	return NewWaveIndicator(config.WaveX, config.WaveY, config.LabelCharWidth, config.TextDarkColor, config.Red, config.TextLightColor)
}

// DefaultPauseIndicator covers the whole screen with a darkened background.
func DefaultPauseIndicator() *PauseIndicator {
	veil := render.DarkenColor(config.BackgroundColor)
	veil.A = config.PauseVeilAlpha
	return NewPauseIndicator(config.ScreenWidth, config.ScreenHeight, config.PauseGlyphSize, config.LabelCharWidth, veil, config.White)
}
