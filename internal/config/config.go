// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 800
	ScreenHeight   = 600
	TicksPerSecond = 15
	WindowTitle    = "The gun of Khiryanov"

	Gravity    = 2.0
	TimeStep   = 1.0
	ChargeStep = 2.0

	ShellRadius = 20.0

	CannonMargin   = 30.0 // cannons keep this far from the side walls
	CannonFloorGap = 50.0 // cannons stand this far above the bottom edge
	MinPower       = 10.0
	MaxPower       = 50.0
	PlayerStep     = 10.0
	PlayerX        = 30.0

	EnemyFirePercent = 5
	EnemyAimReach    = 100.0

	TargetBaseRadius = 30
	TargetSpeed      = 3.0
	TargetsPerKind   = 3

	ScoreFontSize  = 25
	ScoreX         = 10.0
	ScoreY         = 10.0
	ScoreLineStep  = 30.0
	LabelCharWidth = 15.0 // glyph advance of the score font

	WaveX          = ScreenWidth - 60.0
	WaveY          = 10.0
	PauseGlyphSize = 20.0
	PauseVeilAlpha = 160

	PauseButtonX    = ScreenWidth / 2.0
	PauseButtonY    = 25.0
	PauseButtonSize = 10.0

	AssetsDir     = "assets"
	ButterflyFile = "butterfly.png"
	BirdFile      = "bird.png"
)

var (
	White  = color.RGBA{255, 255, 255, 255}
	Black  = color.RGBA{0, 0, 0, 255}
	Pink   = color.RGBA{255, 220, 255, 255}
	Blue   = color.RGBA{153, 153, 255, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Purple = color.RGBA{220, 200, 255, 255}

	BackgroundColor = Purple
	PlayerColor     = Pink
	TextDarkColor   = Black
	TextLightColor  = White
)
