// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-artillery/pkg/render"
)

// WaveIndicator shows the current wave number in Roman numerals, with an
// outline so it stays readable over targets.
type WaveIndicator struct {
	X, Y             float64
	CharWidth        float64 // advance of one glyph, used to centre the label
	Color            color.Color
	MilestoneColor   color.Color // every tenth wave
	OutlineColor     color.Color
	OutlineThickness int
}

func NewWaveIndicator(x, y, charWidth float64, clr, milestone, outline color.Color) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		CharWidth:        charWidth,
		Color:            clr,
		MilestoneColor:   milestone,
		OutlineColor:     outline,
		OutlineThickness: 1,
	}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw centres the label horizontally on X. Nothing is drawn before the
// first wave.
func (i *WaveIndicator) Draw(c render.Canvas, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)

	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = i.MilestoneColor
	}

	x := i.X - float64(len(label))*i.CharWidth/2
	t := i.OutlineThickness
	for dy := -t; dy <= t; dy++ {
		for dx := -t; dx <= t; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			c.DrawText(label, x+float64(dx), i.Y+float64(dy), i.OutlineColor)
		}
	}
	c.DrawText(label, x, i.Y, textColor)
}
