// pkg/render/color.go
package render

import "image/color"

// IntSource is the slice of a random generator that colour picking needs.
type IntSource interface {
	Intn(n int) int
}

// RandColor returns an opaque colour with every channel uniform in [0, 255].
func RandColor(rng IntSource) color.RGBA {
	return color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
