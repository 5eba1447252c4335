package window

import (
	"image/color"

	"github.com/vovakirdan/skyfaller/internal/core"
)

// Background is the sky the cubes fall through; fog fades toward it.
var Background = color.RGBA{R: 12, G: 14, B: 28, A: 255}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 200, G: 200, B: 200, A: 255},
	core.ColorRed:          {R: 170, G: 30, B: 30, A: 255},
	core.ColorGreen:        {R: 30, G: 160, B: 60, A: 255},
	core.ColorYellow:       {R: 180, G: 160, B: 30, A: 255},
	core.ColorCyan:         {R: 30, G: 150, B: 170, A: 255},
	core.ColorWhite:        {R: 200, G: 200, B: 200, A: 255},
	core.ColorBrightRed:    {R: 255, G: 60, B: 60, A: 255},
	core.ColorBrightGreen:  {R: 60, G: 230, B: 90, A: 255},
	core.ColorBrightYellow: {R: 255, G: 230, B: 60, A: 255},
	core.ColorBrightCyan:   {R: 80, G: 220, B: 255, A: 255},
	core.ColorBrightWhite:  {R: 255, G: 255, B: 255, A: 255},
	core.ColorGray:         {R: 128, G: 128, B: 128, A: 255},
	core.ColorDarkGray:     {R: 70, G: 70, B: 70, A: 255},
}

// RGBA returns the display color for c.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// Fogged blends c toward the background by fog (0 clear, 1 gone).
func Fogged(c color.RGBA, fog float64) color.RGBA {
	fog = core.ClampF(fog, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*fog + 0.5)
	}
	return color.RGBA{
		R: mix(c.R, Background.R),
		G: mix(c.G, Background.G),
		B: mix(c.B, Background.B),
		A: 255,
	}
}

// shade darkens c for cube outlines.
func shade(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
