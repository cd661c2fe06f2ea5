package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions
var (
	RgbBackground = tcell.ColorReset
	RgbText       = tcell.NewRGBColor(220, 220, 220)
	RgbDim        = tcell.NewRGBColor(130, 130, 130)
	RgbTitle      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbMoney      = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbCost       = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbDone       = tcell.NewRGBColor(100, 200, 100)
	RgbLocked     = tcell.NewRGBColor(120, 120, 120)
	RgbWarning    = tcell.NewRGBColor(255, 80, 80)
	RgbMessage    = tcell.NewRGBColor(255, 165, 0) // Orange
	RgbZone       = tcell.NewRGBColor(255, 255, 255)
	RgbHighlight  = tcell.NewRGBColor(255, 255, 0)
	RgbPlanet     = tcell.NewRGBColor(180, 120, 255)
	RgbShip       = tcell.NewRGBColor(0, 200, 200)
	RgbGlitch     = tcell.NewRGBColor(0, 255, 100)
)

// Base styles
var (
	StyleDefault   = tcell.StyleDefault.Foreground(RgbText).Background(RgbBackground)
	StyleDim       = StyleDefault.Foreground(RgbDim)
	StyleTitle     = StyleDefault.Foreground(RgbTitle).Bold(true)
	StyleMoney     = StyleDefault.Foreground(RgbMoney).Bold(true)
	StyleCost      = StyleDefault.Foreground(RgbCost)
	StyleDone      = StyleDefault.Foreground(RgbDone)
	StyleLocked    = StyleDefault.Foreground(RgbLocked)
	StyleWarning   = StyleDefault.Foreground(RgbWarning).Bold(true)
	StyleMessage   = StyleDefault.Foreground(RgbMessage)
	StyleZone      = StyleDefault.Foreground(RgbZone).Bold(true)
	StyleHighlight = StyleDefault.Foreground(tcell.ColorBlack).Background(RgbHighlight).Bold(true)
	StyleGlitch    = StyleDefault.Foreground(RgbGlitch)
)

// Gradient endpoints
var (
	gradientLow  = colorful.Color{R: 0.85, G: 0.15, B: 0.15}
	gradientMid  = colorful.Color{R: 1.00, G: 0.75, B: 0.10}
	gradientHigh = colorful.Color{R: 0.20, G: 0.85, B: 0.45}
)

// GaugeColor maps progress in [0, 1] to red → amber → green, blended in HCL for even brightness
func GaugeColor(progress float64) tcell.Color {
	progress = max(0, min(1, progress))
	var c colorful.Color
	if progress < 0.5 {
		c = gradientLow.BlendHcl(gradientMid, progress*2)
	} else {
		c = gradientMid.BlendHcl(gradientHigh, (progress-0.5)*2)
	}
	return toTcell(c.Clamped())
}

// Fade darkens a color toward black by t in [0, 1]
func Fade(col tcell.Color, t float64) tcell.Color {
	r, g, b := col.RGB()
	if r < 0 {
		return col
	}
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	return toTcell(c.BlendLab(colorful.Color{}, max(0, min(1, t))).Clamped())
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
