package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbRocks      = tcell.NewRGBColor(110, 104, 98)  // Warm gray
	RgbRocksShade = tcell.NewRGBColor(72, 68, 64)    // Dark gray
	RgbSpear      = tcell.NewRGBColor(120, 190, 90)  // Asparagus green
	RgbSpearTip   = tcell.NewRGBColor(170, 120, 190) // Purple tip
	RgbHUD        = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbBest       = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbLoss       = tcell.NewRGBColor(255, 80, 80)   // Red

	RgbControlFg = tcell.NewRGBColor(0, 0, 0)       // Dark text
	RgbControlBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbRetryBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
)

// Plank gradient endpoints, blended by tilt
var (
	plankCalm   = colorful.Color{R: 0xaa / 255.0, G: 0x80 / 255.0, B: 0x8d / 255.0}
	plankDanger = colorful.Color{R: 1, G: 0.31, B: 0.31}
)

// PlankColor blends from the calm plank color to red as |angle| approaches fallAngle
func PlankColor(angle, fallAngle float64) tcell.Color {
	t := 0.0
	if fallAngle > 0 {
		t = math.Min(1, math.Abs(angle)/fallAngle)
	}
	// Ease in so small wobbles keep the calm color
	c := plankCalm.BlendLab(plankDanger, t*t).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
