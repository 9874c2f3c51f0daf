package chart

import "image/color"

// Palette shared by every chart
var (
	ColorAxis   = color.NRGBA{R: 156, G: 163, B: 175, A: 89}
	ColorLabel  = color.NRGBA{R: 156, G: 163, B: 175, A: 230}
	ColorValue  = color.NRGBA{R: 229, G: 231, B: 235, A: 242}
	ColorWhite  = color.NRGBA{R: 255, G: 255, B: 255, A: 242}
	ColorGreen  = color.NRGBA{R: 34, G: 197, B: 94, A: 217}
	ColorBlue   = color.NRGBA{R: 96, G: 165, B: 250, A: 217}
	ColorAmber  = color.NRGBA{R: 245, G: 158, B: 11, A: 217}
	ColorPurple = color.NRGBA{R: 168, G: 85, B: 247, A: 217}
	ColorRed    = color.NRGBA{R: 239, G: 68, B: 68, A: 217}
	Background  = color.NRGBA{R: 17, G: 24, B: 39, A: 255}
)
