// Package chart rasterizes bar and grouped-bar charts onto an RGBA canvas
// and renders compact bar charts for the terminal.
package chart

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Minimum logical size of fixed-size charts
const (
	MinWidth  = 300
	MinHeight = 240
)

// Align positions text horizontally relative to its anchor
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

var face = basicfont.Face7x13

// Canvas is a drawing surface addressed in logical pixels.
// The backing image is floor(w*scale) x floor(h*scale) device pixels.
type Canvas struct {
	height int
	img    *image.RGBA
	scale  float64
	width  int
}

// NewCanvas creates a transparent canvas of w x h logical pixels
func NewCanvas(w, h int, scale float64) *Canvas {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	dw := int(math.Floor(float64(w) * scale))
	dh := int(math.Floor(float64(h) * scale))
	return &Canvas{
		height: h,
		img:    image.NewRGBA(image.Rect(0, 0, dw, dh)),
		scale:  scale,
		width:  w,
	}
}

// NewFixedCanvas creates a canvas no smaller than MinWidth x MinHeight
func NewFixedCanvas(w, h int, scale float64) *Canvas {
	return NewCanvas(max(MinWidth, w), max(MinHeight, h), scale)
}

// Width returns the logical width
func (c *Canvas) Width() int { return c.width }

// Height returns the logical height
func (c *Canvas) Height() int { return c.height }

// Scale returns the device pixel ratio
func (c *Canvas) Scale() float64 { return c.scale }

// Image returns the backing device-pixel image
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the whole canvas with bg
func (c *Canvas) Clear(bg color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (c *Canvas) px(v float64) int {
	return int(math.Round(v * c.scale))
}

// FillRect composites a rectangle given in logical pixels
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(c.px(x), c.px(y), c.px(x+w), c.px(y+h))
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// HLine draws a 1px horizontal line from x0 to x1 at y
func (c *Canvas) HLine(x0, x1, y float64, col color.Color) {
	c.FillRect(x0, y, x1-x0, 1, col)
}

// VLine draws a 1px vertical line from y0 to y1 at x
func (c *Canvas) VLine(x, y0, y1 float64, col color.Color) {
	c.FillRect(x, y0, 1, y1-y0, col)
}

// TextWidth returns the logical width of s
func TextWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// Text draws s with its baseline at y.
// Glyphs are rasterized at logical size and scaled up nearest-neighbour.
func (c *Canvas) Text(s string, x, y float64, col color.Color, align Align) {
	if s == "" {
		return
	}
	tw := TextWidth(s)
	if align == AlignCenter {
		x -= float64(tw) / 2
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	th := ascent + metrics.Descent.Ceil()

	glyphs := image.NewRGBA(image.Rect(0, 0, tw, th))
	d := &font.Drawer{
		Dst:  glyphs,
		Face: face,
		Src:  image.NewUniform(col),
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(ascent)},
	}
	d.DrawString(s)

	top := y - float64(ascent)
	dst := image.Rect(c.px(x), c.px(top), c.px(x+float64(tw)), c.px(top+float64(th)))
	xdraw.NearestNeighbor.Scale(c.img, dst, glyphs, glyphs.Bounds(), xdraw.Over, nil)
}
