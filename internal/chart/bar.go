package chart

import (
	"image/color"
	"math"
	"strconv"
)

// Layout constants in logical pixels
const (
	Padding    = 34
	rightInset = 10
	barGap     = 10
	minBarW    = 18
	labelDrop  = 18
)

// drawAxes draws the y axis from top to the baseline and the x axis to the right inset
func drawAxes(c *Canvas, top float64) {
	w, h := float64(c.Width()), float64(c.Height())
	c.VLine(Padding, top, h-Padding, ColorAxis)
	c.HLine(Padding, w-rightInset, h-Padding, ColorAxis)
}

// DrawBarChart draws one bar per label on a shared scale of max(1, values...).
// colors[i] colors bar i; missing colors fall back to green.
func DrawBarChart(c *Canvas, labels []string, values []int, colors []color.Color) {
	drawAxes(c, rightInset)

	n := len(labels)
	if n == 0 {
		return
	}

	w, h := float64(c.Width()), float64(c.Height())
	usableW := w - Padding - rightInset
	usableH := h - Padding - rightInset
	maxV := 1
	for _, v := range values {
		maxV = max(maxV, v)
	}
	barW := math.Max(minBarW, (usableW-barGap*float64(n+1))/float64(n))

	for i := 0; i < n; i++ {
		v := 0
		if i < len(values) {
			v = values[i]
		}
		var col color.Color = ColorGreen
		if i < len(colors) && colors[i] != nil {
			col = colors[i]
		}

		x := Padding + barGap + float64(i)*(barW+barGap)
		barH := float64(v) / float64(maxV) * usableH
		y := rightInset + (usableH - barH)

		c.FillRect(x, y, barW, barH, col)
		c.Text(strconv.Itoa(v), x+4, math.Max(18, y-6), ColorValue, AlignLeft)
		c.Text(labels[i], x, h-Padding+labelDrop, ColorLabel, AlignLeft)
	}
}
