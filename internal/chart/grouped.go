package chart

import (
	"image/color"
	"math"
	"strconv"
)

// Grouped bar geometry in logical pixels
const (
	GroupedHeight = 260
	groupedTop    = 22
	headroom      = 1.15
	groupBarW     = 14
	innerGap      = 2
	groupGap      = 10
)

// Series is one metric plotted across every group
type Series struct {
	Color  color.Color
	Name   string
	Values []int
}

func groupWidth(seriesCount int) float64 {
	if seriesCount < 1 {
		return 0
	}
	return float64(seriesCount*groupBarW + (seriesCount-1)*innerGap)
}

// GroupedWidth returns the logical width needed for groups of seriesCount bars.
// It grows linearly with the group count so long histories scroll horizontally.
func GroupedWidth(groups, seriesCount int) int {
	return int(math.Ceil(Padding + groupGap + float64(groups)*(groupWidth(seriesCount)+groupGap)))
}

// NewGroupedCanvas sizes a canvas for a grouped chart, never narrower than MinWidth
func NewGroupedCanvas(groups, seriesCount int, scale float64) *Canvas {
	return NewCanvas(max(MinWidth, GroupedWidth(groups, seriesCount)), GroupedHeight, scale)
}

// DrawGroupedBars draws one group of adjacent bars per label.
// All series share one scale with 15% headroom above the tallest bar.
func DrawGroupedBars(c *Canvas, labels []string, series []Series) {
	drawAxes(c, groupedTop)

	if len(labels) == 0 || len(series) == 0 {
		return
	}

	h := float64(c.Height())
	usableH := h - Padding - groupedTop

	rawMax := 1
	for _, s := range series {
		for _, v := range s.Values {
			rawMax = max(rawMax, v)
		}
	}
	maxV := float64(rawMax) * headroom
	gw := groupWidth(len(series))

	for i := range labels {
		baseX := Padding + groupGap + float64(i)*(gw+groupGap)

		for si, s := range series {
			v := 0
			if i < len(s.Values) {
				v = s.Values[i]
			}
			barH := float64(v) / maxV * usableH
			x := baseX + float64(si*(groupBarW+innerGap))
			y := groupedTop + (usableH - barH)

			c.FillRect(x, y, groupBarW, barH, s.Color)
			if v > 0 {
				c.Text(strconv.Itoa(v), x+groupBarW/2, math.Max(groupedTop+12, y-4), ColorWhite, AlignCenter)
			}
		}

		c.Text(labels[i], baseX+gw/2, h-Padding+labelDrop, ColorLabel, AlignCenter)
	}
}
