package chart

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futsal/internal/analytics"
)

func TestNewCanvas_ScalesBackingImage(t *testing.T) {
	c := NewCanvas(300, 240, 2)

	assert.Equal(t, 300, c.Width())
	assert.Equal(t, 600, c.Image().Bounds().Dx())
	assert.Equal(t, 480, c.Image().Bounds().Dy())
}

func TestNewCanvas_FloorsFractionalScale(t *testing.T) {
	c := NewCanvas(301, 241, 1.5)

	assert.Equal(t, 451, c.Image().Bounds().Dx())
	assert.Equal(t, 361, c.Image().Bounds().Dy())
}

func TestNewCanvas_InvalidScaleFallsBackToOne(t *testing.T) {
	c := NewCanvas(100, 50, 0)

	assert.Equal(t, 1.0, c.Scale())
	assert.Equal(t, 100, c.Image().Bounds().Dx())
}

func TestNewFixedCanvas_EnforcesMinimum(t *testing.T) {
	c := NewFixedCanvas(100, 100, 1)

	assert.Equal(t, MinWidth, c.Width())
	assert.Equal(t, MinHeight, c.Height())
}

func TestGroupedWidth(t *testing.T) {
	// padding 34 + gap 10 + n * (3*14 + 2*2 + 10)
	assert.Equal(t, 44, GroupedWidth(0, 3))
	assert.Equal(t, 100, GroupedWidth(1, 3))
	assert.Equal(t, 44+56*10, GroupedWidth(10, 3))
}

func TestDrawBarChart_TallestBarReachesTop(t *testing.T) {
	c := NewFixedCanvas(MinWidth, MinHeight, 1)

	DrawBarChart(c, []string{"a", "b"}, []int{0, 5}, []color.Color{ColorGreen, ColorRed})

	// bar b spans from y=10 to the baseline at h-34
	usableW := float64(MinWidth - Padding - rightInset)
	barW := (usableW - barGap*3) / 2
	x := int(Padding + barGap + barW + barGap + barW/2)
	_, _, _, a := c.Image().At(x, 20).RGBA()
	assert.NotZero(t, a, "expected bar pixel near the top")
	_, _, _, a = c.Image().At(x, MinHeight-Padding-2).RGBA()
	assert.NotZero(t, a, "expected bar pixel near the baseline")
}

func TestDrawBarChart_ZeroValuesDoNotPanic(t *testing.T) {
	c := NewFixedCanvas(MinWidth, MinHeight, 2)

	assert.NotPanics(t, func() {
		DrawBarChart(c, []string{"a", "b", "c"}, []int{0, 0, 0}, nil)
		DrawBarChart(c, nil, nil, nil)
	})
}

func TestDrawGroupedBars_HeadroomKeepsTopClear(t *testing.T) {
	rows := []analytics.TrendRow{{Date: "2025-01-01", Goals: 10, Assists: 1, Nutmegs: 1}}
	c := NewGroupedCanvas(len(rows), 3, 1)

	DrawGroupedBars(c, analytics.TrendLabels(rows), TrendSeries(rows))

	// usable height 204; tallest bar is 204/1.15 ~ 177px, so its top sits near y=49
	x := Padding + groupGap + groupBarW/2
	_, _, _, top := c.Image().At(x, groupedTop+5).RGBA()
	_, _, _, body := c.Image().At(x, GroupedHeight-Padding-5).RGBA()
	assert.Zero(t, top)
	assert.NotZero(t, body)
}

func TestEncodePNG(t *testing.T) {
	c := TrendChart([]analytics.TrendRow{
		{Date: "2025-01-01", Goals: 1},
		{Date: "2025-01-01", Goals: 2, Assists: 1},
	}, 2)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, c))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, MinWidth*2, img.Bounds().Dx())
	assert.Equal(t, GroupedHeight*2, img.Bounds().Dy())
}

func TestRender(t *testing.T) {
	for _, name := range Names {
		c, ok := Render(name, analytics.Totals{GoalsRight: 1}, nil, 1)
		assert.True(t, ok, name)
		assert.NotNil(t, c, name)
	}

	_, ok := Render("pie", analytics.Totals{}, nil, 1)
	assert.False(t, ok)
}

func TestRenderTerminalBars(t *testing.T) {
	out := RenderTerminalBars("Goals", []TermBar{
		{Label: "Right", Value: 4},
		{Label: "Left", Value: 0},
		{Label: "Head", Value: 1},
	}, 40)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Right")
	assert.True(t, strings.HasSuffix(lines[1], " 4"))
	assert.NotContains(t, lines[2], barRune)
	assert.Contains(t, lines[3], barRune)
}

func TestRenderTerminalTrend_Empty(t *testing.T) {
	assert.Contains(t, RenderTerminalTrend(nil, 40, 10), "No records")
}
