package chart

import (
	"image/color"

	"futsal/internal/analytics"
)

// Chart names exposed by the CLI and the HTTP API
const (
	NameGoals   = "goals"
	NameNutmegs = "nutmegs"
	NameTrend   = "trend"
)

// Names lists every renderable chart
var Names = []string{NameTrend, NameGoals, NameNutmegs}

// TrendSeries splits cumulative rows into goal, assist and nutmeg series
func TrendSeries(rows []analytics.TrendRow) []Series {
	goals := make([]int, len(rows))
	assists := make([]int, len(rows))
	nutmegs := make([]int, len(rows))
	for i, r := range rows {
		goals[i] = r.Goals
		assists[i] = r.Assists
		nutmegs[i] = r.Nutmegs
	}
	return []Series{
		{Color: ColorGreen, Name: "Goals", Values: goals},
		{Color: ColorBlue, Name: "Assists", Values: assists},
		{Color: ColorAmber, Name: "Nutmegs", Values: nutmegs},
	}
}

// TrendChart renders the cumulative trend as grouped bars
func TrendChart(rows []analytics.TrendRow, scale float64) *Canvas {
	series := TrendSeries(rows)
	c := NewGroupedCanvas(len(rows), len(series), scale)
	c.Clear(Background)
	DrawGroupedBars(c, analytics.TrendLabels(rows), series)
	return c
}

// GoalBreakdownChart renders right foot, left foot and head goals
func GoalBreakdownChart(t analytics.Totals, scale float64) *Canvas {
	c := NewFixedCanvas(MinWidth, MinHeight, scale)
	c.Clear(Background)
	DrawBarChart(c,
		[]string{"Right", "Left", "Head"},
		[]int{t.GoalsRight, t.GoalsLeft, t.GoalsHead},
		[]color.Color{ColorGreen, ColorBlue, ColorAmber},
	)
	return c
}

// NutmegBreakdownChart renders the five nutmeg sub-categories
func NutmegBreakdownChart(t analytics.Totals, scale float64) *Canvas {
	d := t.NutmegDetails
	c := NewFixedCanvas(MinWidth, MinHeight, scale)
	c.Clear(Background)
	DrawBarChart(c,
		[]string{"G", "AS", "P", "D", "Only"},
		[]int{d.Goal, d.AssistPass, d.Pass, d.Dribble, d.Only},
		[]color.Color{ColorAmber, ColorBlue, ColorGreen, ColorPurple, ColorRed},
	)
	return c
}

// Render builds the named chart, reporting false for unknown names
func Render(name string, kpis analytics.Totals, rows []analytics.TrendRow, scale float64) (*Canvas, bool) {
	switch name {
	case NameTrend:
		return TrendChart(rows, scale), true
	case NameGoals:
		return GoalBreakdownChart(kpis, scale), true
	case NameNutmegs:
		return NutmegBreakdownChart(kpis, scale), true
	default:
		return nil, false
	}
}
