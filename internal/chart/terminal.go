package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"futsal/internal/analytics"
	"futsal/internal/theme"
)

const (
	barRune      = "█"
	minTermWidth = 10
)

// TermBar is one horizontal bar of a terminal chart
type TermBar struct {
	Color theme.Color
	Label string
	Value int
}

// RenderTerminalBars renders horizontal bars scaled to width cells.
// This is used by both the dashboard and the CLI to ensure consistent formatting.
func RenderTerminalBars(title string, bars []TermBar, width int) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(theme.SubtitleStyle.Render(title))
		sb.WriteString("\n")
	}

	labelW := 0
	maxV := 1
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		maxV = max(maxV, b.Value)
	}
	barSpace := max(minTermWidth, width-labelW-8)

	labelStyle := theme.ChartLegendStyle.Width(labelW + 1)
	for _, b := range bars {
		n := b.Value * barSpace / maxV
		if b.Value > 0 && n == 0 {
			n = 1
		}
		sb.WriteString(labelStyle.Render(b.Label))
		sb.WriteString(theme.MetricStyle(b.Color).Render(strings.Repeat(barRune, n)))
		sb.WriteString(fmt.Sprintf(" %d\n", b.Value))
	}
	return sb.String()
}

// RenderTerminalTrend renders the last rows of the cumulative trend, one block per metric
func RenderTerminalTrend(rows []analytics.TrendRow, width, last int) string {
	if len(rows) == 0 {
		return theme.EmptyStateStyle.Render("No records to chart")
	}
	labels := analytics.TrendLabels(rows)
	if last > 0 && len(rows) > last {
		rows = rows[len(rows)-last:]
		labels = labels[len(labels)-last:]
	}

	metrics := []struct {
		color theme.Color
		name  string
		value func(analytics.TrendRow) int
	}{
		{theme.ColorGoals, "Goals", func(r analytics.TrendRow) int { return r.Goals }},
		{theme.ColorAssists, "Assists", func(r analytics.TrendRow) int { return r.Assists }},
		{theme.ColorNutmegs, "Nutmegs", func(r analytics.TrendRow) int { return r.Nutmegs }},
	}

	var blocks []string
	for _, m := range metrics {
		bars := make([]TermBar, len(rows))
		for i, r := range rows {
			bars[i] = TermBar{Color: m.color, Label: labels[i], Value: m.value(r)}
		}
		blocks = append(blocks, RenderTerminalBars("Cumulative "+m.name, bars, width))
	}
	return strings.Join(blocks, "\n")
}

// GoalBars returns the goal breakdown as terminal bars
func GoalBars(t analytics.Totals) []TermBar {
	return []TermBar{
		{Color: theme.ColorGoals, Label: "Right", Value: t.GoalsRight},
		{Color: theme.ColorAssists, Label: "Left", Value: t.GoalsLeft},
		{Color: theme.ColorNutmegs, Label: "Head", Value: t.GoalsHead},
	}
}

// NutmegBars returns the nutmeg breakdown as terminal bars
func NutmegBars(t analytics.Totals) []TermBar {
	d := t.NutmegDetails
	return []TermBar{
		{Color: theme.ColorNutmegs, Label: "Goal", Value: d.Goal},
		{Color: theme.ColorAssists, Label: "Assist pass", Value: d.AssistPass},
		{Color: theme.ColorGoals, Label: "Pass", Value: d.Pass},
		{Color: theme.ColorPurple, Label: "Dribble", Value: d.Dribble},
		{Color: theme.ColorRed, Label: "Only", Value: d.Only},
	}
}
