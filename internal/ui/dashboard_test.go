package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futsal/internal/adapters/storage"
	"futsal/internal/domain"
	"futsal/internal/services"
)

func newTestDashboard(t *testing.T, inputs ...services.RecordInput) (*Dashboard, *services.AnalysisService) {
	t.Helper()
	ctx := context.Background()
	repo := storage.NewJSONRepository(storage.NewMemoryStore())
	records := services.NewRecordService(repo)
	for _, in := range inputs {
		_, err := records.Create(ctx, in)
		require.NoError(t, err)
	}
	analysis := services.NewAnalysisService(repo, repo)
	return NewDashboard(ctx, analysis, nil), analysis
}

// load runs the pending report load synchronously
func load(t *testing.T, d *Dashboard, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(reportLoadedMsg)
	require.True(t, ok, "expected reportLoadedMsg, got %T", msg)
	d.Update(msg)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleInputs() []services.RecordInput {
	return []services.RecordInput{
		{Date: "2024-11-02", Matches: 3, Place: "体育館", GoalsRight: 1},
		{Date: "2025-01-05", Matches: 4, Place: "大会", Assists: 2},
		{Date: "2025-02-09", Matches: 5, Place: "体育館", Nutmegs: 1},
	}
}

func TestDashboardEmptyState(t *testing.T) {
	d, _ := newTestDashboard(t)
	assert.Contains(t, d.View(), "Loading")

	load(t, d, d.loadCmd())
	assert.Contains(t, d.View(), "No records yet")
}

func TestDashboardRendersKPIs(t *testing.T) {
	d, _ := newTestDashboard(t, sampleInputs()...)
	load(t, d, d.loadCmd())

	view := d.View()
	assert.Contains(t, view, "Play days")
	assert.Contains(t, view, "Period all / Place all (3 records)")
	assert.Contains(t, view, "Cumulative Goals")
	assert.Equal(t, 12, d.report.KPIs.Matches)
}

func TestDashboardCyclesPeriod(t *testing.T) {
	d, analysis := newTestDashboard(t, sampleInputs()...)
	load(t, d, d.loadCmd())

	assert.Equal(t, []string{"all", "2025", "2024"}, d.PeriodOptions()[:3])

	_, cmd := d.Update(keyMsg("tab"))
	load(t, d, cmd)
	assert.Equal(t, "2025", d.Query().Period.Token())
	assert.Equal(t, 2, d.report.Matched)

	_, cmd = d.Update(keyMsg("shift+tab"))
	load(t, d, cmd)
	assert.True(t, d.Query().Period.IsAll())

	_, cmd = d.Update(keyMsg("shift+tab"))
	load(t, d, cmd)
	last := d.PeriodOptions()[len(d.PeriodOptions())-1]
	assert.Equal(t, last, d.Query().Period.Token())

	remembered := analysis.LastQuery(context.Background())
	assert.Equal(t, last, remembered.Period.Token())
}

func TestDashboardCyclesPlace(t *testing.T) {
	d, _ := newTestDashboard(t, sampleInputs()...)
	load(t, d, d.loadCmd())

	_, cmd := d.Update(keyMsg("v"))
	load(t, d, cmd)
	assert.Equal(t, d.report.PlaceNames[0], d.Query().Place)

	_, cmd = d.Update(keyMsg("V"))
	load(t, d, cmd)
	assert.Equal(t, "", d.Query().Place)
}

func TestDashboardResizeIsDebounced(t *testing.T) {
	d, _ := newTestDashboard(t)

	_, first := d.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	_, second := d.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.NotNil(t, first)
	require.NotNil(t, second)

	d.Update(resizeSettledMsg{generation: 1, width: 100, height: 30})
	assert.Equal(t, defaultWidth, d.width)

	d.Update(resizeSettledMsg{generation: 2, width: 120, height: 40})
	assert.Equal(t, 120, d.width)
	assert.Equal(t, 40, d.height)
}

func TestDashboardStoreChangeReloads(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewJSONRepository(storage.NewMemoryStore())
	changes := make(chan struct{}, 1)
	d := NewDashboard(ctx, services.NewAnalysisService(repo, repo), changes)

	changes <- struct{}{}
	msg := d.waitForChange()()
	assert.IsType(t, storeChangedMsg{}, msg)

	_, cmd := d.Update(msg)
	assert.NotNil(t, cmd)

	close(changes)
	assert.Nil(t, d.waitForChange()())
}

func TestDashboardHelpToggle(t *testing.T) {
	d, _ := newTestDashboard(t)

	d.Update(keyMsg("?"))
	assert.True(t, d.showHelp)
	assert.Contains(t, d.View(), "Filters")

	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, d.showHelp)
}

func TestDashboardQuit(t *testing.T) {
	d, _ := newTestDashboard(t)

	_, cmd := d.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNext(t *testing.T) {
	options := []string{"a", "b", "c"}

	tests := []struct {
		name     string
		current  string
		step     int
		expected string
	}{
		{name: "forward", current: "a", step: 1, expected: "b"},
		{name: "wraps forward", current: "c", step: 1, expected: "a"},
		{name: "wraps backward", current: "a", step: -1, expected: "c"},
		{name: "unknown starts at first", current: "z", step: 1, expected: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, next(options, tt.current, tt.step))
		})
	}

	assert.Equal(t, "x", next(nil, "x", 1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.LessOrEqual(t, len([]rune(truncate(domain.DefaultPlaces[5], 10))), 10)
}
