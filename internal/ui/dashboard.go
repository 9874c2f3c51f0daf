package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"futsal/internal/analytics"
	"futsal/internal/chart"
	"futsal/internal/domain"
	"futsal/internal/logging"
	"futsal/internal/services"
	"futsal/internal/theme"
	"futsal/internal/version"
	"futsal/internal/watch"
)

const (
	defaultWidth = 80
	trendWindow  = 12
	tableRows    = 8
)

// Dashboard is the terminal analysis screen
type Dashboard struct {
	analysis  *services.AnalysisService
	changes   <-chan struct{}
	ctx       context.Context
	height    int
	help      *HelpScreen
	keys      KeyMap
	loaded    bool
	query     services.Query
	report    services.Report
	resizeGen int
	scroll    int
	showHelp  bool
	width     int
}

// NewDashboard creates the analysis screen starting from the remembered filter.
// changes may be nil when no store watcher is running.
func NewDashboard(ctx context.Context, analysis *services.AnalysisService, changes <-chan struct{}) *Dashboard {
	keys := NewKeyMap()
	return &Dashboard{
		analysis: analysis,
		changes:  changes,
		ctx:      ctx,
		help:     NewHelpScreen(&keys),
		keys:     keys,
		query:    analysis.LastQuery(ctx),
		width:    defaultWidth,
	}
}

// Init implements tea.Model
func (d *Dashboard) Init() tea.Cmd {
	return tea.Batch(d.loadCmd(), d.waitForChange())
}

// Update implements tea.Model
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		d.report = msg.report
		d.loaded = true
		d.scroll = min(d.scroll, max(0, len(d.report.Trend)-1))
		return d, nil

	case storeChangedMsg:
		logging.Logger.Debug("Store changed, reloading dashboard")
		return d, tea.Batch(d.loadCmd(), d.waitForChange())

	case tea.WindowSizeMsg:
		d.resizeGen++
		gen := d.resizeGen
		return d, tea.Tick(watch.DefaultDelay, func(time.Time) tea.Msg {
			return resizeSettledMsg{generation: gen, height: msg.Height, width: msg.Width}
		})

	case resizeSettledMsg:
		if msg.generation != d.resizeGen {
			return d, nil
		}
		d.width = msg.width
		d.height = msg.height
		d.help.Resize(msg.width, msg.height)
		return d, nil

	case tea.KeyMsg:
		if d.showHelp {
			d.help.Update(msg)
			if d.help.Completed {
				d.showHelp = false
				d.help.Completed = false
			}
			return d, nil
		}
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Quit):
		return d, tea.Quit
	case key.Matches(msg, d.keys.Help):
		d.showHelp = true
		return d, nil
	case key.Matches(msg, d.keys.Reload):
		return d, d.loadCmd()
	case key.Matches(msg, d.keys.NextPeriod):
		return d, d.cyclePeriod(1)
	case key.Matches(msg, d.keys.PrevPeriod):
		return d, d.cyclePeriod(-1)
	case key.Matches(msg, d.keys.NextPlace):
		return d, d.cyclePlace(1)
	case key.Matches(msg, d.keys.PrevPlace):
		return d, d.cyclePlace(-1)
	case key.Matches(msg, d.keys.NextTag):
		tags := append([]string{analytics.AllTags}, d.report.VideoTags...)
		d.query.Tag = next(tags, d.report.Tag, 1)
		return d, d.loadCmd()
	case key.Matches(msg, d.keys.ScrollLeft):
		if d.scroll < len(d.report.Trend)-trendWindow {
			d.scroll++
		}
		return d, nil
	case key.Matches(msg, d.keys.ScrollRight):
		if d.scroll > 0 {
			d.scroll--
		}
		return d, nil
	}
	return d, nil
}

// PeriodOptions lists all, then years, then months, matching the filter dropdown
func (d *Dashboard) PeriodOptions() []string {
	options := []string{domain.AllToken}
	for _, y := range d.report.Years {
		options = append(options, y.Key)
	}
	return append(options, d.report.YearMonths...)
}

// PlaceOptions lists all venues preceded by "" for no restriction
func (d *Dashboard) PlaceOptions() []string {
	return append([]string{""}, d.report.PlaceNames...)
}

// Query returns the active filter
func (d *Dashboard) Query() services.Query {
	return d.query
}

func (d *Dashboard) cyclePeriod(step int) tea.Cmd {
	token := next(d.PeriodOptions(), d.query.Period.Token(), step)
	period, err := domain.ParsePeriod(token)
	if err != nil {
		period = domain.AllPeriods
	}
	d.query.Period = period
	d.scroll = 0
	return d.applyFilter()
}

func (d *Dashboard) cyclePlace(step int) tea.Cmd {
	d.query.Place = next(d.PlaceOptions(), d.query.Place, step)
	d.scroll = 0
	return d.applyFilter()
}

func (d *Dashboard) applyFilter() tea.Cmd {
	if err := d.analysis.RememberFilter(d.ctx, d.query); err != nil {
		logging.Logger.Warn("Failed to remember filter", "error", err)
	}
	return d.loadCmd()
}

func (d *Dashboard) loadCmd() tea.Cmd {
	q := d.query
	return func() tea.Msg {
		return reportLoadedMsg{report: d.analysis.Build(d.ctx, q)}
	}
}

func (d *Dashboard) waitForChange() tea.Cmd {
	if d.changes == nil {
		return nil
	}
	changes := d.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// next returns the option step positions away from current, wrapping around
func next(options []string, current string, step int) string {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	n := len(options)
	return options[((idx+step)%n+n)%n]
}

// View implements tea.Model
func (d *Dashboard) View() string {
	if d.showHelp {
		return d.help.View()
	}

	var sb strings.Builder
	sb.WriteString(theme.AppNameStyle.Render("futsal") + " " + theme.VersionStyle.Render(version.Version) + "\n")

	if !d.loaded {
		sb.WriteString("Loading...\n")
		return sb.String()
	}

	sb.WriteString(theme.ConditionStyle.Render(d.report.Condition) + "\n")
	if d.report.Empty {
		sb.WriteString(theme.EmptyStateStyle.Render("No records yet. Add one with `futsal record new`."))
		sb.WriteString("\n" + d.shortHelp())
		return sb.String()
	}

	sb.WriteString(d.renderKPIs() + "\n")

	width := max(40, d.width-4)
	half := max(30, width/2-2)
	tables := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.SectionStyle.Render(renderGroups("Place", d.report.Places, tableRows)),
		" ",
		theme.SectionStyle.Render(renderGroups("Year", d.report.Years, tableRows)),
	)
	sb.WriteString(tables + "\n")

	breakdowns := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.SectionStyle.Width(half).Render(chart.RenderTerminalBars("Goals", chart.GoalBars(d.report.KPIs), half-4)),
		" ",
		theme.SectionStyle.Width(half).Render(chart.RenderTerminalBars("Nutmegs", chart.NutmegBars(d.report.KPIs), half-4)),
	)
	sb.WriteString(breakdowns + "\n")

	rows := d.report.Trend[:len(d.report.Trend)-d.scroll]
	sb.WriteString(chart.RenderTerminalTrend(rows, width, trendWindow) + "\n")

	if n := len(d.report.Videos); n > 0 {
		sb.WriteString(theme.ChartLegendStyle.Render(fmt.Sprintf("%d highlight videos (tag: %s)", n, d.report.Tag)) + "\n")
	}

	sb.WriteString(d.shortHelp())
	return sb.String()
}

func (d *Dashboard) renderKPIs() string {
	k := d.report.KPIs
	line := func(label, value string) string {
		return theme.KPILabelStyle.Render(label) + theme.KPIValueStyle.Render(value) + "\n"
	}

	var sb strings.Builder
	sb.WriteString(line("Play days", fmt.Sprint(k.PlayDays)))
	sb.WriteString(line("Matches", fmt.Sprint(k.Matches)))
	sb.WriteString(line("Goals", fmt.Sprintf("%d (R %d / L %d / H %d)", k.Goals, k.GoalsRight, k.GoalsLeft, k.GoalsHead)))
	sb.WriteString(line("Assists", fmt.Sprintf("%d (to target %d)", k.Assists, k.AssistsToTarget)))
	sb.WriteString(line("Nutmegs", fmt.Sprint(k.Nutmegs)))
	for _, a := range d.report.Averages {
		sb.WriteString(line(a.Metric+"/match", a.Display()))
	}
	return theme.SectionStyle.Render(strings.TrimSuffix(sb.String(), "\n"))
}

func renderGroups(title string, groups []analytics.Group, limit int) string {
	header := fmt.Sprintf("%-14s %4s %4s %4s %4s %4s", title, "Days", "M", "G", "A", "N")

	var sb strings.Builder
	sb.WriteString(theme.TableHeaderStyle.Render(header) + "\n")
	for i, g := range groups {
		if i == limit {
			sb.WriteString(theme.ChartLegendStyle.Render(fmt.Sprintf("... %d more", len(groups)-limit)))
			break
		}
		name := truncate(g.Key, 14)
		pad := max(0, 14-lipgloss.Width(name))
		sb.WriteString(theme.TableCellStyle.Render(fmt.Sprintf("%s%s %4d %4d %4d %4d %4d",
			name, strings.Repeat(" ", pad), g.PlayDays, g.Matches, g.Goals, g.Assists, g.Nutmegs)) + "\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// truncate shortens s to at most w display cells
func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	var out []rune
	for _, r := range s {
		if lipgloss.Width(string(append(out, r)))+1 > w {
			break
		}
		out = append(out, r)
	}
	return string(out) + "…"
}

func (d *Dashboard) shortHelp() string {
	parts := make([]string, 0, len(d.keys.ShortHelp()))
	for _, b := range d.keys.ShortHelp() {
		parts = append(parts, theme.HelpShortcutStyle.Render(b.Help().Key)+" "+theme.HelpLabelStyle.Render(b.Help().Desc))
	}
	return theme.HelpStyle.Render(strings.Join(parts, "  "))
}
