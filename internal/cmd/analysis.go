package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"futsal/internal/analytics"
	"futsal/internal/chart"
	"futsal/internal/domain"
	"futsal/internal/logging"
	"futsal/internal/services"
)

const chartWidth = 60

// AnalysisCmd prints an analysis report
type AnalysisCmd struct {
	Format string  `help:"Output format" enum:"table,json,yaml,chart" default:"table"`
	Place  *string `help:"Only records at this venue (empty for all; default: last used filter)"`
	PngDir string  `help:"Also write every chart as PNG into this directory" type:"path"`
	Scale  float64 `help:"PNG pixel ratio (0 < scale <= 4)" default:"1"`
	Tag    string  `help:"Only highlight videos with this tag"`
	Ym     *string `help:"Period: all, YYYY or YYYY-MM (default: last used filter)"`
}

// Validate checks flag values before the command runs
func (a *AnalysisCmd) Validate() error {
	if a.Scale <= 0 || a.Scale > 4 {
		return fmt.Errorf("scale must be within (0, 4], got %g", a.Scale)
	}
	return nil
}

// Run executes the analysis command
func (a *AnalysisCmd) Run(container *Container, cli *CLI) error {
	ctx := context.Background()

	q, err := a.query(ctx, container.AnalysisService)
	if err != nil {
		return err
	}

	report := container.AnalysisService.Build(ctx, q)
	if err := container.AnalysisService.RememberFilter(ctx, q); err != nil {
		logging.Logger.Warn("Failed to remember analysis filter", "error", err)
	}

	logging.Logger.Info("Executing analysis command", "period", report.Period, "place", report.Place, "format", a.Format)

	if a.PngDir != "" {
		if err := writeCharts(ctx, a.PngDir, report, a.Scale); err != nil {
			return err
		}
	}

	out := cli.stdout()
	switch a.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case "chart":
		renderChartReport(out, report)
	default:
		renderTableReport(out, report)
	}

	if a.PngDir != "" {
		fmt.Fprintf(out, "\nCharts written to %s\n", a.PngDir)
	}
	return nil
}

// query starts from the remembered filter and overrides whatever flags were given
func (a *AnalysisCmd) query(ctx context.Context, analysis *services.AnalysisService) (services.Query, error) {
	q := analysis.LastQuery(ctx)
	if a.Ym != nil {
		period, err := domain.ParsePeriod(*a.Ym)
		if err != nil {
			return services.Query{}, err
		}
		q.Period = period
	}
	if a.Place != nil {
		q.Place = strings.TrimSpace(*a.Place)
	}
	q.Tag = a.Tag
	return q, nil
}

// writeCharts renders every chart concurrently into dir as <name>.png
func writeCharts(ctx context.Context, dir string, report services.Report, scale float64) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	g, _ := errgroup.WithContext(ctx)
	for _, name := range chart.Names {
		g.Go(func() error {
			canvas, ok := chart.Render(name, report.KPIs, report.Trend, scale)
			if !ok {
				return fmt.Errorf("unknown chart %q", name)
			}

			path := filepath.Join(dir, name+".png")
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			if err := chart.EncodePNG(f, canvas); err != nil {
				f.Close()
				return err
			}
			logging.Logger.Debug("Chart written", "path", path, "width", canvas.Width(), "height", canvas.Height())
			return f.Close()
		})
	}
	return g.Wait()
}

func renderTableReport(out io.Writer, report services.Report) {
	fmt.Fprintln(out, report.Condition)
	fmt.Fprintln(out)

	if report.Matched == 0 {
		if report.Empty {
			fmt.Fprintln(out, "No records yet. Add one with 'futsal record add' or 'futsal record new'.")
		} else {
			fmt.Fprintln(out, "No records match this filter.")
		}
		return
	}

	k := report.KPIs
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Records\t%d\n", k.Records)
	fmt.Fprintf(w, "Play days\t%d\n", k.PlayDays)
	fmt.Fprintf(w, "Matches\t%d\n", k.Matches)
	fmt.Fprintf(w, "Goals\t%d\t(right %d / left %d / head %d)\n", k.Goals, k.GoalsRight, k.GoalsLeft, k.GoalsHead)
	fmt.Fprintf(w, "Assists\t%d\t(to target %d)\n", k.Assists, k.AssistsToTarget)
	fmt.Fprintf(w, "Nutmegs\t%d\n", k.Nutmegs)
	for _, avg := range report.Averages {
		fmt.Fprintf(w, "%s / match\t%s\n", avg.Metric, avg.Display())
	}
	w.Flush()

	renderGroupTable(out, "By place", report.Places)
	renderGroupTable(out, "By year", report.Years)

	if len(report.Videos) > 0 {
		fmt.Fprintf(out, "\nHighlight videos (%s)\n", report.Tag)
		vw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, v := range report.Videos {
			fmt.Fprintf(vw, "%s\t%s\t%s\t%s\n", domain.FormatDate(v.Date), v.Place, v.Tag, v.URL)
		}
		vw.Flush()
	}
}

func renderGroupTable(out io.Writer, title string, groups []analytics.Group) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s\n", title)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tDAYS\tMATCHES\tGOALS\tASSISTS\tNUTMEGS")
	for _, g := range groups {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n", g.Key, g.PlayDays, g.Matches, g.Goals, g.Assists, g.Nutmegs)
	}
	w.Flush()
}

func renderChartReport(out io.Writer, report services.Report) {
	fmt.Fprintln(out, report.Condition)
	fmt.Fprintln(out)
	fmt.Fprintln(out, chart.RenderTerminalBars("Goals", chart.GoalBars(report.KPIs), chartWidth))
	fmt.Fprintln(out, chart.RenderTerminalBars("Nutmegs", chart.NutmegBars(report.KPIs), chartWidth))
	fmt.Fprintln(out, chart.RenderTerminalTrend(report.Trend, chartWidth, 12))
}
