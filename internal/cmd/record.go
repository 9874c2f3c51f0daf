package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"futsal/internal/analytics"
	"futsal/internal/domain"
	"futsal/internal/logging"
	"futsal/internal/services"
	"futsal/internal/ui"
)

// RecordCmd manages session records
type RecordCmd struct {
	Add  RecordAddCmd  `cmd:"add" help:"Add a record from flags"`
	Del  RecordDelCmd  `cmd:"del" aliases:"rm" help:"Delete a record"`
	Edit RecordEditCmd `cmd:"edit" help:"Edit a record (opens a form when no field flag is given)"`
	List RecordListCmd `cmd:"list" help:"List records, newest first" default:"1"`
	New  RecordNewCmd  `cmd:"new" help:"Add a record with an interactive form"`
	Wipe RecordWipeCmd `cmd:"wipe" help:"Delete every record"`
}

// RecordAddCmd adds a record from flags
type RecordAddCmd struct {
	Assists      int    `help:"Total assists" default:"0"`
	Date         string `help:"Session date (YYYY-MM-DD, default: last entered date or today)"`
	GoalsHead    int    `help:"Headed goals" default:"0"`
	GoalsLeft    int    `help:"Left foot goals" default:"0"`
	GoalsRight   int    `help:"Right foot goals" default:"0"`
	GoalsTotal   *int   `help:"Authoritative goal total (default: breakdown sum)"`
	Matches      int    `help:"Matches played" default:"1"`
	Memo         string `help:"Free-text memo"`
	NmAssistPass int    `help:"Nutmegs that led to an assist" default:"0"`
	NmDribble    int    `help:"Nutmegs while dribbling" default:"0"`
	NmGoal       int    `help:"Nutmegs that led to a goal" default:"0"`
	NmOnly       int    `help:"Nutmegs with no follow-up" default:"0"`
	NmPass       int    `help:"Nutmegs on a pass" default:"0"`
	Nutmegs      int    `help:"Total nutmegs" default:"0"`
	Place        string `help:"Venue" required:""`
	Target       string `help:"Assist target player (default: selected target)"`
	ToTarget     int    `help:"Assists to the target player" default:"0"`
	Video        string `help:"Highlight video URL"`
	VideoTag     string `help:"Highlight video tag"`
}

// Run executes the add command
func (r *RecordAddCmd) Run(container *Container, cli *CLI) error {
	ctx := context.Background()

	date := r.Date
	if date == "" {
		date = container.RecordService.LastDate(ctx)
	}
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}
	target := r.Target
	if target == "" {
		target = container.SettingsService.SelectedTarget(ctx)
	}

	in := services.RecordInput{
		Assists:         r.Assists,
		AssistsToTarget: r.ToTarget,
		Date:            date,
		GoalsHead:       r.GoalsHead,
		GoalsLeft:       r.GoalsLeft,
		GoalsRight:      r.GoalsRight,
		GoalsTotal:      r.GoalsTotal,
		Matches:         r.Matches,
		Memo:            r.Memo,
		NutmegDetails: domain.NutmegDetails{
			AssistPass: r.NmAssistPass,
			Dribble:    r.NmDribble,
			Goal:       r.NmGoal,
			Only:       r.NmOnly,
			Pass:       r.NmPass,
		},
		Nutmegs:    r.Nutmegs,
		Place:      r.Place,
		PlayVideos: videoFlag(r.Video, r.VideoTag),
		TargetName: target,
	}

	logging.Logger.Info("Executing record add command", "date", date, "place", r.Place)
	record, err := container.RecordService.Create(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to add record: %w", err)
	}

	fmt.Fprintf(cli.stdout(), "✓ Record %s added (%s, %s)\n", record.ID, domain.FormatDate(record.Date), record.Place)
	return nil
}

// RecordEditCmd edits an existing record; only the given flags change
type RecordEditCmd struct {
	ID string `arg:"" help:"ID of the record to edit"`

	Assists      *int    `help:"Total assists"`
	Date         *string `help:"Session date (YYYY-MM-DD)"`
	GoalsHead    *int    `help:"Headed goals"`
	GoalsLeft    *int    `help:"Left foot goals"`
	GoalsRight   *int    `help:"Right foot goals"`
	GoalsTotal   *int    `help:"Authoritative goal total"`
	Matches      *int    `help:"Matches played"`
	Memo         *string `help:"Free-text memo"`
	NmAssistPass *int    `help:"Nutmegs that led to an assist"`
	NmDribble    *int    `help:"Nutmegs while dribbling"`
	NmGoal       *int    `help:"Nutmegs that led to a goal"`
	NmOnly       *int    `help:"Nutmegs with no follow-up"`
	NmPass       *int    `help:"Nutmegs on a pass"`
	Nutmegs      *int    `help:"Total nutmegs"`
	Place        *string `help:"Venue"`
	Target       *string `help:"Assist target player"`
	ToTarget     *int    `help:"Assists to the target player"`
}

// Run executes the edit command
func (r *RecordEditCmd) Run(container *Container, cli *CLI) error {
	ctx := context.Background()

	existing, err := container.RecordService.Get(ctx, r.ID)
	if err != nil {
		return err
	}

	if !r.hasChanges() {
		logging.Logger.Info("No field flags given, opening record form", "id", r.ID)
		return runRecordForm(ctx, container, cli, &existing)
	}

	in := r.apply(services.InputFromRecord(existing))
	logging.Logger.Info("Executing record edit command", "id", r.ID)
	record, err := container.RecordService.Update(ctx, r.ID, in)
	if err != nil {
		return fmt.Errorf("failed to edit record: %w", err)
	}

	fmt.Fprintf(cli.stdout(), "✓ Record %s updated (%s, %s)\n", record.ID, domain.FormatDate(record.Date), record.Place)
	return nil
}

func (r *RecordEditCmd) hasChanges() bool {
	return r.Assists != nil || r.Date != nil || r.GoalsHead != nil || r.GoalsLeft != nil ||
		r.GoalsRight != nil || r.GoalsTotal != nil || r.Matches != nil || r.Memo != nil ||
		r.NmAssistPass != nil || r.NmDribble != nil || r.NmGoal != nil || r.NmOnly != nil ||
		r.NmPass != nil || r.Nutmegs != nil || r.Place != nil || r.Target != nil || r.ToTarget != nil
}

// apply overlays the given flags on in
func (r *RecordEditCmd) apply(in services.RecordInput) services.RecordInput {
	setInt(&in.Assists, r.Assists)
	setInt(&in.AssistsToTarget, r.ToTarget)
	setInt(&in.GoalsHead, r.GoalsHead)
	setInt(&in.GoalsLeft, r.GoalsLeft)
	setInt(&in.GoalsRight, r.GoalsRight)
	setInt(&in.Matches, r.Matches)
	setInt(&in.NutmegDetails.AssistPass, r.NmAssistPass)
	setInt(&in.NutmegDetails.Dribble, r.NmDribble)
	setInt(&in.NutmegDetails.Goal, r.NmGoal)
	setInt(&in.NutmegDetails.Only, r.NmOnly)
	setInt(&in.NutmegDetails.Pass, r.NmPass)
	setInt(&in.Nutmegs, r.Nutmegs)
	setString(&in.Date, r.Date)
	setString(&in.Memo, r.Memo)
	setString(&in.Place, r.Place)
	setString(&in.TargetName, r.Target)
	if r.GoalsTotal != nil {
		total := *r.GoalsTotal
		in.GoalsTotal = &total
	}
	return in
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// RecordNewCmd adds a record through the interactive form
type RecordNewCmd struct{}

// Run executes the new command
func (r *RecordNewCmd) Run(container *Container, cli *CLI) error {
	return runRecordForm(context.Background(), container, cli, nil)
}

// runRecordForm runs the huh form inline and reports the outcome
func runRecordForm(ctx context.Context, container *Container, cli *CLI, existing *domain.Record) error {
	form := ui.NewRecordForm(ctx, container.RecordService, container.SettingsService, existing)

	logging.Logger.Debug("Starting record form program")
	if _, err := tea.NewProgram(form).Run(); err != nil {
		return fmt.Errorf("error running form: %w", err)
	}

	result := form.Result()
	if result.Error != nil {
		return result.Error
	}
	if result.Cancelled {
		fmt.Fprintln(cli.stdout(), "Cancelled")
		return nil
	}

	fmt.Fprintf(cli.stdout(), "✓ Record %s saved (%s, %s)\n",
		result.Record.ID, domain.FormatDate(result.Record.Date), result.Record.Place)
	return nil
}

// RecordDelCmd deletes a record
type RecordDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	ID    string `arg:"" help:"ID of the record to delete"`
}

// Run executes the del command
func (r *RecordDelCmd) Run(container *Container, cli *CLI) error {
	ctx := context.Background()
	logging.Logger.Info("Executing record del command", "id", r.ID, "force", r.Force)

	record, err := container.RecordService.Get(ctx, r.ID)
	if err != nil {
		return err
	}

	if !r.Force {
		prompt := fmt.Sprintf("Delete the record of %s at %s?", domain.FormatDate(record.Date), record.Place)
		if !confirm(os.Stdin, cli.stdout(), prompt) {
			logging.Logger.Info("User cancelled record deletion", "id", r.ID)
			fmt.Fprintln(cli.stdout(), "Cancelled")
			return nil
		}
	}

	if err := container.RecordService.Delete(ctx, r.ID); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	fmt.Fprintf(cli.stdout(), "✓ Record %s deleted\n", r.ID)
	return nil
}

// RecordWipeCmd deletes every record
type RecordWipeCmd struct {
	Force bool `help:"Wipe without confirmation" short:"f"`
}

// Run executes the wipe command
func (r *RecordWipeCmd) Run(container *Container, cli *CLI) error {
	ctx := context.Background()
	count := len(container.RecordService.List(ctx))
	logging.Logger.Info("Executing record wipe command", "count", count, "force", r.Force)

	if !r.Force {
		prompt := fmt.Sprintf("WARNING: This will delete all %d records. Settings are kept.", count)
		if !confirm(os.Stdin, cli.stdout(), prompt) {
			fmt.Fprintln(cli.stdout(), "Cancelled")
			return nil
		}
	}

	if err := container.RecordService.Wipe(ctx); err != nil {
		return fmt.Errorf("failed to wipe records: %w", err)
	}

	fmt.Fprintf(cli.stdout(), "✓ %d records deleted\n", count)
	return nil
}

// RecordListCmd lists records
type RecordListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of records to show (0 = all)" default:"0"`
	Place  string `help:"Only records at this venue"`
}

// Run executes the list command
func (r *RecordListCmd) Run(container *Container, cli *CLI) error {
	ctx := context.Background()
	records := recentRecords(container.RecordService.List(ctx), r.Place, r.Limit)

	logging.Logger.Debug("Listing records", "count", len(records), "format", r.Format)

	if r.Format == "json" {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cli.stdout(), string(data))
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(cli.stdout(), "No records yet. Add one with 'futsal record add' or 'futsal record new'.")
		return nil
	}

	w := tabwriter.NewWriter(cli.stdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tPLACE\tMATCHES\tGOALS\tASSISTS\tNUTMEGS\tMEMO")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			rec.ID,
			domain.FormatDate(rec.Date),
			rec.Place,
			rec.MatchCount(),
			rec.GoalTotal(),
			rec.Assists.Total,
			rec.Nutmegs.Total,
			oneLine(rec.Memo, 30),
		)
	}
	return w.Flush()
}

// recentRecords returns records at place (all when empty), newest first, at most limit
func recentRecords(records []domain.Record, place string, limit int) []domain.Record {
	var out []domain.Record
	for _, rec := range records {
		if place == "" || rec.Place == place {
			out = append(out, rec)
		}
	}
	return analytics.RecentRecords(out, limit)
}

func oneLine(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func videoFlag(url, tag string) []domain.PlayVideo {
	if strings.TrimSpace(url) == "" {
		return nil
	}
	return []domain.PlayVideo{{Tag: tag, URL: url}}
}

// confirm asks a yes/no question; anything but y or Y is a no
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s\nContinue? (y/N): ", prompt)
	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.TrimSpace(response)
	return response == "y" || response == "Y"
}
