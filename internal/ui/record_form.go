package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"futsal/internal/domain"
	"futsal/internal/logging"
	"futsal/internal/services"
	"futsal/internal/theme"
)

// RecordFormResult contains the outcome of the record form
type RecordFormResult struct {
	Cancelled bool
	Error     error
	Record    domain.Record
}

// recordFormValues holds the raw text of every form field
type recordFormValues struct {
	assists         string
	assistsToTarget string
	date            string
	goalsHead       string
	goalsLeft       string
	goalsRight      string
	matches         string
	memo            string
	nmAssistPass    string
	nmDribble       string
	nmGoal          string
	nmOnly          string
	nmPass          string
	nutmegs         string
	place           string
	target          string
	videoTag        string
	videoURL        string
}

// RecordForm is a Bubble Tea component for entering or editing a record
type RecordForm struct {
	Completed bool
	ctx       context.Context
	editID    string
	form      *huh.Form
	records   *services.RecordService
	result    RecordFormResult
	saving    bool
	spinner   spinner.Model
	values    recordFormValues
}

// NewRecordForm creates a form for a new record, or for editing when existing is set.
// New records start from the last entered date and the selected assist target.
func NewRecordForm(
	ctx context.Context,
	records *services.RecordService,
	settings *services.SettingsService,
	existing *domain.Record,
) *RecordForm {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.ColorPrimary)

	rf := &RecordForm{
		ctx:     ctx,
		records: records,
		spinner: s,
	}

	if existing != nil {
		rf.editID = existing.ID
		rf.values = valuesFromInput(services.InputFromRecord(*existing))
	} else {
		date := records.LastDate(ctx)
		if date == "" {
			date = time.Now().Format(domain.DateLayout)
		}
		rf.values = recordFormValues{
			date:    date,
			matches: "1",
			target:  settings.SelectedTarget(ctx),
		}
	}

	logging.Logger.Debug("Creating record form", "edit_id", rf.editID, "date", rf.values.date)

	places := settings.Places(ctx)
	if rf.values.place != "" && !domain.Contains(places, rf.values.place) {
		places = append([]string{rf.values.place}, places...)
	}

	v := &rf.values
	rf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Date").Placeholder(domain.DateLayout).Value(&v.date).Validate(validateDate),
			huh.NewSelect[string]().Title("Place").Options(huh.NewOptions(places...)...).Value(&v.place),
			huh.NewInput().Title("Matches").Value(&v.matches).Validate(validateCount),
		),
		huh.NewGroup(
			huh.NewInput().Title("Goals: right foot").Value(&v.goalsRight).Validate(validateCount),
			huh.NewInput().Title("Goals: left foot").Value(&v.goalsLeft).Validate(validateCount),
			huh.NewInput().Title("Goals: head").Value(&v.goalsHead).Validate(validateCount),
		).Title("Goals"),
		huh.NewGroup(
			huh.NewInput().Title("Assists").Value(&v.assists).Validate(validateCount),
			huh.NewSelect[string]().Title("Assist target").
				Options(huh.NewOptions(settings.Targets(ctx)...)...).
				Value(&v.target),
			huh.NewInput().Title("Assists to target").
				Description("Capped at the assist total").
				Value(&v.assistsToTarget).
				Validate(validateCount),
		).Title("Assists"),
		huh.NewGroup(
			huh.NewInput().Title("Nutmegs").Value(&v.nutmegs).Validate(validateCount),
			huh.NewInput().Title("Led to a goal").Value(&v.nmGoal).Validate(validateCount),
			huh.NewInput().Title("Led to an assist").Value(&v.nmAssistPass).Validate(validateCount),
			huh.NewInput().Title("Pass").Value(&v.nmPass).Validate(validateCount),
			huh.NewInput().Title("Dribble").Value(&v.nmDribble).Validate(validateCount),
			huh.NewInput().Title("Nutmeg only").Value(&v.nmOnly).Validate(validateCount),
		).Title("Nutmegs").Description("Breakdown must add up to the total when filled in"),
		huh.NewGroup(
			huh.NewText().Title("Memo").Value(&v.memo),
			huh.NewInput().Title("Highlight video URL (optional)").Value(&v.videoURL).Validate(validateVideoURL),
			huh.NewInput().Title("Video tag").Placeholder(domain.DefaultVideoTag).Value(&v.videoTag),
		),
	)

	return rf
}

// Init implements tea.Model
func (rf *RecordForm) Init() tea.Cmd {
	return rf.form.Init()
}

// Update implements tea.Model
func (rf *RecordForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(recordSavedMsg); ok {
		rf.saving = false
		rf.Completed = true
		if msg.err != nil {
			logging.Logger.Error("Failed to save record", "error", msg.err)
			rf.result.Error = msg.err
		}
		return rf, tea.Quit
	}

	if rf.saving {
		var cmd tea.Cmd
		rf.spinner, cmd = rf.spinner.Update(msg)
		return rf, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			rf.Completed = true
			rf.result.Cancelled = true
			return rf, tea.Quit
		}
	}

	form, cmd := rf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		rf.form = f
	}

	if rf.form.State == huh.StateCompleted && !rf.saving {
		rf.saving = true
		return rf, tea.Batch(rf.saveCmd(), rf.spinner.Tick)
	}

	return rf, cmd
}

// View implements tea.Model
func (rf *RecordForm) View() string {
	if rf.saving {
		return fmt.Sprintf("\n%s Saving record...\n", rf.spinner.View())
	}
	return rf.form.View()
}

// Result returns the form result
func (rf *RecordForm) Result() RecordFormResult {
	return rf.result
}

func (rf *RecordForm) saveCmd() tea.Cmd {
	return func() tea.Msg {
		return recordSavedMsg{err: rf.save()}
	}
}

func (rf *RecordForm) save() error {
	in := rf.values.input()

	var (
		record domain.Record
		err    error
	)
	if rf.editID != "" {
		record, err = rf.records.Update(rf.ctx, rf.editID, in)
	} else {
		record, err = rf.records.Create(rf.ctx, in)
	}
	if err != nil {
		return err
	}
	rf.result.Record = record
	return nil
}

// input converts the validated text fields; blank counts are zero
func (v recordFormValues) input() services.RecordInput {
	in := services.RecordInput{
		Assists:         atoi(v.assists),
		AssistsToTarget: atoi(v.assistsToTarget),
		Date:            strings.TrimSpace(v.date),
		GoalsHead:       atoi(v.goalsHead),
		GoalsLeft:       atoi(v.goalsLeft),
		GoalsRight:      atoi(v.goalsRight),
		Matches:         atoi(v.matches),
		Memo:            v.memo,
		NutmegDetails: domain.NutmegDetails{
			AssistPass: atoi(v.nmAssistPass),
			Dribble:    atoi(v.nmDribble),
			Goal:       atoi(v.nmGoal),
			Only:       atoi(v.nmOnly),
			Pass:       atoi(v.nmPass),
		},
		Nutmegs:    atoi(v.nutmegs),
		Place:      v.place,
		TargetName: v.target,
	}
	if url := strings.TrimSpace(v.videoURL); url != "" {
		in.PlayVideos = []domain.PlayVideo{{Tag: v.videoTag, URL: url}}
	}
	return in
}

func valuesFromInput(in services.RecordInput) recordFormValues {
	v := recordFormValues{
		assists:         itoa(in.Assists),
		assistsToTarget: itoa(in.AssistsToTarget),
		date:            in.Date,
		goalsHead:       itoa(in.GoalsHead),
		goalsLeft:       itoa(in.GoalsLeft),
		goalsRight:      itoa(in.GoalsRight),
		matches:         itoa(in.Matches),
		memo:            in.Memo,
		nmAssistPass:    itoa(in.NutmegDetails.AssistPass),
		nmDribble:       itoa(in.NutmegDetails.Dribble),
		nmGoal:          itoa(in.NutmegDetails.Goal),
		nmOnly:          itoa(in.NutmegDetails.Only),
		nmPass:          itoa(in.NutmegDetails.Pass),
		nutmegs:         itoa(in.Nutmegs),
		place:           in.Place,
		target:          in.TargetName,
	}
	if len(in.PlayVideos) > 0 {
		v.videoTag = in.PlayVideos[0].Tag
		v.videoURL = in.PlayVideos[0].URL
	}
	return v
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func validateCount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole number of 0 or more")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("date must be formatted as YYYY-MM-DD")
	}
	return nil
}

func validateVideoURL(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if !(domain.PlayVideo{URL: s}).Valid() {
		return fmt.Errorf("must start with http:// or https://")
	}
	return nil
}
