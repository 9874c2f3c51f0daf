package analytics

import (
	"math"
	"strconv"

	"futsal/internal/domain"
)

// Totals are the running sums shared by KPIs and every grouping
type Totals struct {
	Assists         int                  `json:"assists" yaml:"assists"`
	AssistsToTarget int                  `json:"assistsToTarget" yaml:"assistsToTarget"`
	Goals           int                  `json:"goals" yaml:"goals"`
	GoalsHead       int                  `json:"goalsHead" yaml:"goalsHead"`
	GoalsLeft       int                  `json:"goalsLeft" yaml:"goalsLeft"`
	GoalsRight      int                  `json:"goalsRight" yaml:"goalsRight"`
	Matches         int                  `json:"matches" yaml:"matches"`
	NutmegDetails   domain.NutmegDetails `json:"nutmegDetails" yaml:"nutmegDetails"`
	Nutmegs         int                  `json:"nutmegs" yaml:"nutmegs"`
	PlayDays        int                  `json:"playDays" yaml:"playDays"`
	Records         int                  `json:"records" yaml:"records"`
}

func (t *Totals) add(r domain.Record) {
	t.Assists += r.Assists.Total
	t.AssistsToTarget += r.Assists.ToTarget
	t.Goals += r.GoalTotal()
	t.GoalsHead += r.Goals.Head
	t.GoalsLeft += r.Goals.Left
	t.GoalsRight += r.Goals.Right
	t.Matches += r.MatchCount()
	t.NutmegDetails = t.NutmegDetails.Add(r.Nutmegs.Details)
	t.Nutmegs += r.Nutmegs.Total
	t.Records++
}

// dayCounter counts distinct play dates
type dayCounter map[string]struct{}

func (d dayCounter) add(date string) {
	d[date] = struct{}{}
}

// KPIs sums every metric over records. Play days are distinct dates.
func KPIs(records []domain.Record) Totals {
	var t Totals
	days := dayCounter{}
	for _, r := range records {
		t.add(r)
		days.add(r.Date)
	}
	t.PlayDays = len(days)
	return t
}

// Average is one per-match ratio
type Average struct {
	Metric string  `json:"metric" yaml:"metric"`
	Total  int     `json:"total" yaml:"total"`
	Value  float64 `json:"value" yaml:"value"`
}

// Display formats the value with one decimal, dropping a trailing ".0"
func (a Average) Display() string {
	return FormatAverage(a.Value)
}

// Metric names used in averages and charts
const (
	MetricAssists = "assists"
	MetricGoals   = "goals"
	MetricNutmegs = "nutmegs"
)

// Averages divides goals, assists and nutmegs by max(1, matches)
func Averages(t Totals) []Average {
	denom := t.Matches
	if denom < 1 {
		denom = 1
	}
	return []Average{
		{Metric: MetricGoals, Total: t.Goals, Value: round1(float64(t.Goals) / float64(denom))},
		{Metric: MetricAssists, Total: t.Assists, Value: round1(float64(t.Assists) / float64(denom))},
		{Metric: MetricNutmegs, Total: t.Nutmegs, Value: round1(float64(t.Nutmegs) / float64(denom))},
	}
}

// FormatAverage renders v with at most one decimal
func FormatAverage(v float64) string {
	return strconv.FormatFloat(round1(v), 'f', -1, 64)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
