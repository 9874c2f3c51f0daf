package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used by records
const DateLayout = "2006-01-02"

// Record is one logged play session (domain entity).
// Stored variants are normalized into this shape by UnmarshalJSON.
type Record struct {
	Assists    Assists     `json:"assists"`
	CreatedAt  string      `json:"createdAt"`
	Date       string      `json:"date"`
	Goals      Goals       `json:"goals"`
	ID         string      `json:"id"`
	Matches    int         `json:"matches"`
	Memo       string      `json:"memo"`
	Nutmegs    Nutmegs     `json:"nutmegs"`
	Place      string      `json:"place"`
	PlayVideos []PlayVideo `json:"playVideos,omitempty"`
	UpdatedAt  string      `json:"updatedAt,omitempty"`
}

// Goals holds the positional breakdown and an optional authoritative total
type Goals struct {
	Head  int  `json:"head"`
	Left  int  `json:"left"`
	Right int  `json:"right"`
	Total *int `json:"total,omitempty"`
}

// BreakdownSum returns right + left + head
func (g Goals) BreakdownSum() int {
	return g.Right + g.Left + g.Head
}

// Count returns the declared total when present, else the breakdown sum
func (g Goals) Count() int {
	if g.Total != nil && *g.Total >= 0 {
		return *g.Total
	}
	return g.BreakdownSum()
}

// Assists holds the assist total and the share directed at the target player
type Assists struct {
	TargetName string `json:"targetName"`
	ToTarget   int    `json:"toTarget"`
	Total      int    `json:"total"`
}

// Nutmegs holds the nutmeg total and its sub-category breakdown.
// Legacy is set when the stored value was a bare number.
type Nutmegs struct {
	Details NutmegDetails `json:"details"`
	Legacy  bool          `json:"-"`
	Total   int           `json:"total"`
}

// NutmegDetails is the five-way breakdown of nutmegs
type NutmegDetails struct {
	AssistPass int `json:"assistPass"`
	Dribble    int `json:"dribble"`
	Goal       int `json:"goal"`
	Only       int `json:"only"`
	Pass       int `json:"pass"`
}

// Sum returns the sum of all five sub-categories
func (d NutmegDetails) Sum() int {
	return d.Goal + d.AssistPass + d.Pass + d.Dribble + d.Only
}

// Add returns the element-wise sum of two breakdowns
func (d NutmegDetails) Add(o NutmegDetails) NutmegDetails {
	return NutmegDetails{
		AssistPass: d.AssistPass + o.AssistPass,
		Dribble:    d.Dribble + o.Dribble,
		Goal:       d.Goal + o.Goal,
		Only:       d.Only + o.Only,
		Pass:       d.Pass + o.Pass,
	}
}

// GoalTotal returns the goal count using the total-or-breakdown policy
func (r Record) GoalTotal() int {
	return r.Goals.Count()
}

// MatchCount returns the number of matches, never less than one
func (r Record) MatchCount() int {
	if r.Matches < 1 {
		return 1
	}
	return r.Matches
}

// Year returns the 4-digit year prefix of the date, or "" when malformed
func (r Record) Year() string {
	if len(r.Date) < 4 || !allDigits(r.Date[:4]) {
		return ""
	}
	return r.Date[:4]
}

// YearMonth returns the YYYY-MM prefix of the date, or "" when malformed
func (r Record) YearMonth() string {
	if len(r.Date) < 7 || !allDigits(r.Date[:4]) || r.Date[4] != '-' || !allDigits(r.Date[5:7]) {
		return ""
	}
	return r.Date[:7]
}

// IsWellFormed reports whether the record has the fields every aggregation requires
func (r Record) IsWellFormed() bool {
	return strings.TrimSpace(r.Date) != "" && strings.TrimSpace(r.Place) != ""
}

// SortKey orders records chronologically with creation time as tie-break
func (r Record) SortKey() string {
	return r.Date + r.CreatedAt
}

// ValidVideos returns the play videos that carry a well-formed http(s) URL
func (r Record) ValidVideos() []PlayVideo {
	var out []PlayVideo
	for _, v := range r.PlayVideos {
		if v.Valid() {
			out = append(out, v.Normalized())
		}
	}
	return out
}

// FormatDate renders YYYY-MM-DD as YYYY/MM/DD
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	return strings.ReplaceAll(date, "-", "/")
}

// Timestamp returns the current time in the ISO form records use
func Timestamp(now time.Time) string {
	return now.UTC().Format("2006-01-02T15:04:05.000Z")
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
