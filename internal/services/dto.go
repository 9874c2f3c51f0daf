package services

import (
	"strings"

	"futsal/internal/analytics"
	"futsal/internal/domain"
)

// RecordInput contains the user-entered fields of a record
type RecordInput struct {
	Assists         int                  `json:"assists" validate:"gte=0"`
	AssistsToTarget int                  `json:"assistsToTarget" validate:"gte=0"`
	Date            string               `json:"date" validate:"required"`
	GoalsHead       int                  `json:"goalsHead" validate:"gte=0"`
	GoalsLeft       int                  `json:"goalsLeft" validate:"gte=0"`
	GoalsRight      int                  `json:"goalsRight" validate:"gte=0"`
	GoalsTotal      *int                 `json:"goalsTotal,omitempty" validate:"omitempty,gte=0"`
	Matches         int                  `json:"matches" validate:"gte=0"`
	Memo            string               `json:"memo"`
	NutmegDetails   domain.NutmegDetails `json:"nutmegDetails"`
	Nutmegs         int                  `json:"nutmegs" validate:"gte=0"`
	Place           string               `json:"place" validate:"required"`
	PlayVideos      []domain.PlayVideo   `json:"playVideos,omitempty"`
	TargetName      string               `json:"targetName"`
}

// InputFromRecord returns the editable fields of an existing record
func InputFromRecord(r domain.Record) RecordInput {
	return RecordInput{
		Assists:         r.Assists.Total,
		AssistsToTarget: r.Assists.ToTarget,
		Date:            r.Date,
		GoalsHead:       r.Goals.Head,
		GoalsLeft:       r.Goals.Left,
		GoalsRight:      r.Goals.Right,
		GoalsTotal:      r.Goals.Total,
		Matches:         r.Matches,
		Memo:            r.Memo,
		NutmegDetails:   r.Nutmegs.Details,
		Nutmegs:         r.Nutmegs.Total,
		Place:           r.Place,
		PlayVideos:      r.PlayVideos,
		TargetName:      r.Assists.TargetName,
	}
}

// fields builds the record body; matches are floored at 1 and
// assists to the target never exceed the assist total
func (in RecordInput) fields() domain.Record {
	target := strings.TrimSpace(in.TargetName)
	if target == "" {
		target = domain.UnsetTarget
	}
	toTarget := max(0, min(in.AssistsToTarget, in.Assists))

	var videos []domain.PlayVideo
	for _, v := range in.PlayVideos {
		if strings.TrimSpace(v.URL) == "" {
			continue
		}
		videos = append(videos, v.Normalized())
	}

	return domain.Record{
		Assists: domain.Assists{TargetName: target, ToTarget: toTarget, Total: max(0, in.Assists)},
		Date:    strings.TrimSpace(in.Date),
		Goals: domain.Goals{
			Head:  max(0, in.GoalsHead),
			Left:  max(0, in.GoalsLeft),
			Right: max(0, in.GoalsRight),
			Total: in.GoalsTotal,
		},
		Matches:    max(1, in.Matches),
		Memo:       strings.TrimSpace(in.Memo),
		Nutmegs:    domain.Nutmegs{Details: in.NutmegDetails, Total: max(0, in.Nutmegs)},
		Place:      strings.TrimSpace(in.Place),
		PlayVideos: videos,
	}
}

// ImportResult summarizes an import
type ImportResult struct {
	Added    int `json:"added"`
	Received int `json:"received"`
	Skipped  int `json:"skipped"`
	Valid    int `json:"valid"`
}

// ExportDocument is the portable backup format
type ExportDocument struct {
	ExportedAt string          `json:"exportedAt"`
	Records    []domain.Record `json:"records"`
	Version    int             `json:"version"`
}

// Query selects the records an analysis report covers
type Query struct {
	Period domain.Period
	Place  string
	Tag    string
}

// Report is everything the analysis screen shows for one query
type Report struct {
	Averages    []analytics.Average  `json:"averages" yaml:"averages"`
	Condition   string               `json:"condition" yaml:"condition"`
	Empty       bool                 `json:"empty" yaml:"empty"`
	KPIs        analytics.Totals     `json:"kpis" yaml:"kpis"`
	Matched     int                  `json:"matched" yaml:"matched"`
	Months      []analytics.Group    `json:"months" yaml:"months"`
	Period      string               `json:"period" yaml:"period"`
	Place       string               `json:"place" yaml:"place"`
	Places      []analytics.Group    `json:"places" yaml:"places"`
	PlaceNames  []string             `json:"placeNames" yaml:"placeNames"`
	Recent      []domain.Record      `json:"recent" yaml:"-"`
	RecentTotal int                  `json:"recentTotal" yaml:"recentTotal"`
	Tag         string               `json:"tag" yaml:"tag"`
	TrendLabels []string             `json:"trendLabels" yaml:"trendLabels"`
	Trend       []analytics.TrendRow `json:"trend" yaml:"trend"`
	VideoTags   []string             `json:"videoTags" yaml:"videoTags"`
	Videos      []analytics.VideoRow `json:"videos" yaml:"videos"`
	YearMonths  []string             `json:"yearMonths" yaml:"yearMonths"`
	Years       []analytics.Group    `json:"years" yaml:"years"`
}
