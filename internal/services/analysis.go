package services

import (
	"context"
	"fmt"
	"time"

	"futsal/internal/analytics"
	"futsal/internal/domain"
	"futsal/internal/logging"
	"futsal/internal/ports"
)

// Report sizing
const (
	RecentLimit = 200
	TopPlaces   = 12
)

// AnalysisService builds analysis reports and remembers the last filter
type AnalysisService struct {
	filters ports.FilterStateRepository
	now     func() time.Time
	records ports.RecordRepository
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(records ports.RecordRepository, filters ports.FilterStateRepository) *AnalysisService {
	return &AnalysisService{
		filters: filters,
		now:     time.Now,
		records: records,
	}
}

// Build loads every record and summarizes the ones matching q.
// Year and month summaries always cover the whole history.
func (s *AnalysisService) Build(ctx context.Context, q Query) Report {
	all := s.records.Load(ctx)
	filtered := analytics.Filter(all, q.Period, q.Place)

	kpis := analytics.KPIs(filtered)
	trend := analytics.CumulativeTrend(filtered)
	recent := analytics.RecentRecords(filtered, 0)

	videos := analytics.CollectVideos(filtered)
	tags := analytics.VideoTags(videos)
	tag := q.Tag
	if tag == "" || !domain.Contains(tags, tag) {
		tag = analytics.AllTags
	}

	wellFormed := analytics.Filter(all, domain.AllPeriods, "")
	report := Report{
		Averages:    analytics.Averages(kpis),
		Condition:   Condition(q, len(filtered)),
		Empty:       len(all) == 0,
		KPIs:        kpis,
		Matched:     len(filtered),
		Months:      analytics.GroupByMonth(wellFormed),
		Period:      q.Period.Token(),
		Place:       q.Place,
		Places:      analytics.TopGroups(analytics.GroupByPlace(filtered), TopPlaces),
		PlaceNames:  analytics.DistinctPlaces(wellFormed),
		Recent:      analytics.RecentRecords(recent, RecentLimit),
		RecentTotal: len(recent),
		Tag:         tag,
		TrendLabels: analytics.TrendLabels(trend),
		Trend:       trend,
		VideoTags:   tags,
		Videos:      analytics.FilterVideos(videos, tag),
		YearMonths:  analytics.DistinctYearMonths(wellFormed, s.now()),
		Years:       analytics.GroupByYear(wellFormed),
	}

	logging.Logger.Debug("Analysis built",
		"period", report.Period,
		"place", q.Place,
		"matched", report.Matched,
		"total", len(all))
	return report
}

// RememberFilter persists q so the next session starts from it
func (s *AnalysisService) RememberFilter(ctx context.Context, q Query) error {
	state := domain.FilterState{Period: q.Period.Token(), Place: q.Place}
	if err := s.filters.SaveFilter(ctx, state); err != nil {
		return fmt.Errorf("failed to remember filter: %w", err)
	}
	return nil
}

// LastQuery returns the remembered filter; unreadable periods fall back to all
func (s *AnalysisService) LastQuery(ctx context.Context) Query {
	state := s.filters.LoadFilter(ctx)
	period, err := domain.ParsePeriod(state.Period)
	if err != nil {
		period = domain.AllPeriods
	}
	return Query{Period: period, Place: state.Place}
}

// Condition describes the active filter for headers
func Condition(q Query, matched int) string {
	place := q.Place
	if place == "" {
		place = "all"
	}
	return fmt.Sprintf("Period %s / Place %s (%d records)", q.Period.Token(), place, matched)
}
