package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futsal/internal/domain"
)

func newTestAnalysis(t *testing.T, records ...domain.Record) *AnalysisService {
	t.Helper()
	repo := newTestRepo(t)
	seed(t, repo, records...)
	svc := NewAnalysisService(repo, repo)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func analysisFixture() []domain.Record {
	return []domain.Record{
		{ID: "1", Date: "2025-03-01", CreatedAt: "1", Place: "A", Matches: 2, Goals: domain.Goals{Right: 1},
			PlayVideos: []domain.PlayVideo{{URL: "https://v/1", Tag: "goal"}}},
		{ID: "2", Date: "2025-03-01", CreatedAt: "2", Place: "B", Matches: 1, Goals: domain.Goals{Total: intPtr(2)}},
		{ID: "3", Date: "2024-11-20", CreatedAt: "3", Place: "A", Matches: 1, Assists: domain.Assists{Total: 1},
			PlayVideos: []domain.PlayVideo{{URL: "https://v/3", Tag: "assist"}}},
	}
}

func TestAnalysisService_Build_All(t *testing.T) {
	svc := newTestAnalysis(t, analysisFixture()...)

	report := svc.Build(context.Background(), Query{Period: domain.AllPeriods})

	assert.False(t, report.Empty)
	assert.Equal(t, 3, report.Matched)
	assert.Equal(t, 3, report.KPIs.Goals)
	assert.Equal(t, 4, report.KPIs.Matches)
	assert.Equal(t, 2, report.KPIs.PlayDays)
	assert.Equal(t, "Period all / Place all (3 records)", report.Condition)
	assert.Equal(t, []string{"11/20", "3/1", "3/1(2)"}, report.TrendLabels)
	require.Len(t, report.Places, 2)
	assert.Equal(t, "A", report.Places[0].Key)
	assert.Equal(t, []string{"2025-03", "2024-11"}, report.YearMonths)
	assert.Equal(t, []string{"2", "1", "3"}, []string{report.Recent[0].ID, report.Recent[1].ID, report.Recent[2].ID})
	assert.Equal(t, analysisTags(), report.VideoTags)
	assert.Len(t, report.Videos, 2)
	assert.Equal(t, "all", report.Tag)
}

func analysisTags() []string { return []string{"assist", "goal"} }

func TestAnalysisService_Build_Filtered(t *testing.T) {
	svc := newTestAnalysis(t, analysisFixture()...)

	report := svc.Build(context.Background(), Query{
		Period: domain.MustParsePeriod("2025"),
		Place:  "A",
		Tag:    "goal",
	})

	assert.Equal(t, 1, report.Matched)
	assert.Equal(t, "2025", report.Period)
	assert.Equal(t, "goal", report.Tag)
	assert.Len(t, report.Videos, 1)
	require.Len(t, report.Years, 2, "year summary covers every record")
	assert.Equal(t, "2025", report.Years[0].Key)
}

func TestAnalysisService_Build_UnknownTagFallsBackToAll(t *testing.T) {
	svc := newTestAnalysis(t, analysisFixture()...)

	report := svc.Build(context.Background(), Query{Period: domain.AllPeriods, Tag: "nope"})

	assert.Equal(t, "all", report.Tag)
	assert.Len(t, report.Videos, 2)
}

func TestAnalysisService_Build_Empty(t *testing.T) {
	svc := newTestAnalysis(t)

	report := svc.Build(context.Background(), Query{Period: domain.AllPeriods})

	assert.True(t, report.Empty)
	assert.Equal(t, 0, report.Matched)
	assert.Equal(t, 0.0, report.Averages[0].Value)
	assert.Equal(t, []string{"2025-03"}, report.YearMonths)
}

func TestAnalysisService_RememberFilter(t *testing.T) {
	ctx := context.Background()
	svc := newTestAnalysis(t)

	assert.Equal(t, Query{Period: domain.AllPeriods}, svc.LastQuery(ctx))

	require.NoError(t, svc.RememberFilter(ctx, Query{Period: domain.MustParsePeriod("2025-03"), Place: "A"}))

	assert.Equal(t, Query{Period: domain.MustParsePeriod("2025-03"), Place: "A"}, svc.LastQuery(ctx))
}
