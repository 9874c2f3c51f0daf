package analytics

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futsal/internal/domain"
)

func intPtr(v int) *int { return &v }

func rec(id, date, place string, matches, goals int) domain.Record {
	return domain.Record{
		ID:      id,
		Date:    date,
		Place:   place,
		Matches: matches,
		Goals:   domain.Goals{Total: intPtr(goals)},
	}
}

func fixture() []domain.Record {
	return []domain.Record{
		rec("1", "2025-03-01", "A", 2, 1),
		rec("2", "2025-03-15", "B", 1, 2),
		rec("3", "2025-04-01", "A", 1, 0),
		rec("4", "2024-12-31", "C", 3, 5),
		{ID: "bad-1", Date: "", Place: "A", Matches: 1},
		{ID: "bad-2", Date: "2025-03-02", Place: "", Matches: 1},
	}
}

func ids(records []domain.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		period   string
		place    string
		expected []string
	}{
		{"all", "all", "", []string{"1", "2", "3", "4"}},
		{"empty token", "", "", []string{"1", "2", "3", "4"}},
		{"year", "2025", "", []string{"1", "2", "3"}},
		{"month", "2025-03", "", []string{"1", "2"}},
		{"place", "all", "A", []string{"1", "3"}},
		{"month and place", "2025-03", "A", []string{"1"}},
		{"no match", "2023", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(fixture(), domain.MustParsePeriod(tt.period), tt.place)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestKPIs(t *testing.T) {
	records := []domain.Record{
		{Date: "2025-01-01", Place: "A", Matches: 2,
			Goals:   domain.Goals{Right: 1, Left: 1, Head: 1},
			Assists: domain.Assists{Total: 2, ToTarget: 1},
			Nutmegs: domain.Nutmegs{Total: 2, Details: domain.NutmegDetails{Goal: 1, Dribble: 1}}},
		{Date: "2025-01-01", Place: "B", Matches: 1,
			Goals:   domain.Goals{Right: 1, Total: intPtr(4)},
			Nutmegs: domain.Nutmegs{Total: 5, Legacy: true}},
		{Date: "2025-01-02", Place: "A", Matches: 0},
	}

	got := KPIs(records)

	want := Totals{
		Assists:         2,
		AssistsToTarget: 1,
		Goals:           7,
		GoalsHead:       1,
		GoalsLeft:       1,
		GoalsRight:      2,
		Matches:         4,
		NutmegDetails:   domain.NutmegDetails{Goal: 1, Dribble: 1},
		Nutmegs:         7,
		PlayDays:        2,
		Records:         3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("KPIs mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByPlace_OrdersByMatches(t *testing.T) {
	records := []domain.Record{
		rec("1", "2025-01-01", "A", 2, 3),
		rec("2", "2025-01-02", "A", 1, 1),
		rec("3", "2025-01-03", "B", 5, 0),
	}

	groups := GroupByPlace(records)

	require.Len(t, groups, 2)
	assert.Equal(t, "B", groups[0].Key)
	assert.Equal(t, "A", groups[1].Key)
	assert.Equal(t, 3, groups[1].Matches)
	assert.Equal(t, 4, groups[1].Goals)
	assert.Equal(t, 2, groups[1].PlayDays)
}

func TestGroupByPlace_TieBreaks(t *testing.T) {
	records := []domain.Record{
		rec("1", "2025-01-01", "Z", 2, 0),
		rec("2", "2025-01-01", "Y", 1, 0),
		rec("3", "2025-01-02", "Y", 1, 0),
		rec("4", "2025-01-01", "X", 2, 0),
	}

	groups := GroupByPlace(records)

	var keys []string
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	assert.Equal(t, []string{"Y", "X", "Z"}, keys)
}

func TestGroupByYear(t *testing.T) {
	groups := GroupByYear(Filter(fixture(), domain.AllPeriods, ""))

	require.Len(t, groups, 2)
	assert.Equal(t, "2025", groups[0].Key)
	assert.Equal(t, 4, groups[0].Matches)
	assert.Equal(t, 3, groups[0].PlayDays)
	assert.Equal(t, "2024", groups[1].Key)
	assert.Equal(t, 5, groups[1].Goals)
}

func TestGroupByMonth(t *testing.T) {
	groups := GroupByMonth(Filter(fixture(), domain.AllPeriods, ""))

	var keys []string
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	assert.Equal(t, []string{"2025-04", "2025-03", "2024-12"}, keys)
	assert.Equal(t, 2, groups[1].Records)
}

func TestCumulativeTrend(t *testing.T) {
	records := []domain.Record{
		{Date: "2025-01-02", CreatedAt: "2025-01-02T10:00:00.000Z", Goals: domain.Goals{Right: 1}, Assists: domain.Assists{Total: 1}},
		{Date: "2025-01-01", CreatedAt: "2025-01-01T10:00:00.000Z", Goals: domain.Goals{Total: intPtr(2)}},
		{Date: "2025-01-02", CreatedAt: "2025-01-02T09:00:00.000Z", Nutmegs: domain.Nutmegs{Total: 3}},
	}

	rows := CumulativeTrend(records)

	want := []TrendRow{
		{Date: "2025-01-01", Goals: 2},
		{Date: "2025-01-02", Goals: 2, Nutmegs: 3},
		{Date: "2025-01-02", Goals: 3, Assists: 1, Nutmegs: 3},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("trend mismatch (-want +got):\n%s", diff)
	}
}

func TestTrendLabels(t *testing.T) {
	rows := []TrendRow{
		{Date: "2025-03-01"},
		{Date: "2025-03-01"},
		{Date: "2025-03-01"},
		{Date: "2025-03-09"},
		{Date: "2025-12-25"},
	}

	assert.Equal(t, []string{"3/1", "3/1(2)", "3/1(3)", "3/9", "12/25"}, TrendLabels(rows))
}

func TestAverages(t *testing.T) {
	t.Run("zero matches uses denominator one", func(t *testing.T) {
		avgs := Averages(Totals{Goals: 3})
		require.Len(t, avgs, 3)
		assert.Equal(t, 3.0, avgs[0].Value)
		assert.Equal(t, "3", avgs[0].Display())
	})

	t.Run("rounds to one decimal", func(t *testing.T) {
		avgs := Averages(Totals{Goals: 2, Assists: 1, Nutmegs: 5, Matches: 3})
		assert.Equal(t, "0.7", avgs[0].Display())
		assert.Equal(t, "0.3", avgs[1].Display())
		assert.Equal(t, "1.7", avgs[2].Display())
	})
}

func TestFormatAverage(t *testing.T) {
	assert.Equal(t, "0", FormatAverage(0))
	assert.Equal(t, "1.5", FormatAverage(1.5))
	assert.Equal(t, "2", FormatAverage(2.04))
}

func TestDistinctYearMonths(t *testing.T) {
	now := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	months := DistinctYearMonths(fixture(), now)

	assert.Equal(t, []string{"2025-05", "2025-04", "2025-03", "2024-12"}, months)
}

func TestDistinctYearMonths_CurrentMonthLeadsWhenAbsent(t *testing.T) {
	records := []domain.Record{{Date: "2025-04-01"}, {Date: "2025-07-20"}}

	before := DistinctYearMonths(records, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []string{"2025-01", "2025-07", "2025-04"}, before)

	present := DistinctYearMonths(records, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []string{"2025-07", "2025-04"}, present)
}

func TestDistinctYears(t *testing.T) {
	assert.Equal(t, []string{"2025", "2024"}, DistinctYears(fixture()))
}

func TestDistinctPlaces(t *testing.T) {
	records := []domain.Record{
		{Place: "体育館"}, {Place: "A"}, {Place: "体育館"}, {Place: ""},
	}

	places := DistinctPlaces(records)

	assert.ElementsMatch(t, []string{"体育館", "A"}, places)
	assert.Len(t, places, 2)
}

func TestRecentRecords(t *testing.T) {
	got := RecentRecords(Filter(fixture(), domain.AllPeriods, ""), 2)

	assert.Equal(t, []string{"3", "2"}, ids(got))
}

func TestVideos(t *testing.T) {
	records := []domain.Record{
		{Date: "2025-01-01", Place: "A", PlayVideos: []domain.PlayVideo{
			{URL: "https://v/1", Tag: "goal"},
			{URL: "not a url", Tag: "goal"},
		}},
		{Date: "2025-02-01", Place: "B", PlayVideos: []domain.PlayVideo{
			{URL: "http://v/2"},
		}},
	}

	rows := CollectVideos(records)

	require.Len(t, rows, 2)
	assert.Equal(t, "http://v/2", rows[0].URL)
	assert.Equal(t, domain.DefaultVideoTag, rows[0].Tag)
	assert.Equal(t, []string{"goal", domain.DefaultVideoTag}, VideoTags(rows))
	assert.Len(t, FilterVideos(rows, "goal"), 1)
	assert.Len(t, FilterVideos(rows, AllTags), 2)
}
