package analytics

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"futsal/internal/domain"
)

// DistinctPlaces returns the venues present in records in Japanese collation order
func DistinctPlaces(records []domain.Record) []string {
	seen := map[string]bool{}
	var places []string
	for _, r := range records {
		if r.Place == "" || seen[r.Place] {
			continue
		}
		seen[r.Place] = true
		places = append(places, r.Place)
	}
	collate.New(language.Japanese).SortStrings(places)
	return places
}

// DistinctYearMonths returns YYYY-MM values newest first.
// The month of now is always offered; when no record falls in it, it leads the list.
func DistinctYearMonths(records []domain.Record, now time.Time) []string {
	seen := map[string]bool{}
	var months []string
	for _, r := range records {
		ym := r.YearMonth()
		if ym == "" || seen[ym] {
			continue
		}
		seen[ym] = true
		months = append(months, ym)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	current := now.Format("2006-01")
	if !seen[current] {
		months = append([]string{current}, months...)
	}
	return months
}

// DistinctYears returns the years present in records, newest first
func DistinctYears(records []domain.Record) []string {
	seen := map[string]bool{}
	var years []string
	for _, r := range records {
		y := r.Year()
		if y == "" || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}

// RecentRecords returns records newest first, truncated to limit when limit > 0
func RecentRecords(records []domain.Record, limit int) []domain.Record {
	sorted := append([]domain.Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortKey() > sorted[j].SortKey()
	})
	if limit > 0 && len(sorted) > limit {
		return sorted[:limit]
	}
	return sorted
}
