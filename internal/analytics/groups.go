package analytics

import (
	"sort"

	"futsal/internal/domain"
)

// Group is one bucket of a grouping together with its totals
type Group struct {
	Key    string `json:"key" yaml:"key"`
	Totals `yaml:",inline"`
}

func group(records []domain.Record, keyOf func(domain.Record) string) []Group {
	index := map[string]int{}
	days := map[string]dayCounter{}
	var groups []Group

	for _, r := range records {
		key := keyOf(r)
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
			days[key] = dayCounter{}
		}
		groups[i].add(r)
		days[key].add(r.Date)
	}

	for i := range groups {
		groups[i].PlayDays = len(days[groups[i].Key])
	}
	return groups
}

// GroupByPlace buckets by venue, ordered by matches, then play days, then name
func GroupByPlace(records []domain.Record) []Group {
	groups := group(records, func(r domain.Record) string { return r.Place })
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Matches != b.Matches {
			return a.Matches > b.Matches
		}
		if a.PlayDays != b.PlayDays {
			return a.PlayDays > b.PlayDays
		}
		return a.Key < b.Key
	})
	return groups
}

// GroupByYear buckets by the 4-digit year, newest first
func GroupByYear(records []domain.Record) []Group {
	groups := group(records, domain.Record.Year)
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key > groups[j].Key })
	return groups
}

// GroupByMonth buckets by YYYY-MM, newest first
func GroupByMonth(records []domain.Record) []Group {
	groups := group(records, domain.Record.YearMonth)
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key > groups[j].Key })
	return groups
}

// TopGroups returns at most n groups
func TopGroups(groups []Group, n int) []Group {
	if n >= 0 && len(groups) > n {
		return groups[:n]
	}
	return groups
}
