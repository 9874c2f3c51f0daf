// Package analytics turns session records into display-ready summaries.
// Every function is pure: records in, values out.
package analytics

import "futsal/internal/domain"

// Filter keeps well-formed records inside period and, when place is set, at that venue
func Filter(records []domain.Record, period domain.Period, place string) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if !r.IsWellFormed() {
			continue
		}
		if !period.Matches(r.Date) {
			continue
		}
		if place != "" && r.Place != place {
			continue
		}
		out = append(out, r)
	}
	return out
}
