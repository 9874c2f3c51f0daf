package analytics

import (
	"fmt"
	"sort"
	"strconv"

	"futsal/internal/domain"
)

// TrendRow is the running total after one record
type TrendRow struct {
	Assists int    `json:"assists" yaml:"assists"`
	Date    string `json:"date" yaml:"date"`
	Goals   int    `json:"goals" yaml:"goals"`
	Nutmegs int    `json:"nutmegs" yaml:"nutmegs"`
}

// SortChronological returns a copy ordered by date, then creation time
func SortChronological(records []domain.Record) []domain.Record {
	sorted := append([]domain.Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortKey() < sorted[j].SortKey()
	})
	return sorted
}

// CumulativeTrend emits one running-total row per record in chronological order
func CumulativeTrend(records []domain.Record) []TrendRow {
	rows := make([]TrendRow, 0, len(records))
	var goals, assists, nutmegs int
	for _, r := range SortChronological(records) {
		goals += r.GoalTotal()
		assists += r.Assists.Total
		nutmegs += r.Nutmegs.Total
		rows = append(rows, TrendRow{Assists: assists, Date: r.Date, Goals: goals, Nutmegs: nutmegs})
	}
	return rows
}

// TrendLabels abbreviates dates to M/D and numbers repeated dates M/D(2), M/D(3)...
func TrendLabels(rows []TrendRow) []string {
	seen := map[string]int{}
	labels := make([]string, len(rows))
	for i, row := range rows {
		seen[row.Date]++
		label := shortDate(row.Date)
		if n := seen[row.Date]; n > 1 {
			label = fmt.Sprintf("%s(%d)", label, n)
		}
		labels[i] = label
	}
	return labels
}

// shortDate turns YYYY-MM-DD into M/D; other input is returned unchanged
func shortDate(date string) string {
	if len(date) != len(domain.DateLayout) {
		return date
	}
	month, errM := strconv.Atoi(date[5:7])
	day, errD := strconv.Atoi(date[8:10])
	if errM != nil || errD != nil {
		return date
	}
	return fmt.Sprintf("%d/%d", month, day)
}
