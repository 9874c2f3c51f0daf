package analytics

import (
	"sort"

	"futsal/internal/domain"
)

// AllTags selects every video tag
const AllTags = "all"

// VideoRow is one valid clip with the session it belongs to
type VideoRow struct {
	Date  string `json:"date" yaml:"date"`
	Place string `json:"place" yaml:"place"`
	Tag   string `json:"tag" yaml:"tag"`
	URL   string `json:"url" yaml:"url"`
}

// CollectVideos flattens the valid clips of records, newest session first
func CollectVideos(records []domain.Record) []VideoRow {
	var rows []VideoRow
	for _, r := range RecentRecords(records, 0) {
		for _, v := range r.ValidVideos() {
			rows = append(rows, VideoRow{Date: r.Date, Place: r.Place, Tag: v.Tag, URL: v.URL})
		}
	}
	return rows
}

// FilterVideos keeps rows with tag; "" or AllTags keeps everything
func FilterVideos(rows []VideoRow, tag string) []VideoRow {
	if tag == "" || tag == AllTags {
		return rows
	}
	var out []VideoRow
	for _, row := range rows {
		if row.Tag == tag {
			out = append(out, row)
		}
	}
	return out
}

// VideoTags returns the sorted distinct tags of rows
func VideoTags(rows []VideoRow) []string {
	seen := map[string]bool{}
	var tags []string
	for _, row := range rows {
		if !seen[row.Tag] {
			seen[row.Tag] = true
			tags = append(tags, row.Tag)
		}
	}
	sort.Strings(tags)
	return tags
}
