package domain

import (
	"regexp"
	"strings"
)

// DefaultVideoTag is used for clips stored without a tag
const DefaultVideoTag = "その他"

var httpURLPattern = regexp.MustCompile(`(?i)^https?://`)

// PlayVideo references an external highlight clip
type PlayVideo struct {
	Tag string `json:"tag"`
	URL string `json:"url"`
}

// Valid reports whether the clip has a well-formed http(s) URL
func (v PlayVideo) Valid() bool {
	return httpURLPattern.MatchString(strings.TrimSpace(v.URL))
}

// Normalized returns the clip with a trimmed URL and a non-empty tag
func (v PlayVideo) Normalized() PlayVideo {
	tag := strings.TrimSpace(v.Tag)
	if tag == "" {
		tag = DefaultVideoTag
	}
	return PlayVideo{Tag: tag, URL: strings.TrimSpace(v.URL)}
}
