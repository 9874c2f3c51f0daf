package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// PeriodKind selects how a Period matches dates
type PeriodKind int

const (
	PeriodAll PeriodKind = iota
	PeriodYear
	PeriodMonth
)

// AllToken is the canonical period token for "no date restriction"
const AllToken = "all"

var (
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// Period is a parsed year/month selector
type Period struct {
	Kind  PeriodKind
	Value string // "" for all, "YYYY" or "YYYY-MM"
}

// AllPeriods matches every record
var AllPeriods = Period{Kind: PeriodAll}

// ParsePeriod parses "all", "YYYY" or "YYYY-MM".
// "", any casing of "all" and "すべて" are accepted as all.
func ParsePeriod(token string) (Period, error) {
	token = strings.TrimSpace(token)
	switch {
	case token == "" || strings.EqualFold(token, AllToken) || token == "すべて":
		return AllPeriods, nil
	case yearPattern.MatchString(token):
		return Period{Kind: PeriodYear, Value: token}, nil
	case monthPattern.MatchString(token):
		return Period{Kind: PeriodMonth, Value: token}, nil
	default:
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, token)
	}
}

// MustParsePeriod is ParsePeriod for known-good tokens
func MustParsePeriod(token string) Period {
	p, err := ParsePeriod(token)
	if err != nil {
		panic(err)
	}
	return p
}

// Matches reports whether a YYYY-MM-DD date falls inside the period
func (p Period) Matches(date string) bool {
	switch p.Kind {
	case PeriodYear:
		return strings.HasPrefix(date, p.Value+"-")
	case PeriodMonth:
		return len(date) >= 7 && date[:7] == p.Value
	default:
		return true
	}
}

// Token returns the query-string form of the period
func (p Period) Token() string {
	if p.Kind == PeriodAll {
		return AllToken
	}
	return p.Value
}

// IsAll reports whether the period has no date restriction
func (p Period) IsAll() bool {
	return p.Kind == PeriodAll
}

// FilterState is the last-used filter, persisted across navigation
type FilterState struct {
	Place  string `json:"place"`
	Period string `json:"ym"`
}
