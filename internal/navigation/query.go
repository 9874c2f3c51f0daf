// Package navigation implements the query contract between the record
// screens and the analysis screen.
package navigation

import (
	"net/url"
	"strings"

	"futsal/internal/domain"
	"futsal/internal/services"
)

// Query parameter names
const (
	ParamBack     = "back"
	ParamPlace    = "place"
	ParamReturnTo = "returnTo"
	ParamTag      = "tag"
	ParamYM       = "ym"
)

// HomePage is the entry screen that return navigation targets
const HomePage = "./index.html"

// returnTabs are the symbolic origins the analysis screen can hand control back to
var returnTabs = []string{"mypage", "settings", "record"}

// Query is the decoded analysis screen query string
type Query struct {
	Back     string
	Period   domain.Period
	Place    string
	ReturnTo string
	Tag      string
}

// ParseQuery decodes analysis parameters; "all" aliases and empty ym select every period
func ParseQuery(values url.Values) (Query, error) {
	period, err := domain.ParsePeriod(values.Get(ParamYM))
	if err != nil {
		return Query{}, err
	}
	return Query{
		Back:     strings.TrimSpace(values.Get(ParamBack)),
		Period:   period,
		Place:    strings.TrimSpace(values.Get(ParamPlace)),
		ReturnTo: strings.TrimSpace(values.Get(ParamReturnTo)),
		Tag:      strings.TrimSpace(values.Get(ParamTag)),
	}, nil
}

// Values encodes q, omitting unrestricted filters
func (q Query) Values() url.Values {
	v := url.Values{}
	if !q.Period.IsAll() {
		v.Set(ParamYM, q.Period.Token())
	}
	if q.Place != "" {
		v.Set(ParamPlace, q.Place)
	}
	if q.Tag != "" && q.Tag != "all" {
		v.Set(ParamTag, q.Tag)
	}
	if q.ReturnTo != "" {
		v.Set(ParamReturnTo, q.ReturnTo)
	}
	if q.Back != "" {
		v.Set(ParamBack, q.Back)
	}
	return v
}

// Encode returns the query string without a leading "?"
func (q Query) Encode() string {
	return q.Values().Encode()
}

// Analysis converts the navigation query into an analysis service query
func (q Query) Analysis() services.Query {
	return services.Query{Period: q.Period, Place: q.Place, Tag: q.Tag}
}

// FromAnalysis builds a navigation query for an analysis filter opened from returnTo
func FromAnalysis(q services.Query, returnTo string) Query {
	return Query{Period: q.Period, Place: q.Place, ReturnTo: returnTo, Tag: q.Tag}
}

// AnalysisURL joins base and the encoded query
func AnalysisURL(base string, q Query) string {
	encoded := q.Encode()
	if encoded == "" {
		return base
	}
	return base + "?" + encoded
}

// ReturnURL resolves where the analysis screen navigates back to.
// A literal back URL wins, then a known returnTo tab, else the home page.
func ReturnURL(q Query) string {
	if q.Back != "" {
		if decoded, err := url.PathUnescape(q.Back); err == nil {
			return decoded
		}
		return q.Back
	}
	if domain.Contains(returnTabs, q.ReturnTo) {
		return HomePage + "#tab=" + q.ReturnTo
	}
	return HomePage
}
