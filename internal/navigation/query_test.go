package navigation

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futsal/internal/domain"
)

func TestParseQuery_AllAliases(t *testing.T) {
	for _, ym := range []string{"", "all", "ALL", "All", "すべて"} {
		q, err := ParseQuery(url.Values{ParamYM: {ym}})
		require.NoError(t, err, ym)
		assert.True(t, q.Period.IsAll(), ym)
	}
}

func TestParseQuery(t *testing.T) {
	values, err := url.ParseQuery("ym=2025-03&place=%E4%BD%93%E8%82%B2%E9%A4%A8&returnTo=mypage&tag=goal")
	require.NoError(t, err)

	q, err := ParseQuery(values)

	require.NoError(t, err)
	assert.Equal(t, domain.MustParsePeriod("2025-03"), q.Period)
	assert.Equal(t, "体育館", q.Place)
	assert.Equal(t, "mypage", q.ReturnTo)
	assert.Equal(t, "goal", q.Tag)
}

func TestParseQuery_InvalidPeriod(t *testing.T) {
	_, err := ParseQuery(url.Values{ParamYM: {"March"}})

	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestAnalysisURL(t *testing.T) {
	assert.Equal(t, "analysis.html", AnalysisURL("analysis.html", Query{Period: domain.AllPeriods}))
	assert.Equal(t, "analysis.html?place=A&returnTo=mypage&ym=2025",
		AnalysisURL("analysis.html", Query{Period: domain.MustParsePeriod("2025"), Place: "A", ReturnTo: "mypage"}))
}

func TestEncode_RoundTrip(t *testing.T) {
	original := Query{Period: domain.MustParsePeriod("2024-12"), Place: "B C", Tag: "goal", ReturnTo: "settings"}

	values, err := url.ParseQuery(original.Encode())
	require.NoError(t, err)
	parsed, err := ParseQuery(values)

	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestReturnURL(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		expected string
	}{
		{"back wins", Query{Back: "./index.html%23tab%3Dmypage", ReturnTo: "settings"}, "./index.html#tab=mypage"},
		{"literal back", Query{Back: "/custom?x=1"}, "/custom?x=1"},
		{"undecodable back", Query{Back: "%zz"}, "%zz"},
		{"mypage", Query{ReturnTo: "mypage"}, "./index.html#tab=mypage"},
		{"settings", Query{ReturnTo: "settings"}, "./index.html#tab=settings"},
		{"record", Query{ReturnTo: "record"}, "./index.html#tab=record"},
		{"unknown", Query{ReturnTo: "elsewhere"}, "./index.html"},
		{"empty", Query{}, "./index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReturnURL(tt.query))
		})
	}
}
