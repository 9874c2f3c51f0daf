package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, data string) Record {
	t.Helper()
	var r Record
	require.NoError(t, json.Unmarshal([]byte(data), &r))
	return r
}

func TestUnmarshal_LegacyBareNutmegs(t *testing.T) {
	r := decodeRecord(t, `{"id":"a","date":"2025-01-02","place":"体育館","nutmegs":4}`)

	assert.Equal(t, 4, r.Nutmegs.Total)
	assert.True(t, r.Nutmegs.Legacy)
	assert.Equal(t, NutmegDetails{}, r.Nutmegs.Details)
}

func TestUnmarshal_StructuredNutmegs(t *testing.T) {
	r := decodeRecord(t, `{"id":"a","date":"2025-01-02","place":"体育館",
		"nutmegs":{"total":5,"details":{"goal":1,"assistPass":1,"pass":1,"dribble":1,"only":1}}}`)

	assert.Equal(t, 5, r.Nutmegs.Total)
	assert.False(t, r.Nutmegs.Legacy)
	assert.Equal(t, 5, r.Nutmegs.Details.Sum())
}

func TestUnmarshal_MissingNutmegs(t *testing.T) {
	r := decodeRecord(t, `{"id":"a","date":"2025-01-02","place":"体育館"}`)

	assert.Equal(t, 0, r.Nutmegs.Total)
	assert.False(t, r.Nutmegs.Legacy)
}

func TestUnmarshal_NutmegDetailsNotAnObject(t *testing.T) {
	r := decodeRecord(t, `{"id":"a","date":"2025-01-02","place":"p","nutmegs":{"total":1,"details":[]}}`)

	assert.Equal(t, 1, r.Nutmegs.Total)
	assert.Equal(t, NutmegDetails{}, r.Nutmegs.Details)
}

func TestUnmarshal_MatchesDefaultsToOne(t *testing.T) {
	tests := []struct {
		name     string
		matches  string
		expected int
	}{
		{"absent", ``, 1},
		{"null", `,"matches":null`, 1},
		{"zero", `,"matches":0`, 1},
		{"string", `,"matches":"3"`, 1},
		{"number", `,"matches":3`, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := decodeRecord(t, `{"id":"a","date":"2025-01-02","place":"p"`+tt.matches+`}`)
			assert.Equal(t, tt.expected, r.Matches)
		})
	}
}

func TestUnmarshal_GoalTotalPolicy(t *testing.T) {
	tests := []struct {
		name     string
		goals    string
		expected int
	}{
		{"breakdown only", `{"right":1,"left":2,"head":3}`, 6},
		{"total wins", `{"right":1,"left":0,"head":0,"total":4}`, 4},
		{"negative total ignored", `{"right":1,"left":1,"head":0,"total":-1}`, 2},
		{"null total ignored", `{"right":2,"total":null}`, 2},
		{"zero total is authoritative", `{"total":0}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := decodeRecord(t, `{"id":"a","date":"2025-01-02","place":"p","goals":`+tt.goals+`}`)
			assert.Equal(t, tt.expected, r.GoalTotal())
		})
	}
}

func TestUnmarshal_LegacyPivoAssists(t *testing.T) {
	r := decodeRecord(t, `{"id":"a","date":"2025-01-02","place":"p",
		"assists":{"total":3,"pivoName":"Ken","toPivo":2}}`)

	assert.Equal(t, 3, r.Assists.Total)
	assert.Equal(t, "Ken", r.Assists.TargetName)
	assert.Equal(t, 2, r.Assists.ToTarget)
}

func TestUnmarshal_NumericStringsAndNegatives(t *testing.T) {
	r := decodeRecord(t, `{"id":"a","date":"2025-01-02","place":"p",
		"goals":{"right":"2","left":-3,"head":"x"}}`)

	assert.Equal(t, 2, r.Goals.Right)
	assert.Equal(t, 0, r.Goals.Left)
	assert.Equal(t, 0, r.Goals.Head)
}

func TestMarshal_LegacyReencodesCanonical(t *testing.T) {
	r := decodeRecord(t, `{"id":"a","date":"2025-01-02","place":"p","nutmegs":2}`)

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	nutmegs, ok := generic["nutmegs"].(map[string]any)
	require.True(t, ok, "nutmegs should be re-encoded as an object")
	assert.EqualValues(t, 2, nutmegs["total"])
}

func TestRecord_YearAndMonth(t *testing.T) {
	assert.Equal(t, "2025", Record{Date: "2025-03-09"}.Year())
	assert.Equal(t, "2025-03", Record{Date: "2025-03-09"}.YearMonth())
	assert.Equal(t, "", Record{Date: "25-3-9"}.YearMonth())
	assert.Equal(t, "", Record{Date: ""}.Year())
}

func TestRecord_ValidVideos(t *testing.T) {
	r := Record{PlayVideos: []PlayVideo{
		{URL: " https://example.com/a ", Tag: ""},
		{URL: "ftp://example.com/b", Tag: "goal"},
		{URL: "HTTP://example.com/c", Tag: "nutmeg"},
	}}

	videos := r.ValidVideos()

	require.Len(t, videos, 2)
	assert.Equal(t, PlayVideo{URL: "https://example.com/a", Tag: DefaultVideoTag}, videos[0])
	assert.Equal(t, "nutmeg", videos[1].Tag)
}
