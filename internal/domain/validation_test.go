package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() Record {
	return Record{Date: "2025-03-01", Place: "体育館", Matches: 1}
}

func intPtr(v int) *int { return &v }

func TestValidate_AcceptsMinimalRecord(t *testing.T) {
	assert.NoError(t, validRecord().Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	r := Record{Matches: 1}

	err := r.Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("date"))
	assert.True(t, verr.HasField("place"))
}

func TestValidate_MatchesHaveNoUpperBound(t *testing.T) {
	r := validRecord()
	r.Matches = 150
	assert.NoError(t, r.Validate())

	r.Matches = 0
	err := r.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("matches"))
}

func TestValidate_MalformedDate(t *testing.T) {
	r := validRecord()
	r.Date = "2025/03/01"

	err := r.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestValidate_GoalBreakdownMismatch(t *testing.T) {
	r := validRecord()
	r.Goals = Goals{Right: 1, Left: 1, Head: 0, Total: intPtr(3)}

	err := r.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "(2)")
	assert.Contains(t, err.Error(), "(3)")
}

func TestValidate_GoalTotalWithoutBreakdown(t *testing.T) {
	r := validRecord()
	r.Goals = Goals{Total: intPtr(3)}

	assert.NoError(t, r.Validate())
}

func TestValidate_NutmegMismatch(t *testing.T) {
	r := validRecord()
	r.Nutmegs = Nutmegs{Total: 4, Details: NutmegDetails{Goal: 1, Pass: 2}}

	err := r.Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("nutmegs"))
	assert.Contains(t, err.Error(), "(3)")
	assert.Contains(t, err.Error(), "(4)")
}

func TestValidate_NutmegTotalWithoutDetails(t *testing.T) {
	r := validRecord()
	r.Nutmegs = Nutmegs{Total: 4}

	assert.NoError(t, r.Validate())
}

func TestValidate_InvalidVideoURL(t *testing.T) {
	r := validRecord()
	r.PlayVideos = []PlayVideo{{URL: "javascript:alert(1)", Tag: "x"}}

	err := r.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "play video 1")
}
