package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		token string
		kind  PeriodKind
		value string
	}{
		{"", PeriodAll, ""},
		{"all", PeriodAll, ""},
		{"ALL", PeriodAll, ""},
		{"All", PeriodAll, ""},
		{"すべて", PeriodAll, ""},
		{"2025", PeriodYear, "2025"},
		{" 2025-03 ", PeriodMonth, "2025-03"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			p, err := ParsePeriod(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, tt.value, p.Value)
		})
	}
}

func TestParsePeriod_Invalid(t *testing.T) {
	for _, token := range []string{"2025-3", "25", "March", "2025-03-01"} {
		_, err := ParsePeriod(token)
		assert.True(t, errors.Is(err, ErrInvalidPeriod), token)
	}
}

func TestPeriod_Matches(t *testing.T) {
	year := MustParsePeriod("2025")
	month := MustParsePeriod("2025-03")

	assert.True(t, year.Matches("2025-01-01"))
	assert.False(t, year.Matches("20251-01-01"))
	assert.False(t, year.Matches("2024-12-31"))
	assert.True(t, month.Matches("2025-03-31"))
	assert.False(t, month.Matches("2025-04-01"))
	assert.True(t, AllPeriods.Matches("anything"))
}

func TestPeriod_Token(t *testing.T) {
	assert.Equal(t, "all", AllPeriods.Token())
	assert.Equal(t, "2025-03", MustParsePeriod("2025-03").Token())
}
