package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaces_OtherAlwaysLast(t *testing.T) {
	s := Settings{CustomPlaces: []string{" New Court ", "体育館", ""}}

	places := Places(DefaultPlaces, s)

	assert.Equal(t, OtherPlace, places[len(places)-1])
	assert.Contains(t, places, "New Court")
	assert.Equal(t, len(DefaultPlaces)+1, len(places), "duplicates and empties are dropped")
}

func TestPlaces_NoDefaults(t *testing.T) {
	places := Places(nil, Settings{CustomPlaces: []string{OtherPlace, "B", "A"}})

	assert.Equal(t, []string{"B", "A", OtherPlace}, places)
}

func TestAssistTargetsWithUnset(t *testing.T) {
	s := Settings{AssistTargets: []string{"Ken", "Ken", " Aki "}}

	assert.Equal(t, []string{UnsetTarget, "Ken", "Aki"}, AssistTargetsWithUnset(s))
}

func TestSettings_Normalized(t *testing.T) {
	s := Settings{
		AssistTargets:        []string{"", "Ken"},
		CustomPlaces:         []string{"A", "A "},
		SelectedAssistTarget: " Ken ",
	}

	n := s.Normalized()

	assert.Equal(t, []string{"Ken"}, n.AssistTargets)
	assert.Equal(t, []string{"A"}, n.CustomPlaces)
	assert.Equal(t, "Ken", n.SelectedAssistTarget)
}
