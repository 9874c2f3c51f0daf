package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// rawRecord mirrors every stored record variant.
// Counts stay raw so that strings, nulls and negatives can be tolerated.
type rawRecord struct {
	Assists    *rawAssists     `json:"assists"`
	CreatedAt  string          `json:"createdAt"`
	Date       string          `json:"date"`
	Goals      *rawGoals       `json:"goals"`
	ID         string          `json:"id"`
	Matches    json.RawMessage `json:"matches"`
	Memo       string          `json:"memo"`
	Nutmegs    json.RawMessage `json:"nutmegs"`
	Place      string          `json:"place"`
	PlayVideos []PlayVideo     `json:"playVideos"`
	UpdatedAt  string          `json:"updatedAt"`
}

type rawGoals struct {
	Head  json.RawMessage `json:"head"`
	Left  json.RawMessage `json:"left"`
	Right json.RawMessage `json:"right"`
	Total json.RawMessage `json:"total"`
}

// rawAssists also accepts the pivo* names used before target players were configurable
type rawAssists struct {
	PivoName   string          `json:"pivoName"`
	TargetName string          `json:"targetName"`
	ToPivo     json.RawMessage `json:"toPivo"`
	ToTarget   json.RawMessage `json:"toTarget"`
	Total      json.RawMessage `json:"total"`
}

type rawNutmegs struct {
	Details json.RawMessage `json:"details"`
	Total   json.RawMessage `json:"total"`
}

type rawNutmegDetails struct {
	AssistPass json.RawMessage `json:"assistPass"`
	Dribble    json.RawMessage `json:"dribble"`
	Goal       json.RawMessage `json:"goal"`
	Only       json.RawMessage `json:"only"`
	Pass       json.RawMessage `json:"pass"`
}

// UnmarshalJSON decodes any stored record variant into the canonical shape
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rec := Record{
		CreatedAt:  raw.CreatedAt,
		Date:       strings.TrimSpace(raw.Date),
		ID:         raw.ID,
		Matches:    decodeMatches(raw.Matches),
		Memo:       raw.Memo,
		Place:      strings.TrimSpace(raw.Place),
		PlayVideos: raw.PlayVideos,
		UpdatedAt:  raw.UpdatedAt,
	}

	if raw.Goals != nil {
		rec.Goals = Goals{
			Head:  decodeCount(raw.Goals.Head),
			Left:  decodeCount(raw.Goals.Left),
			Right: decodeCount(raw.Goals.Right),
		}
		if total, ok := decodeOptionalCount(raw.Goals.Total); ok {
			rec.Goals.Total = &total
		}
	}

	if raw.Assists != nil {
		rec.Assists = Assists{
			TargetName: raw.Assists.TargetName,
			Total:      decodeCount(raw.Assists.Total),
		}
		if rec.Assists.TargetName == "" {
			rec.Assists.TargetName = raw.Assists.PivoName
		}
		if toTarget, ok := decodeOptionalCount(raw.Assists.ToTarget); ok {
			rec.Assists.ToTarget = toTarget
		} else {
			rec.Assists.ToTarget = decodeCount(raw.Assists.ToPivo)
		}
	}
	if rec.Assists.TargetName == "" {
		rec.Assists.TargetName = UnsetTarget
	}

	nutmegs, err := decodeNutmegs(raw.Nutmegs)
	if err != nil {
		return err
	}
	rec.Nutmegs = nutmegs

	*r = rec
	return nil
}

// decodeNutmegs handles both the bare-number legacy shape and the structured shape
func decodeNutmegs(data json.RawMessage) (Nutmegs, error) {
	if isNull(data) {
		return Nutmegs{}, nil
	}

	trimmed := bytes.TrimSpace(data)
	if trimmed[0] != '{' {
		return Nutmegs{Legacy: true, Total: decodeCount(data)}, nil
	}

	var raw rawNutmegs
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return Nutmegs{}, err
	}

	nm := Nutmegs{Total: decodeCount(raw.Total)}

	// details that are not an object carry no breakdown
	var details rawNutmegDetails
	if d := bytes.TrimSpace(raw.Details); len(d) > 0 && d[0] == '{' && json.Unmarshal(d, &details) == nil {
		nm.Details = NutmegDetails{
			AssistPass: decodeCount(details.AssistPass),
			Dribble:    decodeCount(details.Dribble),
			Goal:       decodeCount(details.Goal),
			Only:       decodeCount(details.Only),
			Pass:       decodeCount(details.Pass),
		}
	}
	return nm, nil
}

// decodeMatches returns the stored match count.
// Only JSON numbers count; absent, strings and anything below 1 mean a single match.
func decodeMatches(data json.RawMessage) int {
	var f float64
	if isNull(data) || json.Unmarshal(data, &f) != nil {
		return 1
	}
	if math.IsNaN(f) || f < 1 {
		return 1
	}
	return int(f)
}

// decodeCount converts a stored tally to a non-negative int.
// Numbers and numeric strings are accepted; anything else is zero.
func decodeCount(data json.RawMessage) int {
	v, ok := decodeOptionalCount(data)
	if !ok {
		return 0
	}
	return v
}

func decodeOptionalCount(data json.RawMessage) (int, bool) {
	if isNull(data) {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return int(f), true
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
