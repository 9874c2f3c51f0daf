package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError describes one offending input field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError blocks a save and lists every offending field
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Message
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// HasField reports whether field is among the offending fields
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// recordRules carries the tag-validated subset of a record
type recordRules struct {
	Date    string `validate:"required,datetime=2006-01-02"`
	Matches int    `validate:"min=1"`
	Place   string `validate:"required"`
}

// Validate enforces the write-time invariants of a record.
// Stored data is never re-validated; only new and edited records pass through here.
func (r Record) Validate() error {
	verr := &ValidationError{}

	rules := recordRules{
		Date:    strings.TrimSpace(r.Date),
		Matches: r.Matches,
		Place:   strings.TrimSpace(r.Place),
	}
	if err := validate.Struct(rules); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "Date":
				if fe.Tag() == "required" {
					verr.add("date", "date is required")
				} else {
					verr.add("date", "date %q must be formatted as YYYY-MM-DD", r.Date)
				}
			case "Place":
				verr.add("place", "place is required")
			case "Matches":
				verr.add("matches", "matches must be at least 1 (got %d)", r.Matches)
			}
		}
	}

	if r.Goals.Total != nil && r.Goals.BreakdownSum() > 0 && r.Goals.BreakdownSum() != *r.Goals.Total {
		verr.add("goals", "goal breakdown sum (%d) does not match total (%d)", r.Goals.BreakdownSum(), *r.Goals.Total)
	}

	if sum := r.Nutmegs.Details.Sum(); sum > 0 && sum != r.Nutmegs.Total {
		verr.add("nutmegs", "nutmeg details sum (%d) does not match total (%d)", sum, r.Nutmegs.Total)
	}

	for i, v := range r.PlayVideos {
		if strings.TrimSpace(v.URL) != "" && !v.Valid() {
			verr.add("playVideos", "play video %d: %q is not an http(s) URL", i+1, v.URL)
		}
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
