package couplet

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/heartmarshall/padagalu-backend/internal/domain"
)

const maxLineLength = 500

// GenerateInput holds the parameters for a generation request. Zero Target
// and Count fall back to the configured defaults.
type GenerateInput struct {
	Target int
	Count  int
	Seed   *int64
	// Words replaces the stored pool when non-empty.
	Words []string
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate(maxTarget int) error {
	var ve domain.ValidationError
	if i.Target < 0 {
		ve.Add("target", "must be non-negative")
	}
	if maxTarget > 0 && i.Target > maxTarget {
		ve.Add("target", "too large")
	}
	if i.Count < 0 {
		ve.Add("count", "must be non-negative")
	}
	for _, w := range i.Words {
		if utf8.RuneCountInString(w) > domain.MaxWordLength {
			ve.Add("words", "word longer than 100 characters")
			break
		}
	}
	return ve.Err()
}

// SaveInput holds a couplet to keep. The score is recomputed on save.
type SaveInput struct {
	Line1  string
	Line2  string
	Target int
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	var ve domain.ValidationError
	for _, f := range []struct{ name, value string }{{"line1", i.Line1}, {"line2", i.Line2}} {
		v := strings.TrimSpace(f.value)
		if v == "" {
			ve.Add(f.name, "required")
			continue
		}
		if utf8.RuneCountInString(v) > maxLineLength {
			ve.Add(f.name, "max 500 characters")
		}
	}
	if i.Target < 0 {
		ve.Add("target", "must be non-negative")
	}
	return ve.Err()
}

// ListInput holds the parameters for listing saved couplets.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var ve domain.ValidationError
	if i.Limit < 0 {
		ve.Add("limit", "must be non-negative")
	}
	if i.Limit > MaxLimit {
		ve.Add("limit", "max 200")
	}
	if i.Offset < 0 {
		ve.Add("offset", "must be non-negative")
	}
	return ve.Err()
}

// DeleteInput identifies a saved couplet.
type DeleteInput struct {
	ID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
