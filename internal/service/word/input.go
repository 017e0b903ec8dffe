package word

import (
	"unicode/utf8"

	"github.com/heartmarshall/padagalu-backend/internal/domain"
)

// LookupInput holds the parameters for a word lookup.
type LookupInput struct {
	Text string
	// Add stores the word when it is missing.
	Add bool
}

// Validate checks all fields and collects all errors.
func (i LookupInput) Validate() error {
	var ve domain.ValidationError
	validateText(&ve, i.Text)
	return ve.Err()
}

// AddInput holds the parameters for adding a word.
type AddInput struct {
	Text string
}

// Validate checks all fields and collects all errors.
func (i AddInput) Validate() error {
	var ve domain.ValidationError
	if !validateText(&ve, i.Text) {
		return ve.Err()
	}
	if domain.IsFarewell(i.Text) {
		ve.Add("text", "reserved word")
	}
	return ve.Err()
}

// validateText reports whether raw is an acceptable word, recording why not.
func validateText(ve *domain.ValidationError, raw string) bool {
	text := domain.NormalizeWord(raw)
	switch {
	case text == "":
		ve.Add("text", "required")
	case utf8.RuneCountInString(text) > domain.MaxWordLength:
		ve.Add("text", "max 100 characters")
	default:
		return true
	}
	return false
}
