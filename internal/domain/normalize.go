package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord prepares word text for storage and comparison:
//   - trims leading/trailing whitespace
//   - composes to Unicode NFC
//   - collapses runs of whitespace into a single space
//
// Case is left alone; the script has none.
func NormalizeWord(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// IsFarewell reports whether text is the session-ending word.
func IsFarewell(text string) bool {
	return NormalizeWord(text) == FarewellWord
}
