// Package prosody segments text into akshara clusters and computes maatra
// weights and rhyme similarity. Script-specific data lives behind the Script
// interface; everything else in the package is script-agnostic.
package prosody

// Category classifies a single rune for prosodic analysis.
type Category int

const (
	CategoryNonScript Category = iota
	CategoryGeneric
	CategoryIndependentShort
	CategoryIndependentLong
	CategoryDependentShort
	CategoryDependentLong
	CategoryJoiner
)

func (c Category) String() string {
	switch c {
	case CategoryGeneric:
		return "GENERIC"
	case CategoryIndependentShort:
		return "INDEPENDENT_SHORT"
	case CategoryIndependentLong:
		return "INDEPENDENT_LONG"
	case CategoryDependentShort:
		return "DEPENDENT_SHORT"
	case CategoryDependentLong:
		return "DEPENDENT_LONG"
	case CategoryJoiner:
		return "JOINER"
	}
	return "NON_SCRIPT"
}

// IsIndependentVowel reports whether c is a standalone vowel letter.
func (c Category) IsIndependentVowel() bool {
	return c == CategoryIndependentShort || c == CategoryIndependentLong
}

// Script is the pluggable character table for one writing system.
type Script interface {
	// Contains reports whether r belongs to the script's Unicode block.
	Contains(r rune) bool
	// Classify returns the category of r. Runes outside the block are CategoryNonScript.
	Classify(r rune) Category
}

// Kannada is the Script for the Kannada block U+0C80..U+0CFF.
var Kannada Script = newBlockScript(0x0C80, 0x0CFF, map[rune]Category{
	// independent vowels
	'ಅ': CategoryIndependentShort,
	'ಇ': CategoryIndependentShort,
	'ಉ': CategoryIndependentShort,
	'ಋ': CategoryIndependentShort,
	'ಎ': CategoryIndependentShort,
	'ಒ': CategoryIndependentShort,
	'ಆ': CategoryIndependentLong,
	'ಈ': CategoryIndependentLong,
	'ಊ': CategoryIndependentLong,
	'ೠ': CategoryIndependentLong,
	'ಏ': CategoryIndependentLong,
	'ಐ': CategoryIndependentLong,
	'ಓ': CategoryIndependentLong,
	'ಔ': CategoryIndependentLong,

	// vowel signs (matras)
	'\u0CBF': CategoryDependentShort,
	'\u0CC1': CategoryDependentShort,
	'\u0CC3': CategoryDependentShort,
	'\u0CC6': CategoryDependentShort,
	'\u0CCA': CategoryDependentShort,
	'\u0CBE': CategoryDependentLong,
	'\u0CC0': CategoryDependentLong,
	'\u0CC2': CategoryDependentLong,
	'\u0CC4': CategoryDependentLong,
	'\u0CC7': CategoryDependentLong,
	'\u0CC8': CategoryDependentLong,
	'\u0CCB': CategoryDependentLong,
	'\u0CCC': CategoryDependentLong,

	'\u0CCD': CategoryJoiner, // halant
})

// blockScript is a Script defined by a closed code point range plus a table
// of non-generic members.
type blockScript struct {
	lo, hi rune
	table  map[rune]Category
}

func newBlockScript(lo, hi rune, table map[rune]Category) *blockScript {
	return &blockScript{lo: lo, hi: hi, table: table}
}

func (s *blockScript) Contains(r rune) bool {
	return r >= s.lo && r <= s.hi
}

func (s *blockScript) Classify(r rune) Category {
	if !s.Contains(r) {
		return CategoryNonScript
	}
	if c, ok := s.table[r]; ok {
		return c
	}
	return CategoryGeneric
}
