package prosody

import "unicode/utf8"

// VowelClass is the coarse length class of an akshara's vowel.
type VowelClass int

const (
	VowelNeutral VowelClass = iota
	VowelShort
	VowelLong
)

func (v VowelClass) String() string {
	switch v {
	case VowelShort:
		return "SHORT"
	case VowelLong:
		return "LONG"
	}
	return "NEUTRAL"
}

// Rhyme score tiers.
const (
	RhymeNone      = 0.0
	RhymeSameClass = 0.5
	RhymeExact     = 1.0
)

// FinalAkshara returns the last akshara of text, or "" when text segments to nothing.
func (an *Analyzer) FinalAkshara(text string) Akshara {
	units := an.Segment(text)
	if len(units) == 0 {
		return ""
	}
	return units[len(units)-1]
}

// VowelClassOf classifies a cluster. Vowel signs are checked before
// standalone vowels, and long before short.
func (an *Analyzer) VowelClassOf(a Akshara) VowelClass {
	s := string(a)

	switch {
	case an.containsCategory(s, CategoryDependentLong):
		return VowelLong
	case an.containsCategory(s, CategoryDependentShort):
		return VowelShort
	}

	if utf8.RuneCountInString(s) != 1 {
		return VowelNeutral
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch an.script.Classify(r) {
	case CategoryIndependentLong:
		return VowelLong
	case CategoryIndependentShort:
		return VowelShort
	}
	return VowelNeutral
}

// RhymeScore compares the final aksharas of two lines: RhymeExact when
// identical, RhymeSameClass when only the vowel class matches, RhymeNone
// otherwise or when either line is empty.
func (an *Analyzer) RhymeScore(line1, line2 string) float64 {
	a, b := an.FinalAkshara(line1), an.FinalAkshara(line2)
	if a == "" || b == "" {
		return RhymeNone
	}
	if a == b {
		return RhymeExact
	}
	if an.VowelClassOf(a) == an.VowelClassOf(b) {
		return RhymeSameClass
	}
	return RhymeNone
}
