package prosody

import "unicode/utf8"

// Maatra weights.
const (
	WeightShort = 1
	WeightLong  = 2
)

// IndependentVowelWeight returns the weight of a standalone vowel letter.
// Anything that is not a long independent vowel weighs WeightShort.
func (an *Analyzer) IndependentVowelWeight(r rune) int {
	if an.script.Classify(r) == CategoryIndependentLong {
		return WeightLong
	}
	return WeightShort
}

// AksharaWeight returns the maatra weight of one cluster. A long vowel sign
// anywhere in the cluster wins over a short one; a bare consonant cluster
// carries the inherent vowel and weighs WeightShort.
func (an *Analyzer) AksharaWeight(a Akshara) int {
	s := string(a)
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if an.script.Classify(r).IsIndependentVowel() {
			return an.IndependentVowelWeight(r)
		}
	}

	if an.containsCategory(s, CategoryDependentLong) {
		return WeightLong
	}
	return WeightShort
}

// TotalWeight returns the summed maatra weight of every akshara in text.
func (an *Analyzer) TotalWeight(text string) int {
	total := 0
	for _, a := range an.Segment(text) {
		total += an.AksharaWeight(a)
	}
	return total
}

func (an *Analyzer) containsCategory(s string, c Category) bool {
	for _, r := range s {
		if an.script.Classify(r) == c {
			return true
		}
	}
	return false
}
