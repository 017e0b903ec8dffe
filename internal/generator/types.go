// Package generator builds two-line metered verses (couplets) from a word
// pool using a randomized beam search over word sequences.
package generator

// Word is a single pool entry.
type Word string

// LineText is a space-joined sequence of words forming one verse line.
type LineText string

// WeightedLine is a candidate line together with its maatra weight.
type WeightedLine struct {
	Text   LineText
	Weight int
}

// Couplet is a scored pair of lines.
type Couplet struct {
	Score float64  `json:"score" yaml:"score"`
	Line1 LineText `json:"line1" yaml:"line1"`
	Line2 LineText `json:"line2" yaml:"line2"`
}

// WeightedWord is a pool entry with its maatra weight, computed once when
// the pool is filtered.
type WeightedWord struct {
	Word   Word
	Weight int
}

// WordsFromStrings converts plain strings into a pool.
func WordsFromStrings(ss []string) []Word {
	out := make([]Word, len(ss))
	for i, s := range ss {
		out[i] = Word(s)
	}
	return out
}
