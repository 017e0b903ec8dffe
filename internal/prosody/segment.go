package prosody

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Akshara is one syllabic cluster produced by segmentation.
type Akshara string

// RuneCount returns the number of code points in the cluster.
func (a Akshara) RuneCount() int { return utf8.RuneCountInString(string(a)) }

// Analyzer performs segmentation, weighting and rhyme scoring for one Script.
// The zero value is not usable; use NewAnalyzer.
type Analyzer struct {
	script Script
}

// NewAnalyzer returns an Analyzer backed by script.
func NewAnalyzer(script Script) *Analyzer {
	return &Analyzer{script: script}
}

// Script returns the character table the analyzer classifies with.
func (an *Analyzer) Script() Script { return an.script }

// Segment splits text into akshara clusters.
//
// Script runes accumulate into the open cluster and are never split on an
// internal consonant boundary. A non-script rune closes the open cluster and
// is emitted on its own unless it is whitespace. Blank units are dropped.
func (an *Analyzer) Segment(text string) []Akshara {
	var (
		out []Akshara
		buf strings.Builder
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		out = appendNonBlank(out, buf.String())
		buf.Reset()
	}

	for _, r := range text {
		if !an.script.Contains(r) {
			flush()
			if !unicode.IsSpace(r) {
				out = appendNonBlank(out, string(r))
			}
			continue
		}
		buf.WriteRune(r)
	}
	flush()

	return out
}

func appendNonBlank(out []Akshara, s string) []Akshara {
	if strings.TrimSpace(s) == "" {
		return out
	}
	return append(out, Akshara(s))
}
