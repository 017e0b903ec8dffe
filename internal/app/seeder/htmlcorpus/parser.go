// Package htmlcorpus harvests script words from saved HTML pages.
package htmlcorpus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/padagalu-backend/internal/prosody"
)

// Stats describes one harvest.
type Stats struct {
	Documents int
	// Tokens counts every script token seen, duplicates included.
	Tokens int
}

// Parse harvests words from the HTML files at paths. See ParseReader.
func Parse(paths []string, selector string, script prosody.Script) ([]string, Stats, error) {
	var (
		stats Stats
		words []string
		seen  = make(map[string]struct{})
	)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, stats, fmt.Errorf("open %s: %w", path, err)
		}
		tokens, err := ParseReader(f, selector, script)
		f.Close()
		if err != nil {
			return nil, stats, fmt.Errorf("parse %s: %w", path, err)
		}

		stats.Documents++
		stats.Tokens += len(tokens)
		for _, t := range tokens {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			words = append(words, t)
		}
	}
	return words, stats, nil
}

// ParseReader returns the script tokens in the text of the elements matched
// by selector ("body" when empty), in document order with duplicates. A
// token is a maximal run of script runes; it is dropped when it starts
// with a combining sign, which only happens in broken markup.
func ParseReader(r io.Reader, selector string, script prosody.Script) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	if selector == "" {
		selector = "body"
	}

	var tokens []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		fields := strings.FieldsFunc(s.Text(), func(r rune) bool { return !script.Contains(r) })
		for _, f := range fields {
			if startsWithSign(f, script) {
				continue
			}
			tokens = append(tokens, f)
		}
	})
	return tokens, nil
}

func startsWithSign(token string, script prosody.Script) bool {
	for _, r := range token {
		switch script.Classify(r) {
		case prosody.CategoryDependentShort, prosody.CategoryDependentLong, prosody.CategoryJoiner:
			return true
		}
		return false
	}
	return false
}
