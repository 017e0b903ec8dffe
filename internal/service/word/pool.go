package word

import (
	"context"
	"fmt"
	"sort"

	"github.com/antzucaro/matchr"
)

// Count returns the number of stored words.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.words.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// Pool returns every stored word text in insertion order. The order is
// stable so seeded generation over an unchanged store is reproducible.
func (s *Service) Pool(ctx context.Context) ([]string, error) {
	texts, err := s.words.ListTexts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return texts, nil
}

// Suggest returns up to MaxSuggestions stored words similar to text, most
// similar first.
func (s *Service) Suggest(ctx context.Context, text string) ([]string, error) {
	texts, err := s.Pool(ctx)
	if err != nil {
		return nil, err
	}
	return suggest(text, texts), nil
}

func suggest(text string, candidates []string) []string {
	type scored struct {
		text  string
		score float64
	}

	var hits []scored
	for _, c := range candidates {
		if c == text {
			continue
		}
		if sc := matchr.JaroWinkler(text, c, false); sc >= SuggestionThreshold {
			hits = append(hits, scored{text: c, score: sc})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if len(hits) > MaxSuggestions {
		hits = hits[:MaxSuggestions]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.text
	}
	return out
}
