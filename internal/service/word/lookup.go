package word

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/padagalu-backend/internal/domain"
)

// Lookup checks whether a word is in the store. The farewell word ends the
// session and is never looked up. A missing word is added when input.Add is
// set; otherwise similar stored words are suggested.
func (s *Service) Lookup(ctx context.Context, input LookupInput) (*domain.LookupResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	text := domain.NormalizeWord(input.Text)

	result, err := s.lookup(ctx, text, input.Add)
	if err != nil {
		return nil, err
	}

	total, err := s.words.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}
	result.Total = total

	s.metrics.RecordLookup(ctx, result.Status.String())
	return result, nil
}

func (s *Service) lookup(ctx context.Context, text string, add bool) (*domain.LookupResult, error) {
	if text == domain.FarewellWord {
		return &domain.LookupResult{Status: domain.LookupFarewell}, nil
	}

	existing, err := s.words.GetByText(ctx, text)
	switch {
	case err == nil:
		return &domain.LookupResult{Status: domain.LookupFound, Word: existing}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get word: %w", err)
	}

	if add {
		created, err := s.create(ctx, text)
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Lost a race with a concurrent add.
			existing, err := s.words.GetByText(ctx, text)
			if err != nil {
				return nil, fmt.Errorf("get word: %w", err)
			}
			return &domain.LookupResult{Status: domain.LookupFound, Word: existing}, nil
		}
		if err != nil {
			return nil, err
		}
		return &domain.LookupResult{Status: domain.LookupAdded, Word: created}, nil
	}

	suggestions, err := s.Suggest(ctx, text)
	if err != nil {
		return nil, err
	}
	return &domain.LookupResult{Status: domain.LookupMissing, Suggestions: suggestions}, nil
}

// Add stores a new word. Returns domain.ErrAlreadyExists if it is stored already.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.create(ctx, domain.NormalizeWord(input.Text))
}

func (s *Service) create(ctx context.Context, text string) (*domain.Word, error) {
	w, err := s.words.Create(ctx, &domain.Word{
		ID:        uuid.New(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	s.metrics.RecordWordsAdded(ctx, sourceAPI, 1)
	s.log.InfoContext(ctx, "word added",
		slog.String("word_id", w.ID.String()),
		slog.String("text", w.Text),
	)
	return w, nil
}
