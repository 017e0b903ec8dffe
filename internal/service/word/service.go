// Package word implements the word store (padakosha) operations: lookup
// with optional add, suggestions for misses, and the generation pool.
package word

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/padagalu-backend/internal/domain"
)

const (
	// MaxSuggestions caps the suggestions returned for a missing word.
	MaxSuggestions = 5
	// SuggestionThreshold is the minimum Jaro-Winkler similarity of a suggestion.
	SuggestionThreshold = 0.80

	sourceAPI = "api"
)

type wordRepo interface {
	GetByText(ctx context.Context, text string) (*domain.Word, error)
	Count(ctx context.Context) (int, error)
	ListTexts(ctx context.Context) ([]string, error)
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
}

type recorder interface {
	RecordLookup(ctx context.Context, status string)
	RecordWordsAdded(ctx context.Context, source string, n int)
}

type nopRecorder struct{}

func (nopRecorder) RecordLookup(context.Context, string)          {}
func (nopRecorder) RecordWordsAdded(context.Context, string, int) {}

// Service provides word store operations.
type Service struct {
	words   wordRepo
	metrics recorder
	log     *slog.Logger
}

// NewService creates a new Word service. metrics may be nil.
func NewService(
	log *slog.Logger,
	words wordRepo,
	metrics recorder,
) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		words:   words,
		metrics: metrics,
		log:     log.With("service", "word"),
	}
}
