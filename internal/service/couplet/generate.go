package couplet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/heartmarshall/padagalu-backend/internal/domain"
	"github.com/heartmarshall/padagalu-backend/internal/generator"
	"github.com/heartmarshall/padagalu-backend/internal/observe"
)

// GenerateResult is the outcome of one generation request.
type GenerateResult struct {
	Couplets []generator.Couplet
	Target   int
	Count    int
	PoolSize int
}

// Generate builds couplets from input.Words or, when empty, from every
// stored word. An empty pool yields an empty result, not an error.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (result *GenerateResult, err error) {
	if err := input.Validate(s.limits.MaxTarget); err != nil {
		return nil, err
	}

	target := input.Target
	if target == 0 {
		target = s.limits.DefaultTarget
	}
	count := input.Count
	if count == 0 {
		count = s.limits.DefaultCount
	}
	count = min(count, s.limits.MaxCount)

	ctx, span := observe.StartSpan(ctx, "couplet.generate")
	defer span.End()

	start := time.Now()
	defer func() {
		produced := 0
		if result != nil {
			produced = len(result.Couplets)
		}
		s.metrics.RecordGeneration(ctx, time.Since(start), produced, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	pool, err := s.pool(ctx, input.Words)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("padagalu.target", target),
		attribute.Int("padagalu.count", count),
		attribute.Int("padagalu.pool_size", len(pool)),
		attribute.Bool("padagalu.seeded", input.Seed != nil),
	)

	couplets := s.gen.Generate(pool, target, count, input.Seed)

	s.log.DebugContext(ctx, "couplets generated",
		slog.Int("target", target),
		slog.Int("pool_size", len(pool)),
		slog.Int("produced", len(couplets)),
		slog.Duration("duration", time.Since(start)),
	)

	return &GenerateResult{
		Couplets: couplets,
		Target:   target,
		Count:    count,
		PoolSize: len(pool),
	}, nil
}

func (s *Service) pool(ctx context.Context, words []string) ([]generator.Word, error) {
	if len(words) > 0 {
		out := make([]generator.Word, 0, len(words))
		for _, w := range words {
			if n := domain.NormalizeWord(w); n != "" {
				out = append(out, generator.Word(n))
			}
		}
		return out, nil
	}

	texts, err := s.words.ListTexts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load word pool: %w", err)
	}
	return generator.WordsFromStrings(texts), nil
}
