package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/padagalu-backend/internal/app/seeder/htmlcorpus"
	"github.com/heartmarshall/padagalu-backend/internal/app/seeder/padagalu"
	"github.com/heartmarshall/padagalu-backend/internal/domain"
	"github.com/heartmarshall/padagalu-backend/internal/prosody"
)

const (
	PhaseWordList = "padagalu"
	PhaseHTML     = "html"
)

// allPhases defines the canonical execution order.
var allPhases = []string{PhaseWordList, PhaseHTML}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Parsed   int
	Inserted int
	// Skipped counts words already stored, rejected, or not written (dry run).
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding phases.
type Pipeline struct {
	log     *slog.Logger
	repo    WordBulkRepo
	cfg     Config
	script  prosody.Script
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo WordBulkRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log.With("component", "seeder"),
		repo:    repo,
		cfg:     cfg,
		script:  prosody.Kannada,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. Unknown names are an error.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseWordList:
			result = p.runWordList(ctx)
		case PhaseHTML:
			result = p.runHTML(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("parsed", result.Parsed),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}
	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		known := false
		for _, a := range allPhases {
			known = known || a == ph
		}
		if !known {
			return nil, fmt.Errorf("unknown phase %q", ph)
		}
		filter[ph] = true
	}
	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
		}
	}
	return out, nil
}

func (p *Pipeline) runWordList(ctx context.Context) PhaseResult {
	if p.cfg.WordListPath == "" {
		return PhaseResult{Err: fmt.Errorf("word list path not configured")}
	}
	texts, err := padagalu.Parse(p.cfg.WordListPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse word list: %w", err)}
	}
	return p.store(ctx, texts)
}

func (p *Pipeline) runHTML(ctx context.Context) PhaseResult {
	files := p.cfg.HTMLFiles()
	if len(files) == 0 {
		// Optional source.
		p.log.Info("no html sources configured")
		return PhaseResult{}
	}
	texts, stats, err := htmlcorpus.Parse(files, p.cfg.HTMLSelector, p.script)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse html: %w", err)}
	}
	p.log.Info("html parsed",
		slog.Int("documents", stats.Documents),
		slog.Int("tokens", stats.Tokens),
		slog.Int("unique", len(texts)),
	)
	return p.store(ctx, texts)
}

// store normalises texts, drops blanks, duplicates and over-long words, and
// inserts the rest in batches.
func (p *Pipeline) store(ctx context.Context, texts []string) PhaseResult {
	words, rejected := toWords(texts, time.Now().UTC())
	result := PhaseResult{Parsed: len(texts), Skipped: rejected}

	if p.cfg.DryRun {
		result.Skipped += len(words)
		return result
	}

	inserted, err := batchProcess(words, p.cfg.BatchSize, func(batch []domain.Word) (int, error) {
		return p.repo.BulkInsert(ctx, batch)
	})
	result.Inserted = inserted
	if err != nil {
		result.Err = fmt.Errorf("insert words: %w", err)
		return result
	}
	result.Skipped += len(words) - inserted
	return result
}

func toWords(texts []string, now time.Time) ([]domain.Word, int) {
	seen := make(map[string]struct{}, len(texts))
	words := make([]domain.Word, 0, len(texts))
	rejected := 0
	for _, t := range texts {
		n := domain.NormalizeWord(t)
		if n == "" || utf8.RuneCountInString(n) > domain.MaxWordLength {
			rejected++
			continue
		}
		if _, dup := seen[n]; dup {
			rejected++
			continue
		}
		seen[n] = struct{}{}
		words = append(words, domain.Word{ID: uuid.New(), Text: n, CreatedAt: now})
	}
	return words, rejected
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
