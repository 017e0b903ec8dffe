package couplet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/padagalu-backend/internal/domain"
	"github.com/heartmarshall/padagalu-backend/internal/generator"
)

// Save stores a couplet. Its score is recomputed against the target so
// stored scores are comparable with generated ones.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.Couplet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	target := input.Target
	if target == 0 {
		target = s.limits.DefaultTarget
	}
	line1 := strings.TrimSpace(input.Line1)
	line2 := strings.TrimSpace(input.Line2)

	score := s.gen.ScoreText(generator.LineText(line1), generator.LineText(line2), target)

	c, err := s.couplets.Create(ctx, &domain.Couplet{
		ID:        uuid.New(),
		Line1:     line1,
		Line2:     line2,
		Score:     score,
		Target:    target,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create couplet: %w", err)
	}

	s.metrics.RecordCoupletSaved(ctx)
	s.log.InfoContext(ctx, "couplet saved",
		slog.String("couplet_id", c.ID.String()),
		slog.Float64("score", c.Score),
	)
	return c, nil
}

// List returns a page of saved couplets, newest first, and the total count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Couplet, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	items, total, err := s.couplets.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list couplets: %w", err)
	}
	return items, total, nil
}

// Get returns a saved couplet by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Couplet, error) {
	c, err := s.couplets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get couplet: %w", err)
	}
	return c, nil
}

// Delete removes a saved couplet.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if err := s.couplets.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("delete couplet: %w", err)
	}

	s.log.InfoContext(ctx, "couplet deleted", slog.String("couplet_id", input.ID.String()))
	return nil
}
