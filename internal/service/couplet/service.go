// Package couplet generates couplets from the word store and manages the
// saved ones.
package couplet

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/padagalu-backend/internal/domain"
	"github.com/heartmarshall/padagalu-backend/internal/generator"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type wordSource interface {
	ListTexts(ctx context.Context) ([]string, error)
}

type coupletRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Couplet, error)
	List(ctx context.Context, limit, offset int) ([]domain.Couplet, int, error)
	Create(ctx context.Context, c *domain.Couplet) (*domain.Couplet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recorder interface {
	RecordGeneration(ctx context.Context, elapsed time.Duration, produced int, err error)
	RecordCoupletSaved(ctx context.Context)
}

type nopRecorder struct{}

func (nopRecorder) RecordGeneration(context.Context, time.Duration, int, error) {}
func (nopRecorder) RecordCoupletSaved(context.Context)                          {}

// Limits bound generation requests.
type Limits struct {
	DefaultTarget int
	DefaultCount  int
	MaxCount      int
	MaxTarget     int
}

// Service provides couplet generation and storage.
type Service struct {
	words    wordSource
	couplets coupletRepo
	gen      *generator.Generator
	limits   Limits
	metrics  recorder
	log      *slog.Logger
}

// NewService creates a new Couplet service. metrics may be nil.
func NewService(
	log *slog.Logger,
	words wordSource,
	couplets coupletRepo,
	gen *generator.Generator,
	limits Limits,
	metrics recorder,
) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	if limits.DefaultTarget <= 0 {
		limits.DefaultTarget = generator.DefaultTarget
	}
	if limits.DefaultCount <= 0 {
		limits.DefaultCount = 5
	}
	if limits.MaxCount < limits.DefaultCount {
		limits.MaxCount = limits.DefaultCount
	}
	return &Service{
		words:    words,
		couplets: couplets,
		gen:      gen,
		limits:   limits,
		metrics:  metrics,
		log:      log.With("service", "couplet"),
	}
}
