// Package seeder fills the word store from offline word sources.
package seeder

import (
	"context"

	"github.com/heartmarshall/padagalu-backend/internal/domain"
)

// WordBulkRepo is the batch repository contract consumed by the pipeline.
// Implemented by the postgres word repo.
type WordBulkRepo interface {
	// BulkInsert skips texts already stored and returns the number inserted.
	BulkInsert(ctx context.Context, words []domain.Word) (int, error)
}
