package seeder_test

import (
	"github.com/heartmarshall/padagalu-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/padagalu-backend/internal/app/seeder"
)

// Compile-time check: *word.Repo must satisfy WordBulkRepo.
var _ seeder.WordBulkRepo = (*word.Repo)(nil)
