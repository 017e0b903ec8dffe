package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/padagalu-backend/internal/domain"
)

// UniqueWord returns a word text that no other test will insert.
func UniqueWord(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedWord inserts a word and returns it.
func SeedWord(t *testing.T, pool *pgxpool.Pool, text string) domain.Word {
	t.Helper()

	w := domain.Word{
		ID:        uuid.New(),
		Text:      text,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, text, created_at) VALUES ($1, $2, $3)`,
		w.ID, w.Text, w.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord %q: %v", text, err)
	}
	return w
}

// SeedCouplet inserts a couplet with unique lines and returns it.
func SeedCouplet(t *testing.T, pool *pgxpool.Pool, score float64) domain.Couplet {
	t.Helper()

	c := domain.Couplet{
		ID:        uuid.New(),
		Line1:     UniqueWord("ಮನೆ"),
		Line2:     UniqueWord("ಕಾಡು"),
		Score:     score,
		Target:    12,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO couplets (id, line1, line2, score, target, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Line1, c.Line2, c.Score, c.Target, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCouplet: %v", err)
	}
	return c
}
