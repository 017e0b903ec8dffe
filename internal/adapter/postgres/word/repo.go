// Package word implements the word store (padakosha) repository using PostgreSQL.
package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/padagalu-backend/internal/adapter/postgres"
	"github.com/heartmarshall/padagalu-backend/internal/domain"
)

const (
	table   = "words"
	colID   = "id"
	colText = "text"
	colAt   = "created_at"
)

var columns = []string{colID, colText, colAt}

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByText returns the word with exactly this text.
// Returns domain.ErrNotFound if it is not stored.
func (r *Repo) GetByText(ctx context.Context, text string) (*domain.Word, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{colText: text}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "word", text)
	}
	w, err := pgx.CollectExactlyOneRow(rows, scanWord)
	if err != nil {
		return nil, postgres.MapError(err, "word", text)
	}
	return &w, nil
}

// Count returns the number of stored words.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count words: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return int(n), nil
}

// ListTexts returns every stored word text, oldest first. The order is
// stable so that seeded generation over the same store is reproducible.
func (r *Repo) ListTexts(ctx context.Context) ([]string, error) {
	sql, args, err := postgres.Builder().
		Select(colText).
		From(table).
		OrderBy(colAt+" ASC", colText+" ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	texts, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return texts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a word. Returns domain.ErrAlreadyExists if the text is taken.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(w.ID, w.Text, w.CreatedAt).
		Suffix("RETURNING " + colID + ", " + colText + ", " + colAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert word: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "word", w.Text)
	}
	created, err := pgx.CollectExactlyOneRow(rows, scanWord)
	if err != nil {
		return nil, postgres.MapError(err, "word", w.Text)
	}
	return &created, nil
}

// BulkInsert inserts words using pgx.Batch. Texts already stored are
// skipped via ON CONFLICT DO NOTHING.
// Returns the number of actually inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, w := range words {
		sql, args, err := postgres.Builder().
			Insert(table).
			Columns(columns...).
			Values(w.ID, w.Text, w.CreatedAt).
			Suffix("ON CONFLICT (" + colText + ") DO NOTHING").
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build bulk insert word: %w", err)
		}
		batch.Queue(sql, args...)
	}

	inserted, err := postgres.SendBatchExec(ctx, postgres.QuerierFromCtx(ctx, r.pool), batch)
	if err != nil {
		return inserted, postgres.MapError(err, "words", fmt.Sprintf("batch of %d", len(words)))
	}
	return inserted, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanWord(row pgx.CollectableRow) (domain.Word, error) {
	var w domain.Word
	err := row.Scan(&w.ID, &w.Text, &w.CreatedAt)
	return w, err
}
