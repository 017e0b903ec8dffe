// Package couplet implements the saved-couplet repository using PostgreSQL.
package couplet

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/padagalu-backend/internal/adapter/postgres"
	"github.com/heartmarshall/padagalu-backend/internal/domain"
)

const table = "couplets"

var columns = []string{"id", "line1", "line2", "score", "target", "created_at"}

// Repo provides couplet persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new couplet repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a couplet by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Couplet, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get couplet: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "couplet", id)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCouplet)
	if err != nil {
		return nil, postgres.MapError(err, "couplet", id)
	}
	return &c, nil
}

// List returns saved couplets, newest first, with pagination.
// Returns couplets, total count and error.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Couplet, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From(table).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count couplets: %w", err)
	}
	var total int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count couplets: %w", err)
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list couplets: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list couplets: %w", err)
	}
	items, err := pgx.CollectRows(rows, scanCouplet)
	if err != nil {
		return nil, 0, fmt.Errorf("list couplets: %w", err)
	}

	return items, int(total), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a couplet. Returns domain.ErrAlreadyExists when the same
// pair of lines is already saved.
func (r *Repo) Create(ctx context.Context, c *domain.Couplet) (*domain.Couplet, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.Line1, c.Line2, c.Score, c.Target, c.CreatedAt).
		Suffix("RETURNING id, line1, line2, score, target, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert couplet: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "couplet", c.ID)
	}
	created, err := pgx.CollectExactlyOneRow(rows, scanCouplet)
	if err != nil {
		return nil, postgres.MapError(err, "couplet", c.ID)
	}
	return &created, nil
}

// Delete removes a couplet. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete couplet: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "couplet", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("couplet %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanCouplet(row pgx.CollectableRow) (domain.Couplet, error) {
	var c domain.Couplet
	err := row.Scan(&c.ID, &c.Line1, &c.Line2, &c.Score, &c.Target, &c.CreatedAt)
	return c, err
}
