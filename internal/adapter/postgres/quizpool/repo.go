// Package quizpool implements the quiz pool repository using PostgreSQL.
// The pool is append-only apart from a full clear.
package quizpool

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/chosung-quiz/internal/adapter/postgres"
	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

const table = "quiz_pool"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides quiz pool persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quiz pool repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ExistsByWord reports whether any pooled entry has exactly this word.
func (r *Repo) ExistsByWord(ctx context.Context, word string) (bool, error) {
	query, args, err := psql.Select("1").From(table).Where(sq.Eq{"word": word}).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var one int
	err = r.pool.QueryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, table, word)
	}
	return true, nil
}

// Insert stores entry under entry.Key and returns that key.
// A reused key returns domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, entry domain.PoolEntry) (string, error) {
	query, args, err := psql.Insert(table).
		Columns("key", "word", "question", "hint", "added_at").
		Values(entry.Key, entry.Word, []string(entry.Question), entry.Hint, entry.AddedAt.UTC()).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return "", postgres.MapError(err, table, entry.Key)
	}
	return entry.Key, nil
}

// ListAll returns every pooled entry, oldest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.PoolEntry, error) {
	query, args, err := psql.Select("key", "word", "question", "hint", "added_at").
		From(table).
		OrderBy("added_at", "key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quiz pool: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.PoolEntry, 0)
	for rows.Next() {
		var (
			e        domain.PoolEntry
			question []string
			addedAt  time.Time
		)
		if err := rows.Scan(&e.Key, &e.Word, &question, &e.Hint, &addedAt); err != nil {
			return nil, fmt.Errorf("scan quiz pool row: %w", err)
		}
		e.Question = domain.PhoneticKey(question)
		e.AddedAt = addedAt.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list quiz pool: %w", err)
	}
	return entries, nil
}

// Count returns the number of pooled entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count quiz pool: %w", err)
	}
	return n, nil
}

// ClearAll removes every pooled entry.
func (r *Repo) ClearAll(ctx context.Context) error {
	query, args, err := psql.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("build clear query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("clear quiz pool: %w", err)
	}
	return nil
}
