package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

const table = "quiz_pool"

// Repo provides quiz pool persistence backed by SQLite. The chosung
// question is stored as a JSON array, added_at as unix milliseconds.
type Repo struct {
	db *sql.DB
}

// New creates a new quiz pool repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// ExistsByWord reports whether any pooled entry has exactly this word.
func (r *Repo) ExistsByWord(ctx context.Context, word string) (bool, error) {
	query, args, err := sq.Select("1").From(table).Where(sq.Eq{"word": word}).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s %s: %w", table, word, err)
	}
	return true, nil
}

// Insert stores entry under entry.Key and returns that key.
// A reused key returns domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, entry domain.PoolEntry) (string, error) {
	question, err := json.Marshal([]string(entry.Question))
	if err != nil {
		return "", fmt.Errorf("marshal question: %w", err)
	}

	query, args, err := sq.Insert(table).
		Columns("key", "word", "question", "hint", "added_at").
		Values(entry.Key, entry.Word, string(question), entry.Hint, entry.AddedAt.UnixMilli()).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s %s: %w", table, entry.Key, domain.ErrAlreadyExists)
		}
		return "", fmt.Errorf("%s %s: %w", table, entry.Key, err)
	}
	return entry.Key, nil
}

// ListAll returns every pooled entry, oldest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.PoolEntry, error) {
	query, args, err := sq.Select("key", "word", "question", "hint", "added_at").
		From(table).
		OrderBy("added_at", "key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quiz pool: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.PoolEntry, 0)
	for rows.Next() {
		var (
			e        domain.PoolEntry
			question string
			addedAt  int64
		)
		if err := rows.Scan(&e.Key, &e.Word, &question, &e.Hint, &addedAt); err != nil {
			return nil, fmt.Errorf("scan quiz pool row: %w", err)
		}
		if err := json.Unmarshal([]byte(question), &e.Question); err != nil {
			return nil, fmt.Errorf("decode question of %s: %w", e.Key, err)
		}
		e.AddedAt = time.UnixMilli(addedAt).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list quiz pool: %w", err)
	}
	return entries, nil
}

// Count returns the number of pooled entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := sq.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count quiz pool: %w", err)
	}
	return n, nil
}

// ClearAll removes every pooled entry.
func (r *Repo) ClearAll(ctx context.Context) error {
	query, args, err := sq.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("build clear query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear quiz pool: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
