package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

// UniqueWord returns base with a short unique suffix so tests sharing the
// container never collide on words.
func UniqueWord(base string) string {
	return base + "-" + uuid.New().String()[:8]
}

// ResetPool empties the quiz_pool table.
func ResetPool(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `DELETE FROM quiz_pool`); err != nil {
		t.Fatalf("testhelper: ResetPool: %v", err)
	}
}

// SeedPoolEntry inserts a pool entry for word directly and returns it.
func SeedPoolEntry(t *testing.T, pool *pgxpool.Pool, word, hint string) domain.PoolEntry {
	t.Helper()

	at := time.Now().UTC().Truncate(time.Millisecond)
	entry := domain.NewPoolEntry(domain.Candidate{Word: word, Hint: hint, Key: domain.Chosung(word)}, at)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO quiz_pool (key, word, question, hint, added_at) VALUES ($1, $2, $3, $4, $5)`,
		entry.Key, entry.Word, []string(entry.Question), entry.Hint, entry.AddedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPoolEntry: %v", err)
	}
	return entry
}
