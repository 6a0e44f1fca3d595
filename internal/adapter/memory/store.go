// Package memory implements an in-process quiz pool store. Contents are
// lost on restart; it backs development runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

// Store keeps pool entries in insertion order.
type Store struct {
	mu      sync.RWMutex
	entries []domain.PoolEntry
	keys    map[string]struct{}
}

// New creates an empty Store.
func New() *Store {
	return &Store{keys: make(map[string]struct{})}
}

// ExistsByWord reports whether any entry has exactly this word.
func (s *Store) ExistsByWord(_ context.Context, word string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.Word == word {
			return true, nil
		}
	}
	return false, nil
}

// Insert appends entry. A reused key returns domain.ErrAlreadyExists.
func (s *Store) Insert(_ context.Context, entry domain.PoolEntry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keys[entry.Key]; ok {
		return "", fmt.Errorf("quiz_pool %s: %w", entry.Key, domain.ErrAlreadyExists)
	}
	s.keys[entry.Key] = struct{}{}
	s.entries = append(s.entries, entry)
	return entry.Key, nil
}

// ListAll returns a copy of every entry in insertion order.
func (s *Store) ListAll(_ context.Context) ([]domain.PoolEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PoolEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Count returns the number of entries.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// ClearAll removes every entry.
func (s *Store) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.keys = make(map[string]struct{})
	return nil
}
