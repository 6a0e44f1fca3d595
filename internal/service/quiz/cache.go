package quiz

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

// searchCache keeps archive matches per normalized query. A nil cache is
// disabled: Get always misses and Add is a no-op.
type searchCache struct {
	lru *lru.Cache[string, []domain.SearchHit]
}

// newSearchCache returns nil when size <= 0.
func newSearchCache(size int) *searchCache {
	if size <= 0 {
		return nil
	}
	c, err := lru.New[string, []domain.SearchHit](size)
	if err != nil {
		return nil
	}
	return &searchCache{lru: c}
}

func (c *searchCache) Get(q string) ([]domain.SearchHit, bool) {
	if c == nil {
		return nil, false
	}
	return c.lru.Get(q)
}

func (c *searchCache) Add(q string, hits []domain.SearchHit) {
	if c == nil {
		return
	}
	c.lru.Add(q, hits)
}

// Purge empties the cache and reports how many queries were dropped.
func (c *searchCache) Purge() int {
	if c == nil {
		return 0
	}
	n := c.lru.Len()
	c.lru.Purge()
	return n
}
