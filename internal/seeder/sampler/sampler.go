// Package sampler groups candidates by chosung key and draws diverse samples.
package sampler

import (
	"math/rand/v2"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

// Index groups candidates by the string form of their phonetic key.
// Keys keep first-insertion order. Not safe for concurrent use.
type Index struct {
	groups map[string][]domain.Candidate
	keys   []string
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{groups: make(map[string][]domain.Candidate)}
}

// Add places c into its group. Candidates with an empty key are ignored.
func (ix *Index) Add(c domain.Candidate) {
	if c.Key.IsEmpty() {
		return
	}
	k := c.Key.String()
	if _, ok := ix.groups[k]; !ok {
		ix.keys = append(ix.keys, k)
	}
	ix.groups[k] = append(ix.groups[k], c)
}

// AddAll adds every candidate in cs.
func (ix *Index) AddAll(cs []domain.Candidate) {
	for _, c := range cs {
		ix.Add(c)
	}
}

// Len returns the number of distinct keys.
func (ix *Index) Len() int {
	return len(ix.keys)
}

// Size returns the total number of indexed candidates.
func (ix *Index) Size() int {
	n := 0
	for _, g := range ix.groups {
		n += len(g)
	}
	return n
}

// Sample returns at most n candidates, no two sharing a key.
// Keys are visited in a uniform random order and one candidate is drawn
// uniformly from each visited group. Fewer than n results come back only
// when the index holds fewer than n keys.
func (ix *Index) Sample(n int, rng *rand.Rand) []domain.Candidate {
	if n <= 0 || len(ix.keys) == 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	keys := make([]string, len(ix.keys))
	copy(keys, ix.keys)
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	out := make([]domain.Candidate, 0, min(n, len(keys)))
	for _, k := range keys {
		if len(out) == n {
			break
		}
		group := ix.groups[k]
		out = append(out, group[rng.IntN(len(group))])
	}
	return out
}
