package domain

import (
	"fmt"
	"strings"
	"time"
)

// Archive classifier values and fixed texts. They follow the archive's own vocabulary.
const (
	// UnitProverb is the word_unit value that marks an idiomatic phrase.
	UnitProverb = "속담"

	// TypeHybrid and TypeLoanword are word_type values excluded from the quiz pool.
	TypeHybrid   = "혼종어"
	TypeLoanword = "외래어"

	// ProverbHintPrefix labels hints produced for proverb entries.
	ProverbHintPrefix = "속담: "

	// PlaceholderHint replaces a missing hint at the call site.
	PlaceholderHint = "정의 없음"
)

// PhoneticKey is the ordered chosung skeleton of a word. Spaces are kept
// as " " elements so multi-word skeletons stay distinguishable.
type PhoneticKey []string

// String joins the symbols into the grouping key form.
func (k PhoneticKey) String() string {
	return strings.Join(k, "")
}

// IsEmpty reports whether extraction produced nothing usable.
func (k PhoneticKey) IsEmpty() bool {
	return len(k) == 0
}

// Candidate is a word/hint pair extracted from the archive.
// It is immutable once produced.
type Candidate struct {
	Word string
	Hint string
	Key  PhoneticKey
}

// PoolEntry is a candidate accepted into the persistent quiz pool.
type PoolEntry struct {
	Word     string      `json:"word"`
	Question PhoneticKey `json:"question"`
	Hint     string      `json:"hint"`
	AddedAt  time.Time   `json:"addedAt"`
	Key      string      `json:"key"`
}

// NewPoolEntry builds the persisted form of c created at the given time.
func NewPoolEntry(c Candidate, at time.Time) PoolEntry {
	return PoolEntry{
		Word:     c.Word,
		Question: c.Key,
		Hint:     c.Hint,
		AddedAt:  at,
		Key:      StorageKey(c.Word, at),
	}
}

// StorageKey derives the unique store key for word created at t.
func StorageKey(word string, t time.Time) string {
	return fmt.Sprintf("%s_%d", word, t.UnixMilli())
}

// SearchHit is a single search result.
type SearchHit struct {
	Word string `json:"word"`
	Hint string `json:"hint"`
}

// RejectReason explains why AddWord did not accept a word.
type RejectReason string

const (
	RejectMissingInput     RejectReason = "missing_input"
	RejectNoChosung        RejectReason = "no_chosung"
	RejectDuplicate        RejectReason = "duplicate"
	RejectStoreUnavailable RejectReason = "store_unavailable"
	RejectStoreError       RejectReason = "store_error"
)

// AddWordResult is the outcome of a manual pool addition.
type AddWordResult struct {
	Accepted bool         `json:"success"`
	Reason   RejectReason `json:"reason,omitempty"`
	Message  string       `json:"message"`
	Key      string       `json:"key,omitempty"`
	Total    int          `json:"total,omitempty"`
}

// ClearResult is the outcome of a bulk pool clear.
type ClearResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
