package quiz

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/heartmarshall/chosung-quiz/internal/config"
	"github.com/heartmarshall/chosung-quiz/internal/domain"
	"github.com/heartmarshall/chosung-quiz/internal/seeder"
	"github.com/heartmarshall/chosung-quiz/internal/seeder/archive"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockPoolStore struct {
	mu sync.Mutex

	ExistsByWordFunc func(ctx context.Context, word string) (bool, error)
	InsertFunc       func(ctx context.Context, entry domain.PoolEntry) (string, error)
	ListAllFunc      func(ctx context.Context) ([]domain.PoolEntry, error)
	ClearAllFunc     func(ctx context.Context) error

	entries     []domain.PoolEntry
	listCalls   int
	existsCalls int
}

func (m *mockPoolStore) ExistsByWord(ctx context.Context, word string) (bool, error) {
	m.mu.Lock()
	m.existsCalls++
	m.mu.Unlock()
	if m.ExistsByWordFunc != nil {
		return m.ExistsByWordFunc(ctx, word)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.Word == word {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockPoolStore) Insert(ctx context.Context, entry domain.PoolEntry) (string, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return entry.Key, nil
}

func (m *mockPoolStore) ListAll(ctx context.Context) ([]domain.PoolEntry, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.PoolEntry(nil), m.entries...), nil
}

func (m *mockPoolStore) ClearAll(ctx context.Context) error {
	if m.ClearAllFunc != nil {
		return m.ClearAllFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

// fakeArchive feeds fixed entries to the visitor, the way seeder.Runner does.
type fakeArchive struct {
	entries []archive.Entry
	missing bool
	calls   int
	kinds   []string
}

func (f *fakeArchive) Run(ctx context.Context, kind string, _ time.Duration, visit seeder.Visitor) seeder.PassResult {
	f.calls++
	f.kinds = append(f.kinds, kind)
	if f.missing {
		return seeder.PassResult{Missing: true}
	}

	var res seeder.PassResult
	for _, e := range f.entries {
		stats, err := visit(ctx, e)
		res.Items += stats.Items
		res.Candidates += stats.Candidates
		if err != nil {
			res.ParseFailures++
		}
	}
	return res
}

// ===========================================================================
// Helpers
// ===========================================================================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() config.QuizConfig {
	return config.QuizConfig{
		SeedLimit:     7,
		BatchSize:     19,
		SearchTimeout: time.Second,
	}
}

func newTestService(store poolStore, arch archivePass, cfg config.QuizConfig) *Service {
	svc := NewService(testLogger(), store, arch, cfg)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	var seed uint64
	svc.newRand = func() *rand.Rand {
		seed++
		return rand.New(rand.NewPCG(seed, 42))
	}
	return svc
}

func entry(name, body string) archive.Entry {
	return archive.Entry{Name: name, Data: []byte(body)}
}

func item(word, unit, wordType, definitionOriginal string) string {
	pos := `[]`
	if definitionOriginal != "" {
		pos = `[{"comm_pattern_info": [{"sense_info": [{"definition_original": "` + definitionOriginal + `"}]}]}]`
	}
	return `{"word_info": {"word": "` + word + `", "word_unit": "` + unit + `", "word_type": "` + wordType + `", "pos_info": ` + pos + `}}`
}

func poolEntry(word, hint string) domain.PoolEntry {
	return domain.NewPoolEntry(domain.Candidate{Word: word, Hint: hint, Key: domain.Chosung(word)}, time.UnixMilli(1))
}
