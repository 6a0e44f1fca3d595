// Package quiz builds and serves the chosung quiz pool.
package quiz

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/heartmarshall/chosung-quiz/internal/config"
	"github.com/heartmarshall/chosung-quiz/internal/domain"
	"github.com/heartmarshall/chosung-quiz/internal/seeder"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type poolStore interface {
	ExistsByWord(ctx context.Context, word string) (bool, error)
	Insert(ctx context.Context, entry domain.PoolEntry) (string, error)
	ListAll(ctx context.Context) ([]domain.PoolEntry, error)
	ClearAll(ctx context.Context) error
}

// poolCounter is implemented by stores that count without listing.
type poolCounter interface {
	Count(ctx context.Context) (int, error)
}

type archivePass interface {
	Run(ctx context.Context, kind string, timeout time.Duration, visit seeder.Visitor) seeder.PassResult
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the quiz pool operations. Outward operations never
// return errors: failures are logged and reported as empty or negative results.
type Service struct {
	log     *slog.Logger
	store   poolStore
	archive archivePass
	cache   *searchCache
	cfg     config.QuizConfig
	now     func() time.Time
	newRand func() *rand.Rand
}

// NewService creates a quiz Service. A nil store means no pool store is
// configured; store-backed operations then degrade to empty results.
func NewService(logger *slog.Logger, store poolStore, archive archivePass, cfg config.QuizConfig) *Service {
	return &Service{
		log:     logger.With("service", "quiz"),
		store:   store,
		archive: archive,
		cache:   newSearchCache(cfg.SearchCacheSize),
		cfg:     cfg,
		now:     time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

// InvalidateSearchCache drops cached archive matches. Called when the archive changes.
func (s *Service) InvalidateSearchCache() {
	if n := s.cache.Purge(); n > 0 {
		s.log.Info("search cache purged", slog.Int("entries", n))
	}
}

// PoolSize returns the number of persisted entries, or 0 when unavailable.
func (s *Service) PoolSize(ctx context.Context) int {
	if s.store == nil {
		return 0
	}
	if c, ok := s.store.(poolCounter); ok {
		n, err := c.Count(ctx)
		if err != nil {
			s.log.Error("count pool", slog.String("error", err.Error()))
			return 0
		}
		return n
	}
	entries, err := s.store.ListAll(ctx)
	if err != nil {
		s.log.Error("list pool", slog.String("error", err.Error()))
		return 0
	}
	return len(entries)
}

// StoreConfigured reports whether a pool store is wired in.
func (s *Service) StoreConfigured() bool {
	return s.store != nil
}
