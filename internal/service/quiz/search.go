package quiz

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
	"github.com/heartmarshall/chosung-quiz/internal/seeder"
	"github.com/heartmarshall/chosung-quiz/internal/seeder/archive"
	"github.com/heartmarshall/chosung-quiz/internal/seeder/krdict"
)

// Search returns pool words containing query followed by archive words
// containing it, case-insensitively. Each word appears once, in discovery
// order. An empty query returns an empty result without any I/O.
func (s *Service) Search(ctx context.Context, query string) []domain.SearchHit {
	q := domain.NormalizeInput(query)
	if q == "" {
		return []domain.SearchHit{}
	}

	results := make([]domain.SearchHit, 0)
	seen := make(map[string]struct{})
	add := func(h domain.SearchHit) {
		if _, ok := seen[h.Word]; ok {
			return
		}
		seen[h.Word] = struct{}{}
		results = append(results, h)
	}

	for _, h := range s.storeMatches(ctx, q) {
		add(h)
	}
	for _, h := range s.archiveMatches(ctx, q) {
		add(h)
	}

	searchTotal.Inc()
	s.log.Debug("search completed", slog.String("query", q), slog.Int("results", len(results)))
	return results
}

func (s *Service) storeMatches(ctx context.Context, q string) []domain.SearchHit {
	if s.store == nil {
		return nil
	}

	entries, err := s.store.ListAll(ctx)
	if err != nil {
		s.log.Error("search pool", slog.String("error", err.Error()))
		return nil
	}

	var hits []domain.SearchHit
	for _, e := range entries {
		if !domain.ContainsFold(e.Word, q) {
			continue
		}
		hint := e.Hint
		if hint == "" {
			hint = domain.PlaceholderHint
		}
		hits = append(hits, domain.SearchHit{Word: e.Word, Hint: hint})
	}
	return hits
}

// archiveMatches streams the whole archive unless a cached result exists.
// Only complete passes are cached.
func (s *Service) archiveMatches(ctx context.Context, q string) []domain.SearchHit {
	if hits, ok := s.cache.Get(q); ok {
		searchCacheHits.Inc()
		return hits
	}

	var hits []domain.SearchHit
	pass := s.archive.Run(ctx, seeder.KindSearch, s.cfg.SearchTimeout, func(_ context.Context, e archive.Entry) (krdict.Stats, error) {
		matches, stats, err := krdict.ParseMatches(e.Data, q)
		hits = append(hits, matches...)
		return stats, err
	})

	if pass.Outcome() == "complete" {
		s.cache.Add(q, hits)
	}
	return hits
}
