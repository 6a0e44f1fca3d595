package quiz

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
	"github.com/heartmarshall/chosung-quiz/internal/seeder"
	"github.com/heartmarshall/chosung-quiz/internal/seeder/archive"
	"github.com/heartmarshall/chosung-quiz/internal/seeder/krdict"
	"github.com/heartmarshall/chosung-quiz/internal/seeder/sampler"
)

// IngestResult summarizes one seeding run.
type IngestResult struct {
	Sampled          int
	Saved            int
	Skipped          int
	Failed           int
	StoreUnavailable bool
	Pass             seeder.PassResult
}

// Ingest samples up to limit phonetically distinct candidates from the
// archive and saves those not already in the pool. limit <= 0 uses the
// configured seed limit.
func (s *Service) Ingest(ctx context.Context, limit int) IngestResult {
	if s.store == nil {
		s.log.Warn("ingest skipped", slog.String("error", domain.ErrStoreUnavailable.Error()))
		ingestTotal.WithLabelValues("store_unavailable").Inc()
		return IngestResult{StoreUnavailable: true}
	}
	if limit <= 0 {
		limit = s.cfg.SeedLimit
	}
	if limit <= 0 {
		return IngestResult{}
	}

	index := sampler.NewIndex()
	pass := s.archive.Run(ctx, seeder.KindIngest, 0, func(_ context.Context, e archive.Entry) (krdict.Stats, error) {
		candidates, stats, err := krdict.ParseCandidates(e.Data)
		index.AddAll(candidates)
		return stats, err
	})

	sample := index.Sample(limit, s.newRand())
	result := IngestResult{Sampled: len(sample), Pass: pass}

	seen := make(map[string]struct{}, len(sample))
	for _, c := range sample {
		if _, ok := seen[c.Word]; ok {
			result.Skipped++
			continue
		}
		seen[c.Word] = struct{}{}

		switch s.save(ctx, c) {
		case saveOK:
			result.Saved++
		case saveDuplicate:
			result.Skipped++
		default:
			result.Failed++
		}
	}

	ingestTotal.WithLabelValues("saved").Add(float64(result.Saved))
	ingestTotal.WithLabelValues("skipped").Add(float64(result.Skipped))
	ingestTotal.WithLabelValues("failed").Add(float64(result.Failed))

	s.log.Info("ingest completed",
		slog.Int("groups", index.Len()),
		slog.Int("candidates", index.Size()),
		slog.Int("sampled", result.Sampled),
		slog.Int("saved", result.Saved),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)
	return result
}

type saveOutcome int

const (
	saveOK saveOutcome = iota
	saveDuplicate
	saveFailed
)

// save persists c unless its word is already pooled. The existence check
// and insert are not atomic; the storage key keeps racing inserts distinct.
func (s *Service) save(ctx context.Context, c domain.Candidate) saveOutcome {
	exists, err := s.store.ExistsByWord(ctx, c.Word)
	if err != nil {
		s.log.Error("check pool word", slog.String("word", c.Word), slog.String("error", err.Error()))
		return saveFailed
	}
	if exists {
		return saveDuplicate
	}

	if _, err := s.store.Insert(ctx, domain.NewPoolEntry(c, s.now())); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return saveDuplicate
		}
		s.log.Error("save pool word", slog.String("word", c.Word), slog.String("error", err.Error()))
		return saveFailed
	}
	return saveOK
}
