package quiz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

// Messages returned to quiz clients.
const (
	msgStoreUnavailable = "퀴즈 풀 저장소 미설정"
	msgCleared          = "퀴즈 풀 전체 삭제 완료"
	msgMissingInput     = "단어와 뜻이 필요합니다."
	msgNoChosung        = "초성을 추출할 수 없습니다."
	msgDuplicate        = "이미 추가된 단어입니다."
)

// MaxBatchSize bounds a single quiz batch.
const MaxBatchSize = 500

// SampleBatch returns up to size entries drawn uniformly from the whole
// pool. size <= 0 uses the configured batch size; larger sizes are capped
// at MaxBatchSize. The result is never nil.
func (s *Service) SampleBatch(ctx context.Context, size int) []domain.PoolEntry {
	if size <= 0 {
		size = s.cfg.BatchSize
	}
	size = min(size, MaxBatchSize)
	if s.store == nil {
		return []domain.PoolEntry{}
	}

	entries, err := s.store.ListAll(ctx)
	if err != nil {
		s.log.Error("load pool for batch", slog.String("error", err.Error()))
		return []domain.PoolEntry{}
	}

	rng := s.newRand()
	rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
	if len(entries) > size {
		entries = entries[:size]
	}
	if entries == nil {
		return []domain.PoolEntry{}
	}
	return entries
}

// ClearPool removes every pooled entry.
func (s *Service) ClearPool(ctx context.Context) domain.ClearResult {
	if s.store == nil {
		return domain.ClearResult{Success: false, Message: msgStoreUnavailable}
	}

	if err := s.store.ClearAll(ctx); err != nil {
		s.log.Error("clear pool", slog.String("error", err.Error()))
		return domain.ClearResult{Success: false, Message: fmt.Sprintf("오류: %s", err.Error())}
	}

	s.log.Info("pool cleared")
	return domain.ClearResult{Success: true, Message: msgCleared}
}

// AddWord puts a manually supplied word into the pool, applying the same
// chosung extraction and duplicate check as seeding.
func (s *Service) AddWord(ctx context.Context, word, hint string) domain.AddWordResult {
	word = domain.NormalizeInput(word)
	hint = domain.NormalizeInput(hint)

	if word == "" || hint == "" {
		return reject(domain.RejectMissingInput, msgMissingInput)
	}
	if s.store == nil {
		return reject(domain.RejectStoreUnavailable, msgStoreUnavailable)
	}

	key := domain.Chosung(word)
	if key.IsEmpty() {
		return reject(domain.RejectNoChosung, msgNoChosung)
	}

	exists, err := s.store.ExistsByWord(ctx, word)
	if err != nil {
		s.log.Error("check pool word", slog.String("word", word), slog.String("error", err.Error()))
		return reject(domain.RejectStoreError, fmt.Sprintf("오류 발생: %s", err.Error()))
	}
	if exists {
		return reject(domain.RejectDuplicate, msgDuplicate)
	}

	entry := domain.NewPoolEntry(domain.Candidate{Word: word, Hint: hint, Key: key}, s.now())
	storageKey, err := s.store.Insert(ctx, entry)
	if err != nil {
		s.log.Error("add pool word", slog.String("word", word), slog.String("error", err.Error()))
		return reject(domain.RejectStoreError, fmt.Sprintf("오류 발생: %s", err.Error()))
	}

	total := s.PoolSize(ctx)
	addWordTotal.WithLabelValues("accepted").Inc()
	s.log.Info("word added", slog.String("word", word), slog.String("key", storageKey), slog.Int("total", total))

	return domain.AddWordResult{
		Accepted: true,
		Message:  fmt.Sprintf("%s 추가됨 (총 %d개)", word, total),
		Key:      storageKey,
		Total:    total,
	}
}

func reject(reason domain.RejectReason, msg string) domain.AddWordResult {
	addWordTotal.WithLabelValues(string(reason)).Inc()
	return domain.AddWordResult{Accepted: false, Reason: reason, Message: msg}
}
