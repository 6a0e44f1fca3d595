package rest

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
	"github.com/heartmarshall/chosung-quiz/internal/service/quiz"
	"github.com/heartmarshall/chosung-quiz/pkg/ctxutil"
)

// maxBatchSize bounds the size query parameter of /api/newbatch.
const maxBatchSize = quiz.MaxBatchSize

type quizService interface {
	Search(ctx context.Context, query string) []domain.SearchHit
	SampleBatch(ctx context.Context, size int) []domain.PoolEntry
	ClearPool(ctx context.Context) domain.ClearResult
	AddWord(ctx context.Context, word, hint string) domain.AddWordResult
}

// QuizHandler exposes the quiz service. Every endpoint answers 200 with a
// well-formed body; failures show up as empty lists or success=false.
type QuizHandler struct {
	svc quizService
	log *slog.Logger
	now func() time.Time
	pid int
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(svc quizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{
		svc: svc,
		log: logger.With("handler", "quiz"),
		now: time.Now,
		pid: os.Getpid(),
	}
}

// PingResponse is the body of /api/ping.
type PingResponse struct {
	OK  bool   `json:"ok"`
	Now string `json:"now"`
	PID int    `json:"pid"`
}

// Ping reports that the process is up.
func (h *QuizHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, PingResponse{
		OK:  true,
		Now: h.now().UTC().Format(time.RFC3339Nano),
		PID: h.pid,
	})
}

// Search handles /api/search?q=.
func (h *QuizHandler) Search(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Search(r.Context(), r.URL.Query().Get("q")))
}

// NewBatch handles /api/newbatch. An optional size parameter overrides the
// configured batch size.
func (h *QuizHandler) NewBatch(w http.ResponseWriter, r *http.Request) {
	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err == nil && n > 0 {
			size = min(n, maxBatchSize)
		}
	}
	writeJSON(w, http.StatusOK, h.svc.SampleBatch(r.Context(), size))
}

// ClearPool handles /api/clear-pool. The clear is not abandoned when the
// client disconnects.
func (h *QuizHandler) ClearPool(w http.ResponseWriter, r *http.Request) {
	res := h.svc.ClearPool(ctxutil.Detach(r.Context()))
	if !res.Success {
		h.log.WarnContext(r.Context(), "clear pool rejected", slog.String("message", res.Message))
	}
	writeJSON(w, http.StatusOK, res)
}

// AddWord handles /api/add-word?word=&hint=. The write is not abandoned
// when the client disconnects.
func (h *QuizHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.svc.AddWord(ctxutil.Detach(r.Context()), q.Get("word"), q.Get("hint")))
}
