package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/chosung-quiz/internal/config"
	"github.com/heartmarshall/chosung-quiz/internal/domain"
	"github.com/heartmarshall/chosung-quiz/internal/transport/middleware"
)

func newTestRouter(t *testing.T, rateLimit int) http.Handler {
	t.Helper()

	svc := &quizServiceMock{
		SearchFunc: func(context.Context, string) []domain.SearchHit { return []domain.SearchHit{} },
		SampleBatchFunc: func(context.Context, int) []domain.PoolEntry {
			return []domain.PoolEntry{}
		},
		ClearPoolFunc: func(context.Context) domain.ClearResult { return domain.ClearResult{Success: true} },
		AddWordFunc: func(context.Context, string, string) domain.AddWordResult {
			return domain.AddWordResult{}
		},
	}

	limiter := middleware.NewRateLimiter(time.Hour)
	t.Cleanup(limiter.Stop)

	return NewRouter(RouterDeps{
		Quiz:    NewQuizHandler(svc, testLogger()),
		Health:  NewHealthHandler(&storePingerMock{}, "", "test"),
		Limiter: limiter,
		Server:  config.ServerConfig{SearchRateLimit: rateLimit},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         60,
		},
		Logger: testLogger(),
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t, 0)

	for _, path := range []string{
		"/live", "/ready", "/health", "/metrics",
		"/api/ping", "/api/search?q=a", "/api/newbatch", "/api/clear-pool", "/api/add-word",
	} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/search", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_PreflightOnAPI(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/search", nil)
	req.Header.Set("Origin", "http://quiz.local")
	rec := httptest.NewRecorder()
	newTestRouter(t, 0).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_SearchRateLimit(t *testing.T) {
	router := newTestRouter(t, 1)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/search?q=a", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/search?q=a", nil))
	batch := httptest.NewRecorder()
	router.ServeHTTP(batch, httptest.NewRequest(http.MethodGet, "/api/newbatch", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, http.StatusOK, batch.Code)
}
