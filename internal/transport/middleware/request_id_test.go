package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/chosung-quiz/pkg/ctxutil"
)

func serveRequestID(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	RequestID()(handler).ServeHTTP(rec, req)

	return ctxID, rec.Header().Get(RequestIDHeader)
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	ctxID, headerID := serveRequestID(t, "abc-123")
	assert.Equal(t, "abc-123", ctxID)
	assert.Equal(t, "abc-123", headerID)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	ctxID, headerID := serveRequestID(t, "")
	_, err := uuid.Parse(ctxID)
	require.NoError(t, err)
	assert.Equal(t, ctxID, headerID)
}

func TestRequestID_ReplacesInvalid(t *testing.T) {
	for _, bad := range []string{"has space", strings.Repeat("x", maxRequestIDLen+1), "줄바꿈"} {
		ctxID, _ := serveRequestID(t, bad)
		assert.NotEqual(t, bad, ctxID)
		_, err := uuid.Parse(ctxID)
		assert.NoError(t, err)
	}
}
