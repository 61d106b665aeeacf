package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seenTraceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusCreated)
	})

	rr := httptest.NewRecorder()
	NewTraceMiddleware(base)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/trails", nil))

	require.Len(t, seenTraceID, shared.TraceIDLength)
	assert.Equal(t, seenTraceID, rr.Header().Get(TraceIDHeader))
	assert.Equal(t, http.StatusCreated, rr.Code)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3, "expected started, handler and completed entries")

	for _, line := range lines {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, seenTraceID, entry["trace_id"])
	}

	var completed map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[2], &completed))
	assert.Equal(t, "request completed", completed["msg"])
	assert.Equal(t, float64(http.StatusCreated), completed["status"])
}

func TestTraceMiddlewareDistinctIDs(t *testing.T) {
	t.Parallel()

	mw := NewTraceMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	second := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get(TraceIDHeader), second.Header().Get(TraceIDHeader))
	assert.Equal(t, http.StatusOK, first.Code)
}
