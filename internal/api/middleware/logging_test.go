package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railscout/railscout/internal/api/middleware"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	body := []byte(`{"text":"DEPARTURES - London Paddington"}`)
	handler := middleware.Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/tools/get_station_board", http.NoBody)
	req.Header.Set("User-Agent", "railscout-cli/1.0")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	entry := logLine(t, &buf)
	assert.Equal(t, "request completed", entry["message"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/v1/tools/get_station_board", entry["path"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, float64(len(body)), entry["bytes"])
	assert.Equal(t, "railscout-cli/1.0", entry["user_agent"])
	assert.NotEmpty(t, entry["duration"])
}

func TestLogger_WarnsOnClientError(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := middleware.Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/tools/check_connection", http.NoBody)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	entry := logLine(t, &buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, float64(400), entry["status"])
}

func TestLogger_ErrorsOnServerError(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := middleware.Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/tools/search_journeys", http.NoBody)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	entry := logLine(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, float64(502), entry["status"])
}

func TestLogger_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := middleware.RequestID(
		middleware.Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	entry := logLine(t, &buf)
	requestID, ok := entry["request_id"].(string)
	assert.True(t, ok)
	assert.Contains(t, requestID, "req_")
}

func TestLogger_IncludesTraceID(t *testing.T) {
	setupTestTracer(t)

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := middleware.Tracing("railscout-api")(
		middleware.Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/status", http.NoBody)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	entry := logLine(t, &buf)

	traceID, ok := entry["trace_id"].(string)
	assert.True(t, ok)
	assert.Len(t, traceID, 32)

	spanID, ok := entry["span_id"].(string)
	assert.True(t, ok)
	assert.Len(t, spanID, 16)
}

func TestLogger_DefaultStatusCode(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	handler := middleware.Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No explicit WriteHeader - must log as 200
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	entry := logLine(t, &buf)
	assert.Equal(t, float64(200), entry["status"])
}
