package observability

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("POST", "/api/sql", 200, 12*time.Millisecond)

	before := testutil.ToFloat64(toolErrors.WithLabelValues("cron"))
	RecordToolError("cron")
	assert.Equal(t, before+1, testutil.ToFloat64(toolErrors.WithLabelValues("cron")))
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "devtools", "warn", "json")

	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "devtools", entry["app"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewLoggerBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "devtools", "shout", "json")
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func newTestEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := newLogger(buf, "devtools", "debug", "json")

	r := gin.New()
	r.Use(RequestLogger(logger), RequestMetricsMiddleware(), Recovery(logger))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })
	return r
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newTestEngine(&buf)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ok", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http_request", entry["message"])
	assert.Equal(t, "/ok", entry["path"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "info", entry["level"])
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	r := newTestEngine(&buf)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.Contains(t, buf.String(), "kaboom")
	assert.Contains(t, buf.String(), `"status":500`)
}

func TestRequestMetricsUnmatchedPath(t *testing.T) {
	var buf bytes.Buffer
	r := newTestEngine(&buf)

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/wp-login.php", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}
