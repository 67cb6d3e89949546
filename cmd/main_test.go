package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"devtools/backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func testRouter(t *testing.T, mutate func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	return newRouter(cfg, zerolog.New(io.Discard))
}

func TestRouterServesToolsAndPing(t *testing.T) {
	r := testRouter(t, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pong", w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/base64", bytes.NewBufferString(`{"action":"encode","text":"abc"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, `{"result":"YWJj"}`, w.Body.String())
}

func TestRouterMetrics(t *testing.T) {
	r := testRouter(t, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/sql", bytes.NewBufferString(`{"sql":"select 1"}`))
	r.ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/metrics", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "devtools_http_requests_total")

	off := testRouter(t, func(c *config.Config) { c.MetricsEnabled = false })
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/metrics", nil)
	off.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterCORS(t *testing.T) {
	r := testRouter(t, func(c *config.Config) { c.CORSOrigins = []string{"https://tools.example"} })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/api/sql", nil)
	req.Header.Set("Origin", "https://tools.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://tools.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/sql", bytes.NewBufferString(`{}`))
	req.Header.Set("Origin", "https://evil.example")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouterTrustsOnlyLoopbackProxies(t *testing.T) {
	r := testRouter(t, nil)

	req, _ := http.NewRequest("GET", "/api/whoami", nil)
	req.RemoteAddr = "192.0.2.10:4321"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"ip":"192.0.2.10"`)

	req, _ = http.NewRequest("GET", "/api/whoami", nil)
	req.RemoteAddr = "127.0.0.1:4321"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"ip":"203.0.113.7"`)
}
