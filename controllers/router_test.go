package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crush-hub/internal/config"
	"crush-hub/internal/crushcfg"
	"crush-hub/internal/models"
	"crush-hub/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Server:   config.ServerConfig{Address: ":0", Mode: gin.TestMode},
		Log:      config.LogConfig{Level: "error", Path: "console"},
		Download: config.DownloadConfig{CacheMaxAge: 300},
	}
}

// newTestRouter installs cfg as the active config for the duration of the test.
func newTestRouter(t *testing.T, cfg *config.AppConfig) *gin.Engine {
	t.Helper()
	prev := config.App()
	config.SetApp(cfg)
	t.Cleanup(func() { config.SetApp(prev) })
	return NewRouter(cfg, services.NewServer())
}

func do(r http.Handler, method, target, host string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Host = host
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetConfig(t *testing.T) {
	r := newTestRouter(t, testConfig())

	before := time.Now().Add(-time.Second)
	w := do(r, http.MethodGet, "/api/config", "hub.example")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var doc crushcfg.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, crushcfg.SchemaURL, doc.Schema)
	require.NoError(t, crushcfg.Validate(&doc))

	ts, err := time.Parse(time.RFC3339, doc.UpdatedAt)
	require.NoError(t, err)
	assert.True(t, ts.After(before))
}

func TestGetConfigFailsClosedOnBadOverrides(t *testing.T) {
	cfg := testConfig()
	cfg.Template = crushcfg.Overrides{Models: map[string]crushcfg.Model{"large": {Model: "x", Provider: "ghost"}}}
	r := newTestRouter(t, cfg)

	w := do(r, http.MethodGet, "/api/config", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", decodeError(t, w).Error)
}

func TestListSkills(t *testing.T) {
	r := newTestRouter(t, testConfig())

	cases := map[string]int{
		"/api/skills":                  12,
		"/api/skills?category=":        12,
		"/api/skills?category=dev":     4,
		"/api/skills?category=design":  3,
		"/api/skills?category=invalid": 0,
	}
	for target, want := range cases {
		w := do(r, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, w.Code, target)

		var body models.SkillsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, want, body.Total, target)
		assert.Len(t, body.Skills, want, target)
	}

	w := do(r, http.MethodGet, "/api/skills?category=invalid", "")
	assert.JSONEq(t, `{"total":0,"skills":[]}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, testConfig())
	for _, path := range []string{"/api/health", "/healthz"} {
		w := do(r, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code)

		var body models.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body.Status)
		assert.NotEmpty(t, body.Timestamp)
		assert.NotEmpty(t, body.Version)
	}
}

func TestDownloadRedirects(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := do(r, http.MethodGet, "/api/download/crush/linux/amd64", "dl.example")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://dl.example/binaries/linux/amd64/crush", w.Header().Get("Location"))
	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))

	w = do(r, http.MethodGet, "/api/download/crush/windows/amd64", "localhost:3000")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://localhost:3000/binaries/windows/amd64/crush.exe", w.Header().Get("Location"))
}

func TestDownloadUsesOverride(t *testing.T) {
	cfg := testConfig()
	cfg.Public = config.PublicConfig{BaseURL: "https://cdn.example", DeploymentHost: "ignored.app"}
	r := newTestRouter(t, cfg)

	w := do(r, http.MethodGet, "/api/download/crush/darwin/arm64", "ignored.example")
	assert.Equal(t, "https://cdn.example/binaries/darwin/arm64/crush", w.Header().Get("Location"))
}

func TestDownloadRejections(t *testing.T) {
	r := newTestRouter(t, testConfig())

	cases := map[string]string{
		"/api/download/crush/windows/arm64": "Unsupported Combination",
		"/api/download/crush/plan9/mips":    "Invalid Platform",
		"/api/download/crush/linux/mips":    "Invalid Architecture",
	}
	for target, kind := range cases {
		w := do(r, http.MethodGet, target, "dl.example")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		body := decodeError(t, w)
		assert.Equal(t, kind, body.Error, target)
		assert.NotEmpty(t, body.Message, target)
	}
}

func TestDownloadRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.Download.RateLimit = 0.001
	cfg.Download.Burst = 1
	r := newTestRouter(t, cfg)

	assert.Equal(t, http.StatusFound, do(r, http.MethodGet, "/api/download/crush/linux/arm64", "").Code)
	w := do(r, http.MethodGet, "/api/download/crush/linux/arm64", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	// other routes are not limited
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/skills", "").Code)
}

func TestDownloadRateLimitIgnoresSpoofedForwarding(t *testing.T) {
	cfg := testConfig()
	cfg.Download.RateLimit = 0.001
	cfg.Download.Burst = 1
	r := newTestRouter(t, cfg)

	send := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/download/crush/linux/amd64", nil)
		req.RemoteAddr = "203.0.113.7:40000"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		req.Header.Set("X-Real-IP", forwardedFor)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}
	assert.Equal(t, http.StatusFound, send("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.3"))
}

func TestDownloadRateLimitHonoursTrustedProxy(t *testing.T) {
	cfg := testConfig()
	cfg.Server.TrustedProxies = []string{"10.0.0.0/8"}
	cfg.Download.RateLimit = 0.001
	cfg.Download.Burst = 1
	r := newTestRouter(t, cfg)

	send := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/download/crush/linux/amd64", nil)
		req.RemoteAddr = "10.1.2.3:40000"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}
	assert.Equal(t, http.StatusFound, send("198.51.100.1"))
	assert.Equal(t, http.StatusFound, send("198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1"))
}

func TestInstallScripts(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := do(r, http.MethodGet, "/api/install/unix", "hub.example")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `BASE_URL="https://hub.example"`)

	w = do(r, http.MethodGet, "/api/install/windows", "localhost:3000")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"http://localhost:3000"`)

	w = do(r, http.MethodGet, "/api/install/plan9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMethodNotAllowedAndNotFound(t *testing.T) {
	r := newTestRouter(t, testConfig())

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		w := do(r, method, "/api/config", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		body := decodeError(t, w)
		assert.Equal(t, "Method Not Allowed", body.Error)
		assert.True(t, strings.HasPrefix(body.Message, method+" method is not supported"))
	}

	w := do(r, http.MethodPost, "/api/download/crush/linux/amd64", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET", w.Header().Get("Allow"))
	assert.Equal(t, "POST method is not supported for this endpoint. Use GET instead.", decodeError(t, w).Message)

	w = do(r, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", decodeError(t, w).Error)
}

func TestReloadRouteDisabledByDefault(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := do(r, http.MethodPost, "/api/v1/reload", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReloadRouteWhenEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.Server.EnableReload = true
	r := newTestRouter(t, cfg)

	w := do(r, http.MethodGet, "/api/v1/reload", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "POST", w.Header().Get("Allow"))
	assert.Equal(t, "GET method is not supported for this endpoint. Use POST instead.", decodeError(t, w).Message)

	w = do(r, http.MethodPost, "/api/v1/reload", "")
	assert.Contains(t, []int{http.StatusOK, http.StatusInternalServerError}, w.Code)
}

func TestMatchRoute(t *testing.T) {
	assert.True(t, matchRoute("/api/download/crush/:platform/:arch", "/api/download/crush/linux/amd64"))
	assert.False(t, matchRoute("/api/download/crush/:platform/:arch", "/api/download/crush/linux"))
	assert.True(t, matchRoute("/", "/"))
	assert.False(t, matchRoute("/", "/api"))
	assert.True(t, matchRoute("/static/*path", "/static/a/b"))
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, testConfig())
	do(r, http.MethodGet, "/api/download/crush/linux/amd64", "dl.example")

	w := do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "crush_hub_download_redirects_total")
}
