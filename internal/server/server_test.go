package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/showroom/internal/config"
	"github.com/mmynk/showroom/internal/storage/memory"
	"github.com/mmynk/showroom/internal/storage/sqldb"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:               0,
		CORSAllowedOrigins: []string{"*"},
		ShutdownTimeout:    time.Second,
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	return w
}

func TestProbes(t *testing.T) {
	t.Run("memory backend is live and ready", func(t *testing.T) {
		srv, err := New(testConfig(), memory.New())
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, get(t, srv.Handler(), "/healthz").Code)

		w := get(t, srv.Handler(), "/readyz")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"backend":"memory"`)
	})

	t.Run("closed database is not ready", func(t *testing.T) {
		store, err := sqldb.Open("sqlite://"+filepath.Join(t.TempDir(), "ready.db"), sqldb.PoolOptions{})
		require.NoError(t, err)
		require.NoError(t, store.Close())

		srv, err := New(testConfig(), store)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, get(t, srv.Handler(), "/healthz").Code)
		assert.Equal(t, http.StatusServiceUnavailable, get(t, srv.Handler(), "/readyz").Code)
	})
}

func TestAPIAndMetrics(t *testing.T) {
	srv, err := New(testConfig(), memory.New())
	require.NoError(t, err)
	h := srv.Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(`{"email":"a@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `showroom_storage_operations_total{backend="memory",operation="subscribe_to_newsletter",outcome="ok"} 1`)
	assert.Contains(t, body, `showroom_http_requests_total{method="POST",route="/api/subscribe",status="201"} 1`)
}

func TestStaticSite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>home</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	cfg := testConfig()
	cfg.StaticPath = dir
	srv, err := New(cfg, memory.New())
	require.NoError(t, err)
	h := srv.Handler()

	t.Run("root serves index", func(t *testing.T) {
		w := get(t, h, "/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "home")
	})

	t.Run("existing file is served", func(t *testing.T) {
		w := get(t, h, "/app.js")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "console.log")
	})

	t.Run("client route falls back to index", func(t *testing.T) {
		w := get(t, h, "/kitchens/modern")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "home")
	})

	t.Run("unknown api path is a JSON 404", func(t *testing.T) {
		w := get(t, h, "/api/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Not found"}`, w.Body.String())
	})
}

func TestNoStaticSite(t *testing.T) {
	srv, err := New(testConfig(), memory.New())
	require.NoError(t, err)

	w := get(t, srv.Handler(), "/index.html")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	cfg := testConfig()
	cfg.Port = port
	srv, err := New(cfg, memory.New())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := "http://" + net.JoinHostPort("127.0.0.1", cfg.Addr()[1:]) + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
