package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"learnsmart-backend/web"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) (*http.Response, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func TestEmbeddedClient(t *testing.T) {
	router := chi.NewRouter()
	router.Handle("/*", web.Handler(""))

	res, body := get(t, router, "/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `id="askButton"`)
	assert.Contains(t, body, `src="script.js"`)

	res, body = get(t, router, "/script.js")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "const API_BASE = '/api';")

	res, _ = get(t, router, "/style.css")
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = get(t, router, "/missing.js")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestClientFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<p>custom build</p>"), 0644))

	res, body := get(t, web.Handler(dir), "/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "<p>custom build</p>", body)
}
