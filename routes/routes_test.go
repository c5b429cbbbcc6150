package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripai/metrics"
)

func newRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	router := httprouter.New()
	AddUtilityRoutes(router, metrics.New())
	AddStaticRoutes(router, dir)
	return router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestUtilityRoutes(t *testing.T) {
	router := newRouter(t)

	rec := get(router, "/api/test")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Server is working!"}`, rec.Body.String())

	rec = get(router, "/ping")
	assert.Equal(t, "pong", rec.Body.String())

	rec = get(router, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestSPAFallback(t *testing.T) {
	router := newRouter(t)

	assert.Equal(t, "console.log(1)", get(router, "/assets/app.js").Body.String())
	assert.Equal(t, "<html>app</html>", get(router, "/planner").Body.String())
	assert.Equal(t, "<html>app</html>", get(router, "/trips/42/map").Body.String())
	assert.Equal(t, "<html>app</html>", get(router, "/").Body.String())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
