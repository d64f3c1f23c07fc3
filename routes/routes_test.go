package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase-config/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }

	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		GetConfigScriptHandler: ok,
		GetConfigJSONHandler:   ok,
		HealthHandler:          ok,
	})
	return r
}

func TestRegisterRoutesCORSPreflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/firebase-config.json", nil)
	req.Header.Set("Origin", "https://app.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	methods := w.Header().Get("Access-Control-Allow-Methods")
	assert.Contains(t, methods, http.MethodGet)
	assert.NotContains(t, methods, http.MethodPost)
}

func TestRegisterRoutesCrossOriginGet(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/firebase-config.js", "/firebase-config.json", "/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Origin", "https://app.example.org")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
	}
}

func TestRegisterRoutesRejectsPost(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/firebase-config.json", nil)
	req.Header.Set("Origin", "https://app.example.org")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
