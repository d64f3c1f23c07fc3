package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"firebase-config/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(cfg config.FirebaseConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewConfigHandler(cfg, zap.NewNop())

	r := gin.New()
	r.GET("/firebase-config.js", h.GetConfigScriptHandler)
	r.GET("/firebase-config.json", h.GetConfigJSONHandler)
	r.GET("/health", HealthHandler(false))
	return r
}

func TestGetConfigScriptHandler(t *testing.T) {
	r := newTestRouter(config.ExampleFirebaseConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/firebase-config.js", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/javascript; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "window.FIREBASE_CONFIG = {"))
	assert.Contains(t, w.Body.String(), `apiKey: "YOUR_API_KEY"`)
}

func TestGetConfigJSONHandlerServesLoadedValues(t *testing.T) {
	cfg := config.ExampleFirebaseConfig()
	cfg.ProjectID = "acme-prod"
	cfg.AuthDomain = "acme-prod.firebaseapp.com"
	r := newTestRouter(cfg)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/firebase-config.json", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 7)
		assert.Equal(t, "acme-prod", got["projectId"])
		assert.Equal(t, "acme-prod.firebaseapp.com", got["authDomain"])
		assert.Equal(t, "YOUR_MEASUREMENT_ID", got["measurementId"])
	}
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter(config.ExampleFirebaseConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "ok", got.Status)
	assert.False(t, got.Firebase)
	assert.False(t, got.CheckedAt.IsZero())
}
