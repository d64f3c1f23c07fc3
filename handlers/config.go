package handlers

import (
	"net/http"

	"firebase-config/config"
	"firebase-config/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConfigHandler serves the Firebase web config to browsers.
type ConfigHandler struct {
	cfg    config.FirebaseConfig
	logger *zap.Logger
}

func NewConfigHandler(cfg config.FirebaseConfig, logger *zap.Logger) *ConfigHandler {
	return &ConfigHandler{cfg: cfg, logger: logger}
}

// GetConfigScriptHandler serves window.FIREBASE_CONFIG as a script.
func (h *ConfigHandler) GetConfigScriptHandler(c *gin.Context) {
	body, err := config.RenderJS(h.cfg)
	if err != nil {
		h.logger.Error("ConfigHandler: failed to render script", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to render config", err.Error())
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", body)
}

// GetConfigJSONHandler serves the same object as JSON.
func (h *ConfigHandler) GetConfigJSONHandler(c *gin.Context) {
	body, err := config.RenderJSON(h.cfg)
	if err != nil {
		h.logger.Error("ConfigHandler: failed to render json", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to render config", err.Error())
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
