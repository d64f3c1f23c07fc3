package routes

import (
	"time"

	"firebase-config/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterConfigRoutes registers the Firebase web config endpoints.
func RegisterConfigRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/firebase-config.js", hb.GetConfigScriptHandler)
	r.GET("/firebase-config.json", hb.GetConfigJSONHandler)
}

func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Config is public and read-only; any origin may load it.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterConfigRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
