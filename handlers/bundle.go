package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the endpoints the router registers.
type HandlerBundle struct {
	GetConfigScriptHandler gin.HandlerFunc
	GetConfigJSONHandler   gin.HandlerFunc
	HealthHandler          gin.HandlerFunc
}
