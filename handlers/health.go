package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status    string    `json:"status"`
	Firebase  bool      `json:"firebase"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthHandler reports liveness. Firebase is true when a server-side app
// was initialized at startup.
func HealthHandler(firebaseReady bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthStatus{
			Status:    "ok",
			Firebase:  firebaseReady,
			CheckedAt: time.Now().UTC(),
		})
	}
}
