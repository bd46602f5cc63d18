package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns service liveness for load balancers and orchestration
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "roadtrack-api",
		"version": "1.0.0",
	})
}
