package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /health — public liveness probe, no auth.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Server Healthy."})
}
