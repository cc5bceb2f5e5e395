package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping is the liveness probe; it never touches the store
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"app":    "hospital_bed_system",
	})
}
