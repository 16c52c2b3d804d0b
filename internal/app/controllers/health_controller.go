package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCounter reports how many sessions are live
type SessionCounter interface {
	Len() int
}

// HealthController answers liveness probes
type HealthController struct {
	sessions SessionCounter
}

// NewHealthController creates a new HealthController
func NewHealthController(sessions SessionCounter) *HealthController {
	return &HealthController{sessions: sessions}
}

// Ping reports the service is up together with the live session count.
// GET /ping
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message":  "pong",
		"status":   "success",
		"sessions": c.sessions.Len(),
	})
}
