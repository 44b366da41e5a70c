package httpserver

import (
	"github.com/gin-gonic/gin"

	"ai-tasker/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "AI task planner is up"
	HealthVersion = "1.0.0"
	ServiceName   = "ai-tasker"
)

func (srv HTTPServer) status(c *gin.Context, status string) {
	response.OK(c, gin.H{
		"status":      status,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.status(c, "healthy")
}

// readyCheck reports ready once routes are mapped, which New guarantees.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	srv.status(c, "ready")
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.status(c, "alive")
}
