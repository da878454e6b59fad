package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-booking-api/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Natours tour booking API"
	HealthVersion = "1.0.0"
	ServiceName   = "tour-booking-api"
)

func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck reports ready once MongoDB answers a ping.
// @Summary Readiness Check
// @Description Check if the API and its database are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Database unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.db.Client().Ping(ctx, nil); err != nil {
		srv.l.Warnf(ctx, "readyCheck: mongo ping: %v", err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.Resp{
			Status:  response.StatusError,
			Message: "database unreachable",
		})
		return
	}
	response.OK(c, healthBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}
