package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/chandlera/chandler-family-blog/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From The Family Blog With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "chandler-family-blog"
)

// healthCheck reports the preview feed as healthy whenever the process is
// serving; the feed itself degrades to empty rather than unhealthy.
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests.
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests.
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
