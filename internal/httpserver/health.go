package httpserver

import (
	_ "embed"
	"net/http"

	pkgErrors "gantt-chart-generator/pkg/errors"
	"gantt-chart-generator/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "gantt-chart-generator"
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "No language model provider is configured")

//go:embed web/index.html
var indexHTML []byte

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ok",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once at least one language model provider is
// configured. Rendering and classification work without one, generation does not.
// @Summary Readiness Check
// @Description Ready when a language model provider is configured
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "No provider configured"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if len(srv.providers) == 0 {
		response.Error(c, errNotReady.WithDetails(gin.H{"service": ServiceName}))
		return
	}
	response.OK(c, gin.H{
		"status":    "ready",
		"version":   HealthVersion,
		"service":   ServiceName,
		"providers": srv.providers,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// index serves the embedded web form.
func (srv HTTPServer) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
