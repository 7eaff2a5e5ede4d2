package http

import (
	"github.com/gin-gonic/gin"

	"gantt-chart-generator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Generation calls a paid model, so it sits behind the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	g := rg.Group("/gantt")
	{
		g.POST("/generate", mw.RateLimit(), h.Generate)
		g.POST("/render", h.Render)
		g.POST("/classify", h.Classify)
	}
}

// RegisterLegacyRoutes keeps the original single-endpoint path working.
func RegisterLegacyRoutes(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.POST("/api/generate", mw.RateLimit(), h.Generate)
}
