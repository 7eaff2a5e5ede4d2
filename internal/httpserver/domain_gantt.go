package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	ganttHTTP "gantt-chart-generator/internal/gantt/delivery/http"
	"gantt-chart-generator/internal/middleware"
)

// setupGanttDomain registers the gantt handlers under /api/v1/gantt and the
// legacy POST /api/generate path.
func (srv HTTPServer) setupGanttDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := ganttHTTP.New(srv.l, srv.ganttUC)

	ganttHTTP.RegisterRoutes(api, h, mw)
	ganttHTTP.RegisterLegacyRoutes(srv.gin, h, mw)

	srv.l.Infof(ctx, "Gantt domain registered")
	return nil
}
