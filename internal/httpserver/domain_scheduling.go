package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	schedulingHTTP "temporal-intent-engine/internal/scheduling/delivery/http"
)

// setupSchedulingDomain registers /api/v1/temporal/{parse,conflicts,analyze}.
// The use case is built in main so the CLI can share its wiring.
func (srv HTTPServer) setupSchedulingDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := schedulingHTTP.New(srv.l, srv.schedulingUC)
	schedulingHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Scheduling domain registered")
	return nil
}
