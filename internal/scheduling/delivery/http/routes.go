package http

import (
	"github.com/gin-gonic/gin"

	"temporal-intent-engine/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is behind the per-client rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	temporal := rg.Group("/temporal", mw.RateLimit())
	{
		temporal.POST("/parse", h.Parse)
		temporal.POST("/conflicts", h.Conflicts)
		temporal.POST("/analyze", h.Analyze)
	}
}
