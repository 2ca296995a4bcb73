package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"temporal-intent-engine/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "temporal-intent-engine"
)

// Status reported by each health endpoint.
const (
	statusHealthy = "healthy"
	statusReady   = "ready"
	statusAlive   = "alive"
)

// healthResp describes the running engine.
type healthResp struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	Environment   string `json:"environment,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
	CalendarCheck bool   `json:"calendar_check"`
}

func (srv HTTPServer) health(status string) healthResp {
	return healthResp{
		Status:        status,
		Service:       ServiceName,
		Version:       HealthVersion,
		Environment:   srv.environment,
		Timezone:      srv.timezone,
		CalendarCheck: srv.calendarCheck,
	}
}

// healthCheck reports the engine identity and whether calendar conflict checks are enabled.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.health(statusHealthy))
}

// readyCheck is ready as soon as the parser is wired; the calendar is optional.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.health(statusReady))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthResp{Status: statusAlive, Service: ServiceName, Version: HealthVersion})
}

// recoverPanic turns a handler panic into the standard 500 envelope.
func (srv HTTPServer) recoverPanic(c *gin.Context, rec any) {
	err := fmt.Errorf("panic: %v", rec)
	srv.l.Errorf(context.Background(), "httpserver.recoverPanic: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	response.InternalError(c, err)
}
