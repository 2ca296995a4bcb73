package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"temporal-intent-engine/internal/middleware"
	"temporal-intent-engine/internal/scheduling"
	"temporal-intent-engine/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware
	mw middleware.Middleware

	// Metrics exposed on /metrics
	gatherer prometheus.Gatherer

	// Scheduling domain
	schedulingUC  scheduling.UseCase
	timezone      string
	calendarCheck bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware middleware.Config

	// Gatherer defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	SchedulingUC scheduling.UseCase

	// Timezone and CalendarCheck are reported by the health endpoints.
	Timezone      string
	CalendarCheck bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		gatherer:        cfg.Gatherer,
		schedulingUC:    cfg.SchedulingUC,
		timezone:        cfg.Timezone,
		calendarCheck:   cfg.CalendarCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if srv.gatherer == nil {
		srv.gatherer = prometheus.DefaultGatherer
	}
	srv.mw = middleware.New(logger, cfg.Middleware)

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.schedulingUC == nil {
		return errors.New("scheduling use case is required")
	}
	return nil
}
