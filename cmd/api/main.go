package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"

	"temporal-intent-engine/config"
	_ "temporal-intent-engine/docs" // Swagger docs
	"temporal-intent-engine/internal/conflict"
	"temporal-intent-engine/internal/httpserver"
	"temporal-intent-engine/internal/middleware"
	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/internal/parser"
	"temporal-intent-engine/internal/scheduling/usecase"
	"temporal-intent-engine/pkg/gcalendar"
	"temporal-intent-engine/pkg/log"
)

// @title       Temporal Intent Engine API
// @description Resolves French and English scheduling text into dates and times, and checks them against Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Temporal Intent Engine...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Default timezone: %s", cfg.Temporal.Timezone)

	// 3. Parser
	temporalParser := parser.New(logger)

	// 4. Conflict detector (optional: needs Google Calendar credentials)
	var detector conflict.Detector
	if cal := newCalendar(ctx, cfg, logger); cal != nil {
		loc, _ := time.LoadLocation(cfg.Temporal.Timezone) // checked by config.Validate
		detector = conflict.New(cal, logger, conflict.NewMetrics(prometheus.DefaultRegisterer), conflict.Config{
			Location:       loc,
			MaxConcurrency: cfg.Conflict.MaxConcurrency,
			FetchTimeout:   cfg.Conflict.FetchTimeout,
			RatePerSecond:  cfg.Conflict.RateLimitPerSec,
			RateBurst:      cfg.Conflict.RateBurst,
		})
	} else {
		logger.Warn(ctx, "Conflict detection disabled: Google Calendar is not configured")
	}

	// 5. Scheduling UseCase
	schedulingUC := usecase.New(logger, temporalParser, detector, usecase.Config{
		Timezone:      cfg.Temporal.Timezone,
		WorkingHours:  model.WorkingHours{Start: cfg.Temporal.WorkStart, End: cfg.Temporal.WorkEnd},
		WorkingDays:   cfg.Temporal.WorkingDays,
		Granularity:   cfg.Conflict.GranularityMinutes,
		MaxTextLength: cfg.Temporal.MaxTextLen,
		CacheSize:     cfg.Temporal.CacheSize,
		CacheTTL:      cfg.Temporal.CacheTTL,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Middleware:    middleware.Config{RequestsPerMin: cfg.RateLimit.RequestsPerMin},
		SchedulingUC:  schedulingUC,
		Timezone:      cfg.Temporal.Timezone,
		CalendarCheck: detector != nil,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newCalendar builds the Google Calendar source, or returns nil when no
// usable credentials are configured.
func newCalendar(ctx context.Context, cfg *config.Config, logger log.Logger) conflict.Calendar {
	if cfg.GoogleCalendar.CredentialsPath == "" {
		return nil
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return nil
	}

	if cfg.GoogleCalendar.UseEvents {
		logger.Infof(ctx, "✅ Google Calendar initialized (events of %s)", cfg.GoogleCalendar.CalendarID)
		return conflict.NewGoogleEvents(client, cfg.GoogleCalendar.CalendarID)
	}
	logger.Infof(ctx, "✅ Google Calendar initialized (free/busy of %s)", cfg.GoogleCalendar.CalendarID)
	return conflict.NewGoogleFreeBusy(client, cfg.GoogleCalendar.CalendarID, cfg.Temporal.Timezone)
}
