package conflict

import (
	"time"

	"golang.org/x/time/rate"

	"temporal-intent-engine/pkg/log"
)

// Config tunes the detector. Zero values fall back to the package defaults.
type Config struct {
	Location       *time.Location
	MaxConcurrency int
	FetchTimeout   time.Duration
	// RatePerSecond caps calendar calls across all concurrent Detect calls. 0 disables it.
	RatePerSecond float64
	RateBurst     int
}

type detector struct {
	cal     Calendar
	l       log.Logger
	metrics *Metrics
	loc     *time.Location
	workers int
	timeout time.Duration
	limiter *rate.Limiter
}

var _ Detector = (*detector)(nil)

// New creates a Detector. metrics may be nil.
func New(cal Calendar, l log.Logger, metrics *Metrics, cfg Config) *detector {
	d := &detector{
		cal:     cal,
		l:       l,
		metrics: metrics,
		loc:     cfg.Location,
		workers: cfg.MaxConcurrency,
		timeout: cfg.FetchTimeout,
		limiter: rate.NewLimiter(rate.Inf, 0),
	}
	if d.loc == nil {
		d.loc = time.UTC
	}
	if d.workers <= 0 {
		d.workers = DefaultMaxConcurrency
	}
	if d.timeout <= 0 {
		d.timeout = DefaultFetchTimeout
	}
	if cfg.RatePerSecond > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		d.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}
	return d
}
