package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"temporal-intent-engine/pkg/log"
)

// Config tunes the middlewares. RequestsPerMin <= 0 disables rate limiting.
type Config struct {
	RequestsPerMin int
	MaxClients     int
	ClientTTL      time.Duration
}

type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin <= 0 {
		return mw
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = DefaultMaxClients
	}
	if cfg.ClientTTL <= 0 {
		cfg.ClientTTL = DefaultClientTTL
	}

	mw.limiters = expirable.NewLRU[string, *rate.Limiter](cfg.MaxClients, nil, cfg.ClientTTL)
	mw.rate = rate.Limit(float64(cfg.RequestsPerMin) / 60.0)
	mw.burst = cfg.RequestsPerMin / 10
	if mw.burst < 1 {
		mw.burst = 1
	}
	return mw
}
