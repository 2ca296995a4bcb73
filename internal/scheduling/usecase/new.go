package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"temporal-intent-engine/internal/conflict"
	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/internal/parser"
	"temporal-intent-engine/internal/scheduling"
	"temporal-intent-engine/pkg/log"
)

// Config holds the defaults applied when a request leaves a field empty.
type Config struct {
	Timezone      string
	WorkingHours  model.WorkingHours
	WorkingDays   []int
	Granularity   int
	MaxTextLength int
	CacheSize     int
	CacheTTL      time.Duration
}

// implUseCase is the private implementation of scheduling.UseCase.
type implUseCase struct {
	l        log.Logger
	parser   parser.Parser
	detector conflict.Detector // nil when no calendar is configured
	cache    *expirable.LRU[string, model.ParsedTemporal]
	cfg      Config
	now      func() time.Time
}

var _ scheduling.UseCase = (*implUseCase)(nil)

// New creates a new scheduling UseCase. detector may be nil: DetectConflicts
// then fails with ErrCalendarUnavailable and Analyze skips the calendar check.
func New(l log.Logger, p parser.Parser, detector conflict.Detector, cfg Config) *implUseCase {
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.WorkingHours.Start == "" || cfg.WorkingHours.End == "" {
		cfg.WorkingHours = model.WorkingHours{Start: DefaultWorkStart, End: DefaultWorkEnd}
	}
	if len(cfg.WorkingDays) == 0 {
		cfg.WorkingDays = append([]int{}, DefaultWorkingDays...)
	}
	if cfg.Granularity <= 0 {
		cfg.Granularity = conflict.DefaultGranularity
	}
	if cfg.MaxTextLength <= 0 {
		cfg.MaxTextLength = DefaultMaxTextLength
	}

	uc := &implUseCase{
		l:        l,
		parser:   p,
		detector: detector,
		cfg:      cfg,
		now:      time.Now,
	}
	if cfg.CacheSize > 0 {
		uc.cache = expirable.NewLRU[string, model.ParsedTemporal](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return uc
}
