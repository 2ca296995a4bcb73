package conflict

import "time"

// Log prefixes
const (
	LogPrefixDetect = "internal.conflict.Detect"
)

// Defaults applied when Config leaves a field at zero.
const (
	DefaultGranularity    = 30
	DefaultMaxConcurrency = 4
	DefaultFetchTimeout   = 5 * time.Second
)

// Fetch outcomes. Each date ends in exactly one of them.
const (
	OutcomeClear       = "clear"
	OutcomeConflicts   = "conflicts"
	OutcomeError       = "error"
	OutcomeTimeout     = "timeout"
	OutcomeInvalidDate = "invalid_date"
)
