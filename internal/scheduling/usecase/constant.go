package usecase

// Defaults used when neither the request nor the configuration sets a value.
const (
	DefaultTimezone      = "UTC"
	DefaultWorkStart     = "09:00"
	DefaultWorkEnd       = "18:00"
	DefaultMaxTextLength = 1000
	MaxGranularity       = 24 * 60
)

var DefaultWorkingDays = []int{1, 2, 3, 4, 5}
