package scheduling

import (
	"time"

	"temporal-intent-engine/internal/model"
)

// --- UseCase Inputs ---

// ParseInput carries the text and optional overrides of the configured context.
// A zero CurrentDate means "now"; empty fields use the service defaults.
type ParseInput struct {
	Text         string
	CurrentDate  time.Time
	Timezone     string
	WorkingHours *model.WorkingHours
	WorkingDays  []int
}

type ConflictsInput struct {
	Dates           []string
	TimeSlotsByDate map[string][]model.TimeSlot
	Granularity     int // minutes, 0 = default
}

type AnalyzeInput struct {
	ParseInput
	Granularity int
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Parsed model.ParsedTemporal
}

type ConflictsOutput struct {
	Conflicts []model.TimeSlotConflict
}

// AnalyzeOutput is CalendarChecked=false when no calendar is configured;
// Conflicts is then empty and says nothing about availability.
type AnalyzeOutput struct {
	Parsed          model.ParsedTemporal
	Dates           []string
	TimeSlotsByDate map[string][]model.TimeSlot
	Conflicts       []model.TimeSlotConflict
	CalendarChecked bool
}
