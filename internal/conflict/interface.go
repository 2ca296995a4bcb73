package conflict

import (
	"context"
	"time"

	"temporal-intent-engine/internal/model"
)

// Calendar returns the busy intervals of one calendar between start and end.
type Calendar interface {
	GetFreeBusy(ctx context.Context, start, end time.Time) ([]model.BusyInterval, error)
}

// CalendarFunc adapts a function to Calendar.
type CalendarFunc func(ctx context.Context, start, end time.Time) ([]model.BusyInterval, error)

func (f CalendarFunc) GetFreeBusy(ctx context.Context, start, end time.Time) ([]model.BusyInterval, error) {
	return f(ctx, start, end)
}

// Detector checks candidate slots against a calendar.
type Detector interface {
	Detect(ctx context.Context, dates []string, slotsByDate map[string][]model.TimeSlot, granularity int) []model.TimeSlotConflict
}
