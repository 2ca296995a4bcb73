package usecase

import (
	"context"
	"fmt"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/internal/scheduling"
	"temporal-intent-engine/pkg/datemath"
)

// DetectConflicts validates the candidate slots and checks them against the calendar.
func (uc *implUseCase) DetectConflicts(ctx context.Context, input scheduling.ConflictsInput) (scheduling.ConflictsOutput, error) {
	if uc.detector == nil {
		return scheduling.ConflictsOutput{}, scheduling.ErrCalendarUnavailable
	}
	if len(input.Dates) == 0 {
		return scheduling.ConflictsOutput{}, scheduling.ErrEmptyDates
	}
	for _, d := range input.Dates {
		if _, err := datemath.ParseDate(d); err != nil {
			return scheduling.ConflictsOutput{}, fmt.Errorf("%w: %q", scheduling.ErrInvalidDate, d)
		}
	}
	granularity, err := uc.granularity(input.Granularity)
	if err != nil {
		return scheduling.ConflictsOutput{}, err
	}
	for date, slots := range input.TimeSlotsByDate {
		for _, s := range slots {
			if err := validateSlot(s); err != nil {
				return scheduling.ConflictsOutput{}, fmt.Errorf("%w: %s %02d:%02d: %v", scheduling.ErrInvalidTimeSlot, date, s.Hour, s.Minute, err)
			}
		}
	}

	conflicts := uc.detector.Detect(ctx, input.Dates, input.TimeSlotsByDate, granularity)
	return scheduling.ConflictsOutput{Conflicts: conflicts}, nil
}

// granularity resolves 0 to the configured default and rejects anything outside one day.
func (uc *implUseCase) granularity(g int) (int, error) {
	switch {
	case g == 0:
		return uc.cfg.Granularity, nil
	case g < 0 || g > MaxGranularity:
		return 0, fmt.Errorf("%w: %d", scheduling.ErrInvalidGranularity, g)
	}
	return g, nil
}

func validateSlot(s model.TimeSlot) error {
	if _, err := datemath.NewClock(s.Hour, s.Minute); err != nil {
		return err
	}
	if s.Duration < 0 || s.Duration > MaxGranularity {
		return fmt.Errorf("duration %d out of range", s.Duration)
	}
	return nil
}
