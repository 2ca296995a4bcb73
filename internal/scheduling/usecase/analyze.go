package usecase

import (
	"context"
	"fmt"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/internal/scheduling"
	"temporal-intent-engine/pkg/datemath"
)

// Analyze parses the text, plans candidate slots from the result and checks
// them against the calendar when one is configured. The calendar check runs
// in the configured timezone, so a request for another zone is rejected then.
func (uc *implUseCase) Analyze(ctx context.Context, input scheduling.AnalyzeInput) (scheduling.AnalyzeOutput, error) {
	tc, loc, err := uc.temporalContext(input.ParseInput)
	if err != nil {
		return scheduling.AnalyzeOutput{}, err
	}
	if uc.detector != nil && tc.UserTimezone != uc.cfg.Timezone {
		return scheduling.AnalyzeOutput{}, fmt.Errorf("%w: %q, calendar checks run in %q", scheduling.ErrTimezoneMismatch, tc.UserTimezone, uc.cfg.Timezone)
	}
	granularity, err := uc.granularity(input.Granularity)
	if err != nil {
		return scheduling.AnalyzeOutput{}, err
	}

	parsed := uc.parse(ctx, input.Text, tc, loc)
	dates, slots := plan(parsed, tc, datemath.Today(tc.CurrentDate, loc), granularity)

	out := scheduling.AnalyzeOutput{
		Parsed:          parsed,
		Dates:           dates,
		TimeSlotsByDate: slots,
		Conflicts:       []model.TimeSlotConflict{},
	}
	if uc.detector == nil {
		uc.l.Warnf(ctx, "uc.Analyze: no calendar configured, skipping conflict check")
		return out, nil
	}

	out.CalendarChecked = true
	if len(dates) == 0 {
		return out, nil
	}
	out.Conflicts = uc.detector.Detect(ctx, dates, slots, granularity)
	return out, nil
}
