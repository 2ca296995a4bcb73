package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/internal/scheduling"
	"temporal-intent-engine/pkg/datemath"
)

// Parse validates the input, builds the temporal context and parses the text.
// Results are cached per text and reference day.
func (uc *implUseCase) Parse(ctx context.Context, input scheduling.ParseInput) (scheduling.ParseOutput, error) {
	tc, loc, err := uc.temporalContext(input)
	if err != nil {
		return scheduling.ParseOutput{}, err
	}

	parsed := uc.parse(ctx, input.Text, tc, loc)
	return scheduling.ParseOutput{Parsed: parsed}, nil
}

func (uc *implUseCase) parse(ctx context.Context, text string, tc model.TemporalContext, loc *time.Location) model.ParsedTemporal {
	if uc.cache == nil {
		return uc.parser.Parse(ctx, text, tc)
	}

	key := cacheKey(text, tc, loc)
	if cached, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "uc.Parse: cache hit")
		return cloneParsed(cached)
	}

	parsed := uc.parser.Parse(ctx, text, tc)
	uc.cache.Add(key, cloneParsed(parsed))
	return parsed
}

// temporalContext validates the input and fills the gaps from the configured defaults.
func (uc *implUseCase) temporalContext(input scheduling.ParseInput) (model.TemporalContext, *time.Location, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.TemporalContext{}, nil, scheduling.ErrEmptyText
	}
	if utf8.RuneCountInString(text) > uc.cfg.MaxTextLength {
		return model.TemporalContext{}, nil, scheduling.ErrTextTooLong
	}

	tz := input.Timezone
	if tz == "" {
		tz = uc.cfg.Timezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return model.TemporalContext{}, nil, fmt.Errorf("%w: %q", scheduling.ErrInvalidTimezone, tz)
	}

	wh := uc.cfg.WorkingHours
	if input.WorkingHours != nil {
		wh = *input.WorkingHours
	}
	if _, _, err := workingWindow(wh); err != nil {
		return model.TemporalContext{}, nil, err
	}

	days := uc.cfg.WorkingDays
	if len(input.WorkingDays) > 0 {
		days = input.WorkingDays
	}
	for _, d := range days {
		if d < 0 || d > 6 {
			return model.TemporalContext{}, nil, fmt.Errorf("%w: %d", scheduling.ErrInvalidWorkingDays, d)
		}
	}

	now := input.CurrentDate
	if now.IsZero() {
		now = uc.now()
	}

	return model.TemporalContext{
		CurrentDate:  now,
		UserTimezone: tz,
		WorkingHours: wh,
		WorkingDays:  append([]int{}, days...),
	}, loc, nil
}

// workingWindow parses and orders a working-hours window.
func workingWindow(wh model.WorkingHours) (datemath.Clock, datemath.Clock, error) {
	start, err := datemath.ParseClock(wh.Start)
	if err != nil {
		return datemath.Clock{}, datemath.Clock{}, fmt.Errorf("%w: start: %v", scheduling.ErrInvalidWorkingHours, err)
	}
	end, err := datemath.ParseClock(wh.End)
	if err != nil {
		return datemath.Clock{}, datemath.Clock{}, fmt.Errorf("%w: end: %v", scheduling.ErrInvalidWorkingHours, err)
	}
	if !start.Before(end) {
		return datemath.Clock{}, datemath.Clock{}, fmt.Errorf("%w: start %s is not before end %s", scheduling.ErrInvalidWorkingHours, start, end)
	}
	return start, end, nil
}

func cacheKey(text string, tc model.TemporalContext, loc *time.Location) string {
	days := make([]string, 0, len(tc.WorkingDays))
	for _, d := range tc.WorkingDays {
		days = append(days, fmt.Sprint(d))
	}
	return strings.Join([]string{
		text,
		datemath.Today(tc.CurrentDate, loc).String(),
		tc.UserTimezone,
		tc.WorkingHours.Start + "-" + tc.WorkingHours.End,
		strings.Join(days, ","),
	}, "|")
}

// cloneParsed copies the slices of p so cached values are never shared with callers.
func cloneParsed(p model.ParsedTemporal) model.ParsedTemporal {
	out := p
	out.Extracted.Dates = append([]string{}, p.Extracted.Dates...)
	out.Extracted.Times = append([]string{}, p.Extracted.Times...)
	out.Extracted.Durations = append([]int{}, p.Extracted.Durations...)
	if p.Extracted.Recurring != nil {
		r := *p.Extracted.Recurring
		r.Weekdays = append([]string{}, p.Extracted.Recurring.Weekdays...)
		out.Extracted.Recurring = &r
	}
	out.CounterfactualChecks.Conflicts = append([]string{}, p.CounterfactualChecks.Conflicts...)
	out.CounterfactualChecks.Suggestions = append([]string{}, p.CounterfactualChecks.Suggestions...)
	return out
}
