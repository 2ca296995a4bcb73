package conflict

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/pkg/datemath"
)

// Detect checks every enabled slot of every date and returns only the slots
// that overlap busy time, sorted by date then start time. A date whose
// calendar fetch fails or times out is skipped; the rest of the batch is unaffected.
func (d *detector) Detect(ctx context.Context, dates []string, slotsByDate map[string][]model.TimeSlot, granularity int) []model.TimeSlotConflict {
	if granularity <= 0 {
		d.l.Warnf(ctx, "%s: granularity %d, using %d", LogPrefixDetect, granularity, DefaultGranularity)
		granularity = DefaultGranularity
	}

	dates = uniqueDates(dates)
	results := make([][]model.TimeSlotConflict, len(dates))

	g := new(errgroup.Group)
	g.SetLimit(d.workers)
	for i, date := range dates {
		i, date := i, date
		slots := enabledSlots(slotsByDate[date])
		if len(slots) == 0 {
			continue
		}
		g.Go(func() error {
			results[i] = d.checkDate(ctx, date, slots, granularity)
			return nil
		})
	}
	_ = g.Wait()

	var out []model.TimeSlotConflict
	for _, r := range results {
		out = append(out, r...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return slotMinutes(out[i].TimeSlot) < slotMinutes(out[j].TimeSlot)
	})
	if out == nil {
		out = []model.TimeSlotConflict{}
	}
	return out
}

// checkDate fetches the busy intervals of one date and classifies its slots.
func (d *detector) checkDate(ctx context.Context, date string, slots []model.TimeSlot, granularity int) []model.TimeSlotConflict {
	day, err := datemath.ParseDate(date)
	if err != nil {
		d.l.Warnf(ctx, "%s: skipping date %q: %v", LogPrefixDetect, date, err)
		d.metrics.ObserveFetch(OutcomeInvalidDate, 0)
		return nil
	}

	busy, elapsed, err := d.fetch(ctx, day)
	if err != nil {
		outcome := OutcomeError
		if errors.Is(err, context.DeadlineExceeded) {
			outcome = OutcomeTimeout
		}
		d.metrics.ObserveFetch(outcome, elapsed)
		d.l.Warnf(ctx, "%s: skipping date %s (%s): %v", LogPrefixDetect, date, outcome, err)
		return nil
	}

	conflicts := classify(day, slots, busy, granularity, d.loc)
	if len(conflicts) == 0 {
		d.metrics.ObserveFetch(OutcomeClear, elapsed)
		d.l.Debugf(ctx, "%s: %s is clear", LogPrefixDetect, date)
		return nil
	}

	d.metrics.ObserveFetch(OutcomeConflicts, elapsed)
	for _, c := range conflicts {
		d.metrics.IncSlotConflict(string(c.Status))
	}
	d.l.Infof(ctx, "%s: %s has %d conflicting slot(s)", LogPrefixDetect, date, len(conflicts))
	return conflicts
}

// fetch calls the calendar for the full local day, bounded by the rate
// limiter and the per-call timeout. The timeout holds even if the calendar
// ignores its context.
func (d *detector) fetch(ctx context.Context, day datemath.Date) ([]model.BusyInterval, time.Duration, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return nil, 0, fmt.Errorf("rate limiter: %w", err)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start, end := day.DayBounds(d.loc)

	type result struct {
		busy []model.BusyInterval
		err  error
	}
	done := make(chan result, 1)
	began := time.Now()
	go func() {
		busy, err := d.cal.GetFreeBusy(fetchCtx, start, end)
		done <- result{busy: busy, err: err}
	}()

	select {
	case r := <-done:
		return r.busy, time.Since(began), r.err
	case <-fetchCtx.Done():
		return nil, time.Since(began), fmt.Errorf("calendar call: %w", fetchCtx.Err())
	}
}

// classify returns one TimeSlotConflict per slot that overlaps busy time.
func classify(day datemath.Date, slots []model.TimeSlot, busy []model.BusyInterval, granularity int, loc *time.Location) []model.TimeSlotConflict {
	step := time.Duration(granularity) * time.Minute
	dayStart, dayEnd := day.DayBounds(loc)
	dayEnd = dayEnd.Add(time.Second)

	var out []model.TimeSlotConflict
	for _, s := range slots {
		clock, err := datemath.NewClock(s.Hour, s.Minute)
		if err != nil {
			continue
		}
		length := step
		if s.Duration > 0 {
			length = time.Duration(s.Duration) * time.Minute
		}
		start := day.At(clock, loc)
		end := start.Add(length)

		overlaps := overlapping(busy, start, end)
		if len(overlaps) == 0 {
			continue
		}

		status := model.SlotStatusPartial
		for _, b := range overlaps {
			if !b.Start.After(start) && !b.End.Before(end) {
				status = model.SlotStatusBusy
				break
			}
		}

		var suggestions []model.SlotSuggestion
		for _, candidate := range []time.Time{start.Add(-step), start.Add(step)} {
			candidateEnd := candidate.Add(length)
			if candidate.Before(dayStart) || candidateEnd.After(dayEnd) {
				continue
			}
			if len(overlapping(busy, candidate, candidateEnd)) == 0 {
				suggestions = append(suggestions, model.SlotSuggestion{Start: candidate, End: candidateEnd})
			}
		}

		out = append(out, model.TimeSlotConflict{
			Date:        day.String(),
			TimeSlot:    s,
			Status:      status,
			Conflicts:   overlaps,
			Suggestions: suggestions,
		})
	}
	return out
}

// overlapping keeps the intervals that intersect [start, end), in calendar order.
func overlapping(busy []model.BusyInterval, start, end time.Time) []model.BusyInterval {
	var out []model.BusyInterval
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			out = append(out, b)
		}
	}
	return out
}

func enabledSlots(slots []model.TimeSlot) []model.TimeSlot {
	var out []model.TimeSlot
	for _, s := range slots {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

func uniqueDates(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

func slotMinutes(s model.TimeSlot) int {
	return s.Hour*60 + s.Minute
}
