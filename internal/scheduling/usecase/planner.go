package usecase

import (
	"time"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/pkg/datemath"
)

const endOfDay = 24 * 60

var recurringWeekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// plan turns a parse result into the dates and candidate slots to check.
// Extracted times become the slots; otherwise the day is stepped through at
// granularity inside the window set by the constraints or the working hours.
func plan(parsed model.ParsedTemporal, tc model.TemporalContext, today datemath.Date, granularity int) ([]string, map[string][]model.TimeSlot) {
	dates := candidateDates(parsed, today)
	if parsed.Extracted.Constraints.WorkingHours {
		dates = onWorkingDays(dates, tc.WorkingDays)
	}

	length := 0
	if n := len(parsed.Extracted.Durations); n > 0 {
		length = parsed.Extracted.Durations[n-1]
	}

	slots := timeSlots(parsed, tc.WorkingHours, granularity, length)
	byDate := make(map[string][]model.TimeSlot, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if len(slots) == 0 {
			continue
		}
		out = append(out, d.String())
		byDate[d.String()] = append([]model.TimeSlot{}, slots...)
	}
	return out, byDate
}

// candidateDates returns the extracted dates, or the next week of occurrences
// of a recurring pattern when no date was given.
func candidateDates(parsed model.ParsedTemporal, today datemath.Date) []datemath.Date {
	var dates []datemath.Date
	for _, s := range parsed.Extracted.Dates {
		if d, err := datemath.ParseDate(s); err == nil {
			dates = append(dates, d)
		}
	}
	if len(dates) > 0 || parsed.Extracted.Recurring == nil {
		return dates
	}

	want := make(map[time.Weekday]bool, len(parsed.Extracted.Recurring.Weekdays))
	for _, name := range parsed.Extracted.Recurring.Weekdays {
		if wd, ok := recurringWeekdays[name]; ok {
			want[wd] = true
		}
	}
	for i := 0; i < 7; i++ {
		d := today.AddDays(i)
		if want[d.Weekday()] {
			dates = append(dates, d)
		}
	}
	return dates
}

func onWorkingDays(dates []datemath.Date, workingDays []int) []datemath.Date {
	allowed := make(map[time.Weekday]bool, len(workingDays))
	for _, wd := range workingDays {
		allowed[time.Weekday(wd)] = true
	}
	out := dates[:0:0]
	for _, d := range dates {
		if allowed[d.Weekday()] {
			out = append(out, d)
		}
	}
	return out
}

func timeSlots(parsed model.ParsedTemporal, wh model.WorkingHours, granularity, length int) []model.TimeSlot {
	if len(parsed.Extracted.Times) > 0 {
		out := make([]model.TimeSlot, 0, len(parsed.Extracted.Times))
		for _, s := range parsed.Extracted.Times {
			c, err := datemath.ParseClock(s)
			if err != nil {
				continue
			}
			out = append(out, model.TimeSlot{Hour: c.Hour(), Minute: c.Minute(), Enabled: true, Duration: length})
		}
		return out
	}

	from, to, ok := window(parsed.Extracted.Constraints, wh)
	if !ok {
		return nil
	}
	step := length
	if step <= 0 {
		step = granularity
	}

	var out []model.TimeSlot
	for m := from; m+step <= to; m += granularity {
		out = append(out, model.TimeSlot{Hour: m / 60, Minute: m % 60, Enabled: true, Duration: length})
	}
	return out
}

// window returns the [from, to) minutes to step through. An afterTime past
// the end of the working day opens the window until midnight.
func window(c model.Constraints, wh model.WorkingHours) (int, int, bool) {
	from, to := -1, -1
	if start, end, err := workingWindow(wh); err == nil {
		from, to = start.Minutes(), end.Minutes()
	}
	if c.AfterTime != "" {
		if t, err := datemath.ParseClock(c.AfterTime); err == nil {
			from = t.Minutes()
		}
	}
	if c.BeforeTime != "" {
		if t, err := datemath.ParseClock(c.BeforeTime); err == nil {
			to = t.Minutes()
		}
	}
	if from < 0 || to < 0 {
		return 0, 0, false
	}
	if to <= from {
		if c.BeforeTime != "" {
			return 0, 0, false
		}
		to = endOfDay
	}
	return from, to, true
}
