package parser

import (
	"sort"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/pkg/datemath"
)

// merged is the reconciled view of all partials.
type merged struct {
	dates       []datemath.Date
	times       []datemath.Clock
	durations   []int
	recurring   *model.Recurrence
	constraints model.Constraints
}

// mergePartials unions the partials in extractor order. Dates are filtered by
// the day-class constraints (weekend first, then weekday), cut to today or
// later, deduplicated and sorted. Times and durations are only deduplicated
// and sorted; constraints never filter them.
func mergePartials(partials []Partial, today datemath.Date) merged {
	var m merged
	for _, p := range partials {
		m.constraints = mergeConstraints(m.constraints, p.Constraints)
		if m.recurring == nil && p.Recurring != nil {
			m.recurring = p.Recurring
		}
	}

	seenDates := make(map[datemath.Date]struct{})
	seenTimes := make(map[datemath.Clock]struct{})
	seenDurations := make(map[int]struct{})
	for _, p := range partials {
		for _, d := range p.Dates {
			if _, ok := seenDates[d]; ok {
				continue
			}
			if d.Before(today) {
				continue
			}
			if m.constraints.WeekendsOnly && !d.IsWeekend() {
				continue
			}
			if m.constraints.WeekdaysOnly && d.IsWeekend() {
				continue
			}
			seenDates[d] = struct{}{}
			m.dates = append(m.dates, d)
		}
		for _, t := range p.Times {
			if _, ok := seenTimes[t]; ok {
				continue
			}
			seenTimes[t] = struct{}{}
			m.times = append(m.times, t)
		}
		for _, n := range p.Durations {
			if _, ok := seenDurations[n]; ok {
				continue
			}
			seenDurations[n] = struct{}{}
			m.durations = append(m.durations, n)
		}
	}

	sort.Slice(m.dates, func(i, j int) bool { return m.dates[i].Before(m.dates[j]) })
	sort.Slice(m.times, func(i, j int) bool { return m.times[i].Before(m.times[j]) })
	sort.Ints(m.durations)
	return m
}

func mergeConstraints(dst, src model.Constraints) model.Constraints {
	if src.BeforeTime != "" {
		dst.BeforeTime = src.BeforeTime
	}
	if src.AfterTime != "" {
		dst.AfterTime = src.AfterTime
	}
	dst.WorkingHours = dst.WorkingHours || src.WorkingHours
	dst.WeekendsOnly = dst.WeekendsOnly || src.WeekendsOnly
	dst.WeekdaysOnly = dst.WeekdaysOnly || src.WeekdaysOnly
	return dst
}

// temporalTypeOf picks the type by priority: recurring, datetime, date, relative.
func temporalTypeOf(m merged) model.TemporalType {
	switch {
	case m.recurring != nil:
		return model.TemporalTypeRecurring
	case len(m.times) > 0:
		return model.TemporalTypeDateTime
	case len(m.dates) > 0:
		return model.TemporalTypeDate
	default:
		return model.TemporalTypeRelative
	}
}
