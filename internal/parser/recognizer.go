package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"

	"temporal-intent-engine/pkg/datemath"
)

const day = 24 * time.Hour

// recognizer wraps a when.Parser and scans a text for every mention it can resolve.
// Rules express their result as an offset from a UTC midnight base so that
// no wall-clock or DST arithmetic happens inside the library.
type recognizer struct {
	w        *when.Parser
	patterns []*regexp.Regexp
}

// Matches inside one mention apply in rule order, so a calendar date always
// wins over a weekday name next to it whichever comes first in the text.
func newRecognizer(distance int, rs ...*rules.F) *recognizer {
	w := when.New(&rules.Options{Distance: distance, MatchByOrder: true})
	patterns := make([]*regexp.Regexp, 0, len(rs))
	for _, r := range rs {
		w.Add(r)
		patterns = append(patterns, r.RegExp)
	}
	return &recognizer{w: w, patterns: patterns}
}

// scan returns the base shifted by each recognized mention, in text order.
func (r *recognizer) scan(text string, base time.Time) ([]time.Time, error) {
	var found []time.Time
	offset := 0
	for i := 0; i < maxScans && offset < len(text); i++ {
		rest := text[offset:]
		res, err := r.w.Parse(rest, base)
		if err != nil {
			return nil, err
		}
		if res == nil {
			// A rule matched but refused to apply (e.g. 31/02); step over it.
			next := r.skip(rest)
			if next <= 0 {
				break
			}
			offset += next
			continue
		}
		found = append(found, res.Time)
		advance := res.Index + len(res.Text)
		if advance <= 0 {
			advance = 1
		}
		offset += advance
	}
	return found, nil
}

// skip returns the end of the earliest raw rule match in text, or -1.
func (r *recognizer) skip(text string) int {
	end := -1
	start := len(text)
	for _, p := range r.patterns {
		loc := p.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if loc[0] < start {
			start, end = loc[0], loc[1]
		}
	}
	return end
}

// newDateRecognizer resolves weekdays, day + month names, numeric and ISO dates.
func newDateRecognizer() *recognizer {
	return newRecognizer(dateDistance,
		weekdayRule(),
		dayMonthNameRule(),
		numericDateRule(),
		isoDateRule(),
	)
}

// newTimeRecognizer resolves HH:MM clock times.
func newTimeRecognizer() *recognizer {
	return newRecognizer(timeDistance, clockRule())
}

// weekdayRule: "mardi", "mardi prochain", "next tuesday".
// A bare weekday is the next occurrence on or after the base date; the
// "prochain"/"next" form is that weekday in the following ISO week.
func weekdayRule() *rules.F {
	return &rules.F{
		RegExp: regexp.MustCompile(`\b(?:(next)\s+)?(` + alternation(weekdayNames) + `)(?:\s+(prochain|suivant))?\b`),
		Applier: func(m *rules.Match, c *rules.Context, _ *rules.Options, ref time.Time) (bool, error) {
			wd, ok := weekdayNames[capture(m, 1)]
			if !ok {
				return false, nil
			}
			today := datemath.FromTime(ref)

			var target datemath.Date
			if capture(m, 0) != "" || capture(m, 2) != "" {
				target = today.StartOfISOWeek().AddDays(7 + isoIndex(wd))
			} else {
				target = today.AddDays((int(wd) - int(today.Weekday()) + 7) % 7)
			}
			c.Duration = time.Duration(target.DaysSince(today)) * day
			return true, nil
		},
	}
}

// dayMonthNameRule: "15 janvier", "1er mars 2026", "le premier mai".
func dayMonthNameRule() *rules.F {
	return &rules.F{
		RegExp: regexp.MustCompile(`\b(1er|premier|\d{1,2})\s+(` + alternation(monthNames) + `)(?:\s+(\d{4}))?\b`),
		Applier: func(m *rules.Match, c *rules.Context, _ *rules.Options, ref time.Time) (bool, error) {
			d := 1
			if capture(m, 0) != "1er" && capture(m, 0) != "premier" {
				d, _ = strconv.Atoi(capture(m, 0))
			}
			month, ok := monthNames[capture(m, 1)]
			if !ok {
				return false, nil
			}
			return applyCalendarDate(c, ref, capture(m, 2), month, d), nil
		},
	}
}

// numericDateRule: "15/01" or "15/01/2026" (day first).
func numericDateRule() *rules.F {
	return &rules.F{
		RegExp: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{4}))?\b`),
		Applier: func(m *rules.Match, c *rules.Context, _ *rules.Options, ref time.Time) (bool, error) {
			d, _ := strconv.Atoi(capture(m, 0))
			month, _ := strconv.Atoi(capture(m, 1))
			if month < 1 || month > 12 {
				return false, nil
			}
			return applyCalendarDate(c, ref, capture(m, 2), time.Month(month), d), nil
		},
	}
}

// isoDateRule: "2025-01-15".
func isoDateRule() *rules.F {
	return &rules.F{
		RegExp: regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`),
		Applier: func(m *rules.Match, c *rules.Context, _ *rules.Options, ref time.Time) (bool, error) {
			target, err := datemath.ParseDate(capture(m, 0) + "-" + capture(m, 1) + "-" + capture(m, 2))
			if err != nil {
				return false, nil
			}
			return applyOffset(c, datemath.FromTime(ref), target), nil
		},
	}
}

// clockRule: "14:30", "9:00".
func clockRule() *rules.F {
	return &rules.F{
		RegExp: regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`),
		Applier: func(m *rules.Match, c *rules.Context, _ *rules.Options, ref time.Time) (bool, error) {
			clock, err := datemath.ParseClock(capture(m, 0) + ":" + capture(m, 1))
			if err != nil {
				return false, nil
			}
			c.Duration = time.Duration(clock.Minutes()) * time.Minute
			return true, nil
		},
	}
}

// capture returns the i-th submatch, or "" when the optional group did not participate.
func capture(m *rules.Match, i int) string {
	if i >= len(m.Captures) {
		return ""
	}
	return m.Captures[i]
}

// applyCalendarDate sets the offset to day/month/year. Without a year, a date
// already past this year means next year. Impossible dates are rejected.
func applyCalendarDate(c *rules.Context, ref time.Time, yearText string, month time.Month, d int) bool {
	today := datemath.FromTime(ref)
	year := today.Year()
	explicitYear := yearText != ""
	if explicitYear {
		year, _ = strconv.Atoi(yearText)
	}

	target, ok := exactDate(year, month, d)
	if !ok {
		return false
	}
	if !explicitYear && target.Before(today) {
		if target, ok = exactDate(year+1, month, d); !ok {
			return false
		}
	}
	return applyOffset(c, today, target)
}

// applyOffset sets the day offset from today to target. Targets more than
// maxYearSpan years away are rejected: a time.Duration tops out near 292 years.
func applyOffset(c *rules.Context, today, target datemath.Date) bool {
	span := target.Year() - today.Year()
	if span > maxYearSpan || span < -maxYearSpan {
		return false
	}
	c.Duration = time.Duration(target.DaysSince(today)) * day
	return true
}

// exactDate rejects values NewDate would normalize, such as 31 February.
func exactDate(year int, month time.Month, d int) (datemath.Date, bool) {
	target := datemath.NewDate(year, month, d)
	return target, target.Day() == d && target.Month() == month
}

// isoIndex is the position of wd in an ISO week (Monday = 0).
func isoIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// alternation builds a regexp alternation from map keys, longest first.
func alternation[V any](m map[string]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, regexp.QuoteMeta(k))
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return strings.Join(keys, "|")
}
