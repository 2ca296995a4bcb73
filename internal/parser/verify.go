package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/pkg/datemath"
)

var (
	weekdayMentionPattern = regexp.MustCompile(`\b(` + alternation(weekdayNames) + `)s?\b`)
	weekendWordPattern    = regexp.MustCompile(`\bweekends?\b`)
	weekWordPattern       = regexp.MustCompile(`\bsemaines?\b`)
	morningWordPattern    = wordRegexp(morningWords)
	afternoonWordPattern  = wordRegexp(afternoonWords)
	eveningWordPattern    = wordRegexp(eveningWords)
)

// dayPeriod is a labelled time-of-day window [from, to) in minutes.
type dayPeriod struct {
	pattern    *regexp.Regexp
	from, to   int
	conflict   string
	suggestion string
}

var dayPeriods = []dayPeriod{
	{pattern: morningWordPattern, from: 0, to: 12 * 60, conflict: MsgMorningConflict, suggestion: MsgMorningSuggestion},
	{pattern: afternoonWordPattern, from: 12 * 60, to: 18 * 60, conflict: MsgAfternoonConflict, suggestion: MsgAfternoonSugg},
	{pattern: eveningWordPattern, from: 18 * 60, to: 24 * 60, conflict: MsgEveningConflict, suggestion: MsgEveningSuggestion},
}

// checkBuilder accumulates conflicts and de-duplicated suggestions.
type checkBuilder struct {
	conflicts   []string
	suggestions []string
	seen        map[string]struct{}
}

func (b *checkBuilder) add(conflict, suggestion string) {
	b.conflicts = append(b.conflicts, conflict)
	if _, ok := b.seen[suggestion]; ok {
		return
	}
	b.seen[suggestion] = struct{}{}
	b.suggestions = append(b.suggestions, suggestion)
}

// verify re-reads the normalized text against the merged candidates and
// reports every contradiction it finds. It never changes the candidates.
func verify(text string, m merged) model.CounterfactualChecks {
	b := &checkBuilder{
		conflicts:   []string{},
		suggestions: []string{},
		seen:        make(map[string]struct{}),
	}

	checkWeekdayNames(b, text, m.dates)
	checkDayClass(b, text, m.dates)
	checkOrdering(b, text)
	checkDayPeriods(b, text, m.times)

	return model.CounterfactualChecks{
		Passed:      len(b.conflicts) == 0,
		Conflicts:   b.conflicts,
		Suggestions: b.suggestions,
	}
}

// checkWeekdayNames flags dates whose weekday is none of those named in the text.
func checkWeekdayNames(b *checkBuilder, text string, dates []datemath.Date) {
	named := namedWeekdays(text)
	if len(named) == 0 {
		return
	}

	labels := make([]string, 0, len(named))
	for _, wd := range named {
		labels = append(labels, frenchWeekdays[wd])
	}

	for _, d := range dates {
		if containsWeekday(named, d.Weekday()) {
			continue
		}
		b.add(
			fmt.Sprintf(MsgWeekdayMismatch, d, frenchWeekdays[d.Weekday()], strings.Join(labels, " ou ")),
			fmt.Sprintf(MsgWeekdaySuggestion, d),
		)
	}
}

func checkDayClass(b *checkBuilder, text string, dates []datemath.Date) {
	wantWeekend := weekendWordPattern.MatchString(text)
	wantWeekday := !wantWeekend && weekWordPattern.MatchString(text)

	for _, d := range dates {
		switch {
		case wantWeekend && !d.IsWeekend():
			b.add(fmt.Sprintf(MsgWeekendMismatch, d), fmt.Sprintf(MsgWeekendSuggestion, d))
		case wantWeekday && d.IsWeekend():
			b.add(fmt.Sprintf(MsgWeekdayClassError, d), fmt.Sprintf(MsgWeekdayClassSugg, d))
		}
	}
}

// checkOrdering flags "avant H1 ... après H2" when H1 <= H2: no instant satisfies both.
func checkOrdering(b *checkBuilder, text string) {
	before, okBefore := explicitBound(beforeTimePattern, text)
	after, okAfter := explicitBound(afterTimePattern, text)
	if !okBefore || !okAfter {
		return
	}
	if before <= after {
		b.add(MsgOrderingConflict, fmt.Sprintf(MsgOrderingSuggestion, before, after))
	}
}

// checkDayPeriods flags times outside every period named in the text.
// The message refers to the first period named.
func checkDayPeriods(b *checkBuilder, text string, times []datemath.Clock) {
	var named []dayPeriod
	for _, p := range dayPeriods {
		if p.pattern.MatchString(text) {
			named = append(named, p)
		}
	}
	if len(named) == 0 {
		return
	}

	for _, t := range times {
		fits := false
		for _, p := range named {
			if t.Minutes() >= p.from && t.Minutes() < p.to {
				fits = true
				break
			}
		}
		if !fits {
			b.add(fmt.Sprintf(named[0].conflict, t), named[0].suggestion)
		}
	}
}

// namedWeekdays lists the weekdays mentioned in text, in order of first mention.
func namedWeekdays(text string) []time.Weekday {
	var out []time.Weekday
	for _, m := range weekdayMentionPattern.FindAllStringSubmatch(text, -1) {
		wd, ok := weekdayNames[m[1]]
		if !ok || containsWeekday(out, wd) {
			continue
		}
		out = append(out, wd)
	}
	return out
}

func containsWeekday(list []time.Weekday, wd time.Weekday) bool {
	for _, w := range list {
		if w == wd {
			return true
		}
	}
	return false
}
