package parser

import (
	"context"
	"regexp"

	"temporal-intent-engine/pkg/datemath"
)

var (
	thisWeekPattern      = regexp.MustCompile(`\bthis week\b|\bcette semaine\b`)
	nextWeekPattern      = regexp.MustCompile(`\bnext week\b|\bsemaine prochaine\b`)
	afterTomorrowPattern = regexp.MustCompile(`\baprès-demain\b|\bapres-demain\b|\bday after tomorrow\b`)
	tomorrowPattern      = regexp.MustCompile(`\bdemain\b|\btomorrow\b`)
	todayPattern         = regexp.MustCompile(`\baujourd'hui\b|\btoday\b`)
)

// relativeExtractor resolves coarse relative expressions against today.
// Duplicates across phrases are left for the merge step.
type relativeExtractor struct{}

func newRelativeExtractor() *relativeExtractor { return &relativeExtractor{} }

func (e *relativeExtractor) Name() string { return "relative" }

func (e *relativeExtractor) Extract(_ context.Context, text string, ref Reference) (Partial, error) {
	var dates []datemath.Date
	today := ref.Today

	if thisWeekPattern.MatchString(text) {
		for _, d := range workweek(today.StartOfISOWeek()) {
			if !d.Before(today) {
				dates = append(dates, d)
			}
		}
	}
	if nextWeekPattern.MatchString(text) {
		dates = append(dates, workweek(today.StartOfISOWeek().AddDays(7))...)
	}
	if todayPattern.MatchString(text) {
		dates = append(dates, today)
	}

	// "après-demain" contains "demain"; remove it before looking for the shorter phrase.
	if afterTomorrowPattern.MatchString(text) {
		dates = append(dates, today.AddDays(2))
		text = afterTomorrowPattern.ReplaceAllString(text, " ")
	}
	if tomorrowPattern.MatchString(text) {
		dates = append(dates, today.AddDays(1))
	}

	return Partial{Dates: dates}, nil
}

// workweek returns Monday..Friday starting at monday.
func workweek(monday datemath.Date) []datemath.Date {
	days := make([]datemath.Date, 0, len(weekdaysWorkweek))
	for i := range weekdaysWorkweek {
		days = append(days, monday.AddDays(i))
	}
	return days
}
