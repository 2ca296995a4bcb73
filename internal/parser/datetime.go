package parser

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"temporal-intent-engine/pkg/datemath"
)

// durationClockPattern is an HH:MM that states a length ("pendant 1:30"), not a time of day.
var durationClockPattern = regexp.MustCompile(`\b(?:pendant|durant|for|durée de)\s+\d{1,2}:\d{2}\b`)

// dateTimeExtractor finds explicit dates and clock times.
type dateTimeExtractor struct {
	dates *recognizer
	times *recognizer
}

func newDateTimeExtractor() *dateTimeExtractor {
	return &dateTimeExtractor{
		dates: newDateRecognizer(),
		times: newTimeRecognizer(),
	}
}

func (e *dateTimeExtractor) Name() string { return "datetime" }

// Extract drops dates before today and 00:00 times. A recognizer failure
// yields an empty partial and an error for the caller to log.
func (e *dateTimeExtractor) Extract(_ context.Context, text string, ref Reference) (Partial, error) {
	base := time.Date(ref.Today.Year(), ref.Today.Month(), ref.Today.Day(), 0, 0, 0, 0, time.UTC)

	dateHits, err := e.dates.scan(text, base)
	if err != nil {
		return Partial{}, fmt.Errorf("date recognizer: %w", err)
	}
	timeHits, err := e.times.scan(maskDurations(text), base)
	if err != nil {
		return Partial{}, fmt.Errorf("time recognizer: %w", err)
	}

	var p Partial
	for _, t := range dateHits {
		d := datemath.FromTime(t)
		if d.Before(ref.Today) {
			continue
		}
		p.Dates = append(p.Dates, d)
	}

	for _, t := range timeHits {
		offset := t.Sub(base)
		c, cerr := datemath.NewClock(int(offset/time.Hour), int(offset%time.Hour/time.Minute))
		if cerr != nil || c.IsMidnight() {
			continue
		}
		p.Times = append(p.Times, c)
	}

	return p, nil
}

// maskDurations blanks duration phrases so the time recognizer skips them.
func maskDurations(text string) string {
	return durationClockPattern.ReplaceAllStringFunc(text, func(s string) string {
		return strings.Repeat(" ", len(s))
	})
}
