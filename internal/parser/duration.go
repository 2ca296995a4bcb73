package parser

import (
	"context"
	"regexp"
	"strconv"
)

type compiledDuration struct {
	re         *regexp.Regexp
	multiplier int
}

type compiledFixedDuration struct {
	re      *regexp.Regexp
	minutes int
}

// durationExtractor finds meeting lengths ("30 minutes", "2 heures", "pendant 1:30").
type durationExtractor struct {
	amounts []compiledDuration
	fixed   []compiledFixedDuration
}

func newDurationExtractor() *durationExtractor {
	e := &durationExtractor{}
	for _, r := range durationRules {
		e.amounts = append(e.amounts, compiledDuration{re: regexp.MustCompile(r.Pattern), multiplier: r.Multiplier})
	}
	for _, r := range fixedDurations {
		e.fixed = append(e.fixed, compiledFixedDuration{re: regexp.MustCompile(r.Pattern), minutes: r.Minutes})
	}
	return e
}

func (e *durationExtractor) Name() string { return "duration" }

func (e *durationExtractor) Extract(_ context.Context, text string, _ Reference) (Partial, error) {
	var minutes []int
	for _, r := range e.amounts {
		for _, m := range r.re.FindAllStringSubmatch(text, -1) {
			n, _ := strconv.Atoi(m[1])
			if r.multiplier == 0 {
				// H:MM form
				mm, _ := strconv.Atoi(m[2])
				n = n*60 + mm
			} else {
				n *= r.multiplier
			}
			if n > 0 {
				minutes = append(minutes, n)
			}
		}
	}
	for _, r := range e.fixed {
		if r.re.MatchString(text) {
			minutes = append(minutes, r.minutes)
		}
	}
	return Partial{Durations: minutes}, nil
}
