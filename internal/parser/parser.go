package parser

import (
	"context"
	"fmt"
	"time"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/pkg/datemath"
)

// Parse runs the whole pipeline on text. It never fails: extractor errors are
// logged and the extractor's contribution is dropped.
func (p *TemporalParser) Parse(ctx context.Context, text string, tc model.TemporalContext) model.ParsedTemporal {
	ref := p.reference(ctx, tc)
	normalized := p.normalizer.Normalize(text)

	partials := make([]Partial, 0, len(p.extractors))
	for _, e := range p.extractors {
		part, err := runExtractor(ctx, e, normalized, ref)
		if err != nil {
			p.l.Warnf(ctx, "%s: %s extractor failed: %v", LogPrefixExtract, e.Name(), err)
			continue
		}
		partials = append(partials, part)
	}

	m := mergePartials(partials, ref.Today)
	checks := verify(normalized, m)

	out := model.ParsedTemporal{
		OriginalText: text,
		Confidence:   confidence(m, checks),
		TemporalType: temporalTypeOf(m),
		Extracted: model.Extracted{
			Dates:       dateStrings(m.dates),
			Times:       clockStrings(m.times),
			Durations:   append([]int{}, m.durations...),
			Recurring:   m.recurring,
			Constraints: m.constraints,
		},
		CounterfactualChecks: checks,
	}

	p.l.Debugf(ctx, "%s: type=%s dates=%d times=%d conflicts=%d confidence=%.2f",
		LogPrefixParse, out.TemporalType, len(out.Extracted.Dates), len(out.Extracted.Times),
		len(checks.Conflicts), out.Confidence)

	return out
}

// Normalize exposes the normalizer used by Parse.
func (p *TemporalParser) Normalize(text string) string {
	return p.normalizer.Normalize(text)
}

// reference resolves the context's zone and today. An unknown zone falls back to UTC.
func (p *TemporalParser) reference(ctx context.Context, tc model.TemporalContext) Reference {
	loc := time.UTC
	if tc.UserTimezone != "" {
		l, err := time.LoadLocation(tc.UserTimezone)
		if err != nil {
			p.l.Warnf(ctx, "%s: unknown timezone %q, using UTC: %v", LogPrefixParse, tc.UserTimezone, err)
		} else {
			loc = l
		}
	}
	return Reference{
		Today:    datemath.Today(tc.CurrentDate, loc),
		Location: loc,
		Context:  tc,
	}
}

// runExtractor turns an extractor panic into an error.
func runExtractor(ctx context.Context, e Extractor, text string, ref Reference) (p Partial, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = Partial{}, fmt.Errorf("panic: %v", r)
		}
	}()
	return e.Extract(ctx, text, ref)
}

func dateStrings(dates []datemath.Date) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.String())
	}
	return out
}

func clockStrings(times []datemath.Clock) []string {
	out := make([]string, 0, len(times))
	for _, t := range times {
		out = append(out, t.String())
	}
	return out
}
