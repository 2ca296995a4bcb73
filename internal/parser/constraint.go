package parser

import (
	"context"
	"regexp"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/pkg/datemath"
)

var (
	beforeTimePattern = regexp.MustCompile(`\b(?:avant|before)\s+(\d{1,2}:\d{2})\b`)
	afterTimePattern  = regexp.MustCompile(`\b(?:after|après)\s+(\d{1,2}:\d{2})\b`)
)

type compiledConstraint struct {
	match   *regexp.Regexp
	exclude *regexp.Regexp
	effect  constraintEffect
}

// constraintExtractor infers time-of-day and day-class constraints from vocabulary.
type constraintExtractor struct {
	rules []compiledConstraint
}

func newConstraintExtractor() *constraintExtractor {
	compiled := make([]compiledConstraint, 0, len(constraintRules))
	for _, r := range constraintRules {
		c := compiledConstraint{match: wordRegexp(r.Pattern), effect: r.Effect}
		if r.Exclude != "" {
			c.exclude = wordRegexp(r.Exclude)
		}
		compiled = append(compiled, c)
	}
	return &constraintExtractor{rules: compiled}
}

func (e *constraintExtractor) Name() string { return "constraint" }

// Extract applies every matching vocabulary entry, then explicit
// "avant HH:MM" / "après HH:MM" bounds, which take precedence.
func (e *constraintExtractor) Extract(_ context.Context, text string, _ Reference) (Partial, error) {
	var c model.Constraints
	for _, r := range e.rules {
		if !r.match.MatchString(text) {
			continue
		}
		if r.exclude != nil && r.exclude.MatchString(text) {
			continue
		}
		if r.effect.BeforeTime != "" {
			c.BeforeTime = r.effect.BeforeTime
		}
		if r.effect.AfterTime != "" {
			c.AfterTime = r.effect.AfterTime
		}
		c.WorkingHours = c.WorkingHours || r.effect.WorkingHours
		c.WeekendsOnly = c.WeekendsOnly || r.effect.WeekendsOnly
		c.WeekdaysOnly = c.WeekdaysOnly || r.effect.WeekdaysOnly
	}

	if v, ok := explicitBound(beforeTimePattern, text); ok {
		c.BeforeTime = v
	}
	if v, ok := explicitBound(afterTimePattern, text); ok {
		c.AfterTime = v
	}

	return Partial{Constraints: c}, nil
}

// explicitBound returns the first HH:MM following the pattern's keyword, zero padded.
func explicitBound(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	c, err := datemath.ParseClock(m[1])
	if err != nil {
		return "", false
	}
	return c.String(), true
}
