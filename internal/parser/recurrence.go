package parser

import (
	"context"
	"regexp"
	"strings"

	"temporal-intent-engine/internal/model"
)

type compiledRecurrence struct {
	re   *regexp.Regexp
	rule recurrenceRule
}

// recurrenceExtractor reports the first recurring-weekday phrase found.
type recurrenceExtractor struct {
	rules []compiledRecurrence
}

func newRecurrenceExtractor() *recurrenceExtractor {
	compiled := make([]compiledRecurrence, 0, len(recurrenceRules))
	for _, r := range recurrenceRules {
		compiled = append(compiled, compiledRecurrence{re: phraseRegexp(r.Phrases), rule: r})
	}
	return &recurrenceExtractor{rules: compiled}
}

func (e *recurrenceExtractor) Name() string { return "recurrence" }

func (e *recurrenceExtractor) Extract(_ context.Context, text string, _ Reference) (Partial, error) {
	for _, r := range e.rules {
		if !r.re.MatchString(text) {
			continue
		}
		weekdays := make([]string, 0, len(r.rule.Weekdays))
		for _, wd := range r.rule.Weekdays {
			weekdays = append(weekdays, strings.ToLower(wd.String()))
		}
		return Partial{Recurring: &model.Recurrence{
			Pattern:   r.rule.Pattern,
			Frequency: r.rule.Frequency,
			Weekdays:  weekdays,
		}}, nil
	}
	return Partial{}, nil
}

// phraseRegexp matches any of the phrases as whole words.
func phraseRegexp(phrases []string) *regexp.Regexp {
	quoted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	return wordRegexp(strings.Join(quoted, "|"))
}

// wordRegexp matches the alternation only when it is not glued to other
// letters, so "soir" does not fire inside "bonsoir". Unlike \b it treats
// accented letters as letters.
func wordRegexp(alts string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\p{L}])(?:` + alts + `)(?:$|[^\p{L}])`)
}
