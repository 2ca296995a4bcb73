package parser

import (
	"regexp"
	"strings"
)

type substitution struct {
	re      *regexp.Regexp
	replace string
}

type normalizer struct {
	spaces *regexp.Regexp
	rules  []substitution
}

func newNormalizer() *normalizer {
	rules := make([]substitution, 0, len(normalizeRules))
	for _, r := range normalizeRules {
		rules = append(rules, substitution{re: regexp.MustCompile(r.Pattern), replace: r.Replace})
	}
	return &normalizer{
		spaces: regexp.MustCompile(`\s+`),
		rules:  rules,
	}
}

// Normalize lowercases, collapses whitespace and applies the substitution table.
func (n *normalizer) Normalize(text string) string {
	out := strings.ToLower(text)
	out = strings.TrimSpace(n.spaces.ReplaceAllString(out, " "))
	for _, r := range n.rules {
		out = r.re.ReplaceAllString(out, r.replace)
	}
	return out
}
