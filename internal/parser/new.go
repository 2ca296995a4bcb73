package parser

import (
	"context"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/pkg/log"
)

// Parser turns scheduling text into a ParsedTemporal.
type Parser interface {
	Parse(ctx context.Context, text string, tc model.TemporalContext) model.ParsedTemporal
}

// TemporalParser runs a fixed, ordered list of extractors and merges their output.
// It holds no per-call state and is safe for concurrent use.
type TemporalParser struct {
	l          log.Logger
	normalizer *normalizer
	extractors []Extractor
}

var _ Parser = (*TemporalParser)(nil)

// New creates a TemporalParser with the built-in extractors.
// Additional extractors run after the built-in ones.
func New(l log.Logger, extra ...Extractor) *TemporalParser {
	extractors := []Extractor{
		newDateTimeExtractor(),
		newRecurrenceExtractor(),
		newConstraintExtractor(),
		newRelativeExtractor(),
		newDurationExtractor(),
	}
	extractors = append(extractors, extra...)

	return &TemporalParser{
		l:          l,
		normalizer: newNormalizer(),
		extractors: extractors,
	}
}
