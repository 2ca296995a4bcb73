package parser

import (
	"context"
	"time"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/pkg/datemath"
)

// Reference is the resolved view of a TemporalContext that extractors work against.
type Reference struct {
	Today    datemath.Date
	Location *time.Location
	Context  model.TemporalContext
}

// Partial is what a single extractor found. Zero values mean "nothing found".
type Partial struct {
	Dates       []datemath.Date
	Times       []datemath.Clock
	Durations   []int
	Recurring   *model.Recurrence
	Constraints model.Constraints
}

// Extractor finds one kind of temporal information in normalized text.
// Implementations must not depend on each other's output.
type Extractor interface {
	Name() string
	Extract(ctx context.Context, text string, ref Reference) (Partial, error)
}
