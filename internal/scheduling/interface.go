package scheduling

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse resolves scheduling text into candidate dates, times and constraints.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
	// DetectConflicts checks candidate slots against the configured calendar.
	DetectConflicts(ctx context.Context, input ConflictsInput) (ConflictsOutput, error)
	// Analyze parses text, plans slots from the result and checks them.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}
