package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/internal/parser"
	"temporal-intent-engine/internal/scheduling"
	"temporal-intent-engine/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockParser returns a fixed result and counts calls.
type mockParser struct {
	mu     sync.Mutex
	calls  int
	lastTC model.TemporalContext
	out    model.ParsedTemporal
}

func (m *mockParser) Parse(ctx context.Context, text string, tc model.TemporalContext) model.ParsedTemporal {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastTC = tc
	out := m.out
	out.OriginalText = text
	return out
}

type detectCall struct {
	dates       []string
	slots       map[string][]model.TimeSlot
	granularity int
}

type mockDetector struct {
	calls []detectCall
	out   []model.TimeSlotConflict
}

func (m *mockDetector) Detect(ctx context.Context, dates []string, slots map[string][]model.TimeSlot, granularity int) []model.TimeSlotConflict {
	m.calls = append(m.calls, detectCall{dates: dates, slots: slots, granularity: granularity})
	if m.out == nil {
		return []model.TimeSlotConflict{}
	}
	return m.out
}

// Monday 2025-01-13.
var refInstant = time.Date(2025, time.January, 13, 9, 0, 0, 0, time.UTC)

func newTestUseCase(p *mockParser, d *mockDetector, cfg Config) *implUseCase {
	var uc *implUseCase
	if d == nil {
		uc = New(&mockLogger{}, p, nil, cfg)
	} else {
		uc = New(&mockLogger{}, p, d, cfg)
	}
	uc.now = func() time.Time { return refInstant }
	return uc
}

func TestNew_Defaults(t *testing.T) {
	uc := New(&mockLogger{}, &mockParser{}, nil, Config{})

	assert.Equal(t, DefaultTimezone, uc.cfg.Timezone)
	assert.Equal(t, model.WorkingHours{Start: DefaultWorkStart, End: DefaultWorkEnd}, uc.cfg.WorkingHours)
	assert.Equal(t, DefaultWorkingDays, uc.cfg.WorkingDays)
	assert.Equal(t, 30, uc.cfg.Granularity)
	assert.Equal(t, DefaultMaxTextLength, uc.cfg.MaxTextLength)
	assert.Nil(t, uc.cache)
}

func TestParse_Validation(t *testing.T) {
	uc := newTestUseCase(&mockParser{}, nil, Config{MaxTextLength: 10})

	tests := []struct {
		name    string
		input   scheduling.ParseInput
		wantErr error
	}{
		{"empty text", scheduling.ParseInput{Text: "   "}, scheduling.ErrEmptyText},
		{"too long", scheduling.ParseInput{Text: "mardi prochain"}, scheduling.ErrTextTooLong},
		{"bad timezone", scheduling.ParseInput{Text: "demain", Timezone: "Mars/Olympus"}, scheduling.ErrInvalidTimezone},
		{"bad working hours", scheduling.ParseInput{Text: "demain", WorkingHours: &model.WorkingHours{Start: "9h", End: "18:00"}}, scheduling.ErrInvalidWorkingHours},
		{"inverted working hours", scheduling.ParseInput{Text: "demain", WorkingHours: &model.WorkingHours{Start: "18:00", End: "09:00"}}, scheduling.ErrInvalidWorkingHours},
		{"bad working day", scheduling.ParseInput{Text: "demain", WorkingDays: []int{1, 7}}, scheduling.ErrInvalidWorkingDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Parse(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParse_FillsContext(t *testing.T) {
	p := &mockParser{}
	uc := newTestUseCase(p, nil, Config{
		Timezone:     "Europe/Paris",
		WorkingHours: model.WorkingHours{Start: "08:00", End: "17:00"},
		WorkingDays:  []int{1, 2, 3, 4},
	})

	out, err := uc.Parse(context.Background(), scheduling.ParseInput{Text: "demain"})
	require.NoError(t, err)
	assert.Equal(t, "demain", out.Parsed.OriginalText)

	assert.Equal(t, refInstant, p.lastTC.CurrentDate)
	assert.Equal(t, "Europe/Paris", p.lastTC.UserTimezone)
	assert.Equal(t, model.WorkingHours{Start: "08:00", End: "17:00"}, p.lastTC.WorkingHours)
	assert.Equal(t, []int{1, 2, 3, 4}, p.lastTC.WorkingDays)

	override := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	_, err = uc.Parse(context.Background(), scheduling.ParseInput{
		Text:         "demain",
		CurrentDate:  override,
		Timezone:     "UTC",
		WorkingHours: &model.WorkingHours{Start: "10:00", End: "12:00"},
		WorkingDays:  []int{6},
	})
	require.NoError(t, err)
	assert.Equal(t, override, p.lastTC.CurrentDate)
	assert.Equal(t, "UTC", p.lastTC.UserTimezone)
	assert.Equal(t, "10:00", p.lastTC.WorkingHours.Start)
	assert.Equal(t, []int{6}, p.lastTC.WorkingDays)
}

func TestParse_Cache(t *testing.T) {
	p := &mockParser{out: model.ParsedTemporal{
		Confidence: 0.7,
		Extracted:  model.Extracted{Dates: []string{"2025-01-14"}, Times: []string{}, Durations: []int{}},

		CounterfactualChecks: model.CounterfactualChecks{
			Passed:      true,
			Conflicts:   []string{},
			Suggestions: []string{},
		},
	}}
	uc := newTestUseCase(p, nil, Config{CacheSize: 8, CacheTTL: time.Minute})
	ctx := context.Background()

	first, err := uc.Parse(ctx, scheduling.ParseInput{Text: "demain"})
	require.NoError(t, err)
	second, err := uc.Parse(ctx, scheduling.ParseInput{Text: "demain"})
	require.NoError(t, err)
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, first.Parsed, second.Parsed)

	// Callers cannot corrupt the cached value.
	second.Parsed.Extracted.Dates[0] = "1999-01-01"
	third, err := uc.Parse(ctx, scheduling.ParseInput{Text: "demain"})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-14", third.Parsed.Extracted.Dates[0])

	// A different reference day is a different entry.
	_, err = uc.Parse(ctx, scheduling.ParseInput{Text: "demain", CurrentDate: refInstant.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Equal(t, 2, p.calls)
}

func TestDetectConflicts(t *testing.T) {
	slots := map[string][]model.TimeSlot{"2025-01-15": {{Hour: 10, Enabled: true}}}

	t.Run("no calendar", func(t *testing.T) {
		uc := newTestUseCase(&mockParser{}, nil, Config{})
		_, err := uc.DetectConflicts(context.Background(), scheduling.ConflictsInput{Dates: []string{"2025-01-15"}})
		assert.ErrorIs(t, err, scheduling.ErrCalendarUnavailable)
	})

	tests := []struct {
		name    string
		input   scheduling.ConflictsInput
		wantErr error
	}{
		{"no dates", scheduling.ConflictsInput{}, scheduling.ErrEmptyDates},
		{"bad date", scheduling.ConflictsInput{Dates: []string{"15/01/2025"}}, scheduling.ErrInvalidDate},
		{"negative granularity", scheduling.ConflictsInput{Dates: []string{"2025-01-15"}, Granularity: -5}, scheduling.ErrInvalidGranularity},
		{"granularity over a day", scheduling.ConflictsInput{Dates: []string{"2025-01-15"}, Granularity: 1441}, scheduling.ErrInvalidGranularity},
		{"bad hour", scheduling.ConflictsInput{
			Dates:           []string{"2025-01-15"},
			TimeSlotsByDate: map[string][]model.TimeSlot{"2025-01-15": {{Hour: 24, Enabled: true}}},
		}, scheduling.ErrInvalidTimeSlot},
		{"negative duration", scheduling.ConflictsInput{
			Dates:           []string{"2025-01-15"},
			TimeSlotsByDate: map[string][]model.TimeSlot{"2025-01-15": {{Hour: 9, Enabled: true, Duration: -1}}},
		}, scheduling.ErrInvalidTimeSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &mockDetector{}
			uc := newTestUseCase(&mockParser{}, d, Config{})
			_, err := uc.DetectConflicts(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, d.calls)
		})
	}

	t.Run("default granularity", func(t *testing.T) {
		d := &mockDetector{out: []model.TimeSlotConflict{{Date: "2025-01-15", Status: model.SlotStatusBusy}}}
		uc := newTestUseCase(&mockParser{}, d, Config{Granularity: 15})

		out, err := uc.DetectConflicts(context.Background(), scheduling.ConflictsInput{
			Dates:           []string{"2025-01-15"},
			TimeSlotsByDate: slots,
		})
		require.NoError(t, err)
		require.Len(t, d.calls, 1)
		assert.Equal(t, 15, d.calls[0].granularity)
		assert.Len(t, out.Conflicts, 1)
	})
}

func TestPlan(t *testing.T) {
	today := datemath.NewDate(2025, time.January, 13)
	wh := model.WorkingHours{Start: "09:00", End: "18:00"}
	tc := model.TemporalContext{WorkingHours: wh, WorkingDays: []int{1, 2, 3, 4, 5}}

	t.Run("extracted times become slots", func(t *testing.T) {
		parsed := model.ParsedTemporal{Extracted: model.Extracted{
			Dates:     []string{"2025-01-14", "2025-01-16"},
			Times:     []string{"10:00", "14:30"},
			Durations: []int{45},
		}}
		dates, slots := plan(parsed, tc, today, 30)
		assert.Equal(t, []string{"2025-01-14", "2025-01-16"}, dates)
		assert.Equal(t, []model.TimeSlot{
			{Hour: 10, Minute: 0, Enabled: true, Duration: 45},
			{Hour: 14, Minute: 30, Enabled: true, Duration: 45},
		}, slots["2025-01-14"])
	})

	t.Run("morning steps up to noon", func(t *testing.T) {
		parsed := model.ParsedTemporal{Extracted: model.Extracted{
			Dates:       []string{"2025-01-14"},
			Constraints: model.Constraints{BeforeTime: "12:00"},
		}}
		_, slots := plan(parsed, tc, today, 60)
		assert.Equal(t, []model.TimeSlot{
			{Hour: 9, Enabled: true},
			{Hour: 10, Enabled: true},
			{Hour: 11, Enabled: true},
		}, slots["2025-01-14"])
	})

	t.Run("evening runs to midnight", func(t *testing.T) {
		parsed := model.ParsedTemporal{Extracted: model.Extracted{
			Dates:       []string{"2025-01-14"},
			Constraints: model.Constraints{AfterTime: "18:00"},
		}}
		_, slots := plan(parsed, tc, today, 120)
		require.Len(t, slots["2025-01-14"], 3)
		assert.Equal(t, 22, slots["2025-01-14"][2].Hour)
	})

	t.Run("slot length limits the last start", func(t *testing.T) {
		parsed := model.ParsedTemporal{Extracted: model.Extracted{
			Dates:       []string{"2025-01-14"},
			Durations:   []int{90},
			Constraints: model.Constraints{AfterTime: "12:00", BeforeTime: "15:00"},
		}}
		_, slots := plan(parsed, tc, today, 30)
		require.Len(t, slots["2025-01-14"], 4)
		last := slots["2025-01-14"][3]
		assert.Equal(t, 13, last.Hour)
		assert.Equal(t, 30, last.Minute)
		assert.Equal(t, 90, last.Duration)
	})

	t.Run("inverted bounds give nothing", func(t *testing.T) {
		parsed := model.ParsedTemporal{Extracted: model.Extracted{
			Dates:       []string{"2025-01-14"},
			Constraints: model.Constraints{AfterTime: "15:00", BeforeTime: "10:00"},
		}}
		dates, slots := plan(parsed, tc, today, 30)
		assert.Empty(t, dates)
		assert.Empty(t, slots)
	})

	t.Run("recurring without dates expands over one week", func(t *testing.T) {
		parsed := model.ParsedTemporal{Extracted: model.Extracted{
			Times:     []string{"10:00"},
			Recurring: &model.Recurrence{Pattern: "weekly", Weekdays: []string{"monday", "thursday"}},
		}}
		dates, _ := plan(parsed, tc, today, 30)
		assert.Equal(t, []string{"2025-01-13", "2025-01-16"}, dates)
	})

	t.Run("working hours constraint drops non working days", func(t *testing.T) {
		parsed := model.ParsedTemporal{Extracted: model.Extracted{
			Dates:       []string{"2025-01-17", "2025-01-18"},
			Times:       []string{"10:00"},
			Constraints: model.Constraints{WorkingHours: true},
		}}
		dates, _ := plan(parsed, tc, today, 30)
		assert.Equal(t, []string{"2025-01-17"}, dates)
	})
}

func TestAnalyze(t *testing.T) {
	parsed := model.ParsedTemporal{Extracted: model.Extracted{
		Dates: []string{"2025-01-14"},
		Times: []string{"10:00"},
	}}

	t.Run("checks planned slots", func(t *testing.T) {
		d := &mockDetector{out: []model.TimeSlotConflict{{Date: "2025-01-14", Status: model.SlotStatusPartial}}}
		uc := newTestUseCase(&mockParser{out: parsed}, d, Config{})

		out, err := uc.Analyze(context.Background(), scheduling.AnalyzeInput{
			ParseInput:  scheduling.ParseInput{Text: "demain à 10h"},
			Granularity: 45,
		})
		require.NoError(t, err)
		assert.True(t, out.CalendarChecked)
		assert.Equal(t, []string{"2025-01-14"}, out.Dates)
		require.Len(t, d.calls, 1)
		assert.Equal(t, 45, d.calls[0].granularity)
		assert.Equal(t, []model.TimeSlot{{Hour: 10, Enabled: true}}, d.calls[0].slots["2025-01-14"])
		assert.Len(t, out.Conflicts, 1)
	})

	t.Run("without calendar", func(t *testing.T) {
		uc := newTestUseCase(&mockParser{out: parsed}, nil, Config{})

		out, err := uc.Analyze(context.Background(), scheduling.AnalyzeInput{
			ParseInput: scheduling.ParseInput{Text: "demain à 10h"},
		})
		require.NoError(t, err)
		assert.False(t, out.CalendarChecked)
		assert.NotNil(t, out.Conflicts)
		assert.Empty(t, out.Conflicts)
		assert.Contains(t, out.TimeSlotsByDate, "2025-01-14")
	})

	t.Run("nothing to check", func(t *testing.T) {
		d := &mockDetector{}
		uc := newTestUseCase(&mockParser{}, d, Config{})

		out, err := uc.Analyze(context.Background(), scheduling.AnalyzeInput{
			ParseInput: scheduling.ParseInput{Text: "bonjour"},
		})
		require.NoError(t, err)
		assert.Empty(t, d.calls)
		assert.Empty(t, out.Conflicts)
	})

	t.Run("timezone other than the calendar's", func(t *testing.T) {
		d := &mockDetector{}
		uc := newTestUseCase(&mockParser{out: parsed}, d, Config{Timezone: "Europe/Paris"})

		_, err := uc.Analyze(context.Background(), scheduling.AnalyzeInput{
			ParseInput: scheduling.ParseInput{Text: "demain à 10h", Timezone: "America/New_York"},
		})
		assert.ErrorIs(t, err, scheduling.ErrTimezoneMismatch)
		assert.Empty(t, d.calls)

		out, err := uc.Analyze(context.Background(), scheduling.AnalyzeInput{
			ParseInput: scheduling.ParseInput{Text: "demain à 10h", Timezone: "Europe/Paris"},
		})
		require.NoError(t, err)
		assert.True(t, out.CalendarChecked)
		assert.Len(t, d.calls, 1)
	})

	t.Run("any timezone without calendar", func(t *testing.T) {
		uc := newTestUseCase(&mockParser{out: parsed}, nil, Config{Timezone: "Europe/Paris"})

		_, err := uc.Analyze(context.Background(), scheduling.AnalyzeInput{
			ParseInput: scheduling.ParseInput{Text: "demain à 10h", Timezone: "America/New_York"},
		})
		assert.NoError(t, err)
	})

	t.Run("invalid granularity", func(t *testing.T) {
		uc := newTestUseCase(&mockParser{}, &mockDetector{}, Config{})
		_, err := uc.Analyze(context.Background(), scheduling.AnalyzeInput{
			ParseInput:  scheduling.ParseInput{Text: "demain"},
			Granularity: -1,
		})
		assert.ErrorIs(t, err, scheduling.ErrInvalidGranularity)
	})
}

func TestAnalyze_WithParser(t *testing.T) {
	d := &mockDetector{}
	uc := New(&mockLogger{}, parser.New(&mockLogger{}), d, Config{Timezone: "Europe/Paris"})
	uc.now = func() time.Time { return refInstant }

	out, err := uc.Analyze(context.Background(), scheduling.AnalyzeInput{
		ParseInput: scheduling.ParseInput{Text: "demain à 14h"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-14"}, out.Parsed.Extracted.Dates)
	assert.Equal(t, []string{"14:00"}, out.Parsed.Extracted.Times)
	require.Len(t, d.calls, 1)
	assert.Equal(t, []model.TimeSlot{{Hour: 14, Enabled: true}}, d.calls[0].slots["2025-01-14"])
}
