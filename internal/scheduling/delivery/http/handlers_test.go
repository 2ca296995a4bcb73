package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"temporal-intent-engine/internal/middleware"
	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/internal/scheduling"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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

type mockUseCase struct {
	parseIn     scheduling.ParseInput
	conflictsIn scheduling.ConflictsInput
	analyzeIn   scheduling.AnalyzeInput

	parseOut     scheduling.ParseOutput
	conflictsOut scheduling.ConflictsOutput
	analyzeOut   scheduling.AnalyzeOutput
	err          error
}

func (m *mockUseCase) Parse(ctx context.Context, in scheduling.ParseInput) (scheduling.ParseOutput, error) {
	m.parseIn = in
	return m.parseOut, m.err
}

func (m *mockUseCase) DetectConflicts(ctx context.Context, in scheduling.ConflictsInput) (scheduling.ConflictsOutput, error) {
	m.conflictsIn = in
	return m.conflictsOut, m.err
}

func (m *mockUseCase) Analyze(ctx context.Context, in scheduling.AnalyzeInput) (scheduling.AnalyzeOutput, error) {
	m.analyzeIn = in
	return m.analyzeOut, m.err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(uc scheduling.UseCase) *gin.Engine {
	r := gin.New()
	h := New(&mockLogger{}, uc)
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(&mockLogger{}, middleware.Config{}))
	return r
}

func post(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestParse(t *testing.T) {
	uc := &mockUseCase{parseOut: scheduling.ParseOutput{Parsed: model.ParsedTemporal{
		OriginalText: "lundi à 14h",
		Confidence:   0.8,
		TemporalType: model.TemporalTypeDateTime,
		Extracted:    model.Extracted{Dates: []string{"2025-01-20"}, Times: []string{"14:00"}, Durations: []int{}},

		CounterfactualChecks: model.CounterfactualChecks{
			Passed:      true,
			Conflicts:   []string{},
			Suggestions: []string{},
		},
	}}}
	r := newTestRouter(uc)

	w, env := post(t, r, "/api/v1/temporal/parse", `{
		"text": "lundi à 14h",
		"current_date": "2025-01-13",
		"timezone": "UTC",
		"working_hours": {"start": "08:00", "end": "16:00"},
		"working_days": [1, 2]
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.ErrorCode)

	assert.Equal(t, "lundi à 14h", uc.parseIn.Text)
	assert.Equal(t, time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC), uc.parseIn.CurrentDate)
	assert.Equal(t, &model.WorkingHours{Start: "08:00", End: "16:00"}, uc.parseIn.WorkingHours)
	assert.Equal(t, []int{1, 2}, uc.parseIn.WorkingDays)

	var got model.ParsedTemporal
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, []string{"2025-01-20"}, got.Extracted.Dates)
	assert.Equal(t, model.TemporalTypeDateTime, got.TemporalType)
}

func TestParse_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing text", `{}`},
		{"malformed json", `{"text":`},
		{"bad current date", `{"text": "demain", "current_date": "13/01/2025"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w, _ := post(t, newTestRouter(uc), "/api/v1/temporal/parse", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, uc.parseIn.Text)
		})
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{scheduling.ErrEmptyText, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", scheduling.ErrInvalidTimezone, "Mars/Olympus"), http.StatusBadRequest},
		{scheduling.ErrInvalidGranularity, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", scheduling.ErrTimezoneMismatch, "America/New_York"), http.StatusBadRequest},
		{scheduling.ErrTextTooLong, http.StatusRequestEntityTooLarge},
		{scheduling.ErrCalendarUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			w, env := post(t, newTestRouter(uc), "/api/v1/temporal/parse", `{"text": "demain"}`)
			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, tt.want, env.ErrorCode)
		})
	}
}

func TestConflicts(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w, env := post(t, r, "/api/v1/temporal/conflicts", `{
		"dates": ["2025-01-15"],
		"time_slots_by_date": {"2025-01-15": [{"hour": 10, "minute": 30}, {"hour": 11, "enabled": false, "duration": 60}]},
		"granularity": 15
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{"2025-01-15"}, uc.conflictsIn.Dates)
	assert.Equal(t, 15, uc.conflictsIn.Granularity)
	assert.Equal(t, []model.TimeSlot{
		{Hour: 10, Minute: 30, Enabled: true},
		{Hour: 11, Enabled: false, Duration: 60},
	}, uc.conflictsIn.TimeSlotsByDate["2025-01-15"])

	// A nil result is still an empty list on the wire.
	assert.JSONEq(t, `{"conflicts": []}`, string(env.Data))
}

func TestConflicts_MissingDates(t *testing.T) {
	w, _ := post(t, newTestRouter(&mockUseCase{}), "/api/v1/temporal/conflicts", `{"dates": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConflicts_SlotsForUnlistedDate(t *testing.T) {
	uc := &mockUseCase{}
	w, env := post(t, newTestRouter(uc), "/api/v1/temporal/conflicts", `{
		"dates": ["2025-01-15"],
		"time_slots_by_date": {"2025-01-16": [{"hour": 10}]}
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "2025-01-16")
	assert.Empty(t, uc.conflictsIn.Dates)
}

func TestAnalyze(t *testing.T) {
	uc := &mockUseCase{analyzeOut: scheduling.AnalyzeOutput{
		Dates:           []string{"2025-01-14"},
		TimeSlotsByDate: map[string][]model.TimeSlot{"2025-01-14": {{Hour: 14, Enabled: true}}},
		CalendarChecked: true,
	}}
	r := newTestRouter(uc)

	w, env := post(t, r, "/api/v1/temporal/analyze", `{"text": "demain à 14h", "timezone": "Europe/Paris", "granularity": 45}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "demain à 14h", uc.analyzeIn.Text)
	assert.Equal(t, "Europe/Paris", uc.analyzeIn.Timezone)
	assert.Equal(t, 45, uc.analyzeIn.Granularity)

	var got struct {
		Dates           []string                    `json:"dates"`
		TimeSlotsByDate map[string][]model.TimeSlot `json:"time_slots_by_date"`
		Conflicts       []model.TimeSlotConflict    `json:"conflicts"`
		CalendarChecked bool                        `json:"calendar_checked"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, []string{"2025-01-14"}, got.Dates)
	assert.True(t, got.CalendarChecked)
	assert.NotNil(t, got.Conflicts)
	assert.Equal(t, 14, got.TimeSlotsByDate["2025-01-14"][0].Hour)
}
