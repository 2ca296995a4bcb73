package http

import (
	"fmt"
	"slices"
	"time"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/internal/scheduling"
	"temporal-intent-engine/pkg/datemath"
)

// --- Request DTOs ---

type workingHoursReq struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end"   binding:"required"`
}

type parseReq struct {
	Text         string           `json:"text"          binding:"required"`
	CurrentDate  string           `json:"current_date"`
	Timezone     string           `json:"timezone"`
	WorkingHours *workingHoursReq `json:"working_hours"`
	WorkingDays  []int            `json:"working_days"`
}

func (r parseReq) validate() error {
	_, err := parseCurrentDate(r.CurrentDate, r.Timezone)
	return err
}

func (r parseReq) toInput() scheduling.ParseInput {
	current, _ := parseCurrentDate(r.CurrentDate, r.Timezone)
	in := scheduling.ParseInput{
		Text:        r.Text,
		CurrentDate: current,
		Timezone:    r.Timezone,
		WorkingDays: r.WorkingDays,
	}
	if r.WorkingHours != nil {
		in.WorkingHours = &model.WorkingHours{Start: r.WorkingHours.Start, End: r.WorkingHours.End}
	}
	return in
}

// parseCurrentDate accepts RFC3339 or a bare date, read as midnight in tz.
// An empty string means "now".
func parseCurrentDate(s, tz string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(datemath.ISODateFormat, s, loc)
	if err != nil {
		return time.Time{}, errInvalidCurrentDate
	}
	return t, nil
}

// ---

type timeSlotReq struct {
	Hour     int   `json:"hour"`
	Minute   int   `json:"minute"`
	Enabled  *bool `json:"enabled"` // defaults to true
	Duration int   `json:"duration"`
}

func (r timeSlotReq) toModel() model.TimeSlot {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	return model.TimeSlot{Hour: r.Hour, Minute: r.Minute, Enabled: enabled, Duration: r.Duration}
}

type conflictsReq struct {
	Dates           []string                 `json:"dates"              binding:"required,min=1"`
	TimeSlotsByDate map[string][]timeSlotReq `json:"time_slots_by_date"`
	Granularity     int                      `json:"granularity"`
}

// validate rejects slots keyed by a date the request does not ask about;
// the detector would skip them silently.
func (r conflictsReq) validate() error {
	for date := range r.TimeSlotsByDate {
		if !slices.Contains(r.Dates, date) {
			return fmt.Errorf("%w: %q", errSlotsWithoutDate, date)
		}
	}
	return nil
}

func (r conflictsReq) toInput() scheduling.ConflictsInput {
	slots := make(map[string][]model.TimeSlot, len(r.TimeSlotsByDate))
	for date, reqs := range r.TimeSlotsByDate {
		out := make([]model.TimeSlot, 0, len(reqs))
		for _, s := range reqs {
			out = append(out, s.toModel())
		}
		slots[date] = out
	}
	return scheduling.ConflictsInput{
		Dates:           r.Dates,
		TimeSlotsByDate: slots,
		Granularity:     r.Granularity,
	}
}

// ---

type analyzeReq struct {
	parseReq
	Granularity int `json:"granularity"`
}

func (r analyzeReq) toInput() scheduling.AnalyzeInput {
	return scheduling.AnalyzeInput{
		ParseInput:  r.parseReq.toInput(),
		Granularity: r.Granularity,
	}
}

// --- Response DTOs ---

type parseResp struct {
	model.ParsedTemporal
}

func (h *handler) newParseResp(o scheduling.ParseOutput) parseResp {
	return parseResp{ParsedTemporal: o.Parsed}
}

type conflictsResp struct {
	Conflicts []model.TimeSlotConflict `json:"conflicts"`
}

func (h *handler) newConflictsResp(o scheduling.ConflictsOutput) conflictsResp {
	return conflictsResp{Conflicts: nonNilConflicts(o.Conflicts)}
}

type analyzeResp struct {
	Parsed          model.ParsedTemporal        `json:"parsed"`
	Dates           []string                    `json:"dates"`
	TimeSlotsByDate map[string][]model.TimeSlot `json:"time_slots_by_date"`
	Conflicts       []model.TimeSlotConflict    `json:"conflicts"`
	CalendarChecked bool                        `json:"calendar_checked"`
}

func (h *handler) newAnalyzeResp(o scheduling.AnalyzeOutput) analyzeResp {
	dates := o.Dates
	if dates == nil {
		dates = []string{}
	}
	slots := o.TimeSlotsByDate
	if slots == nil {
		slots = map[string][]model.TimeSlot{}
	}
	return analyzeResp{
		Parsed:          o.Parsed,
		Dates:           dates,
		TimeSlotsByDate: slots,
		Conflicts:       nonNilConflicts(o.Conflicts),
		CalendarChecked: o.CalendarChecked,
	}
}

func nonNilConflicts(c []model.TimeSlotConflict) []model.TimeSlotConflict {
	if c == nil {
		return []model.TimeSlotConflict{}
	}
	return c
}
