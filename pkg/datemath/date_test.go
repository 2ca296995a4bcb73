package datemath_test

import (
	"testing"
	"time"

	"temporal-intent-engine/pkg/datemath"
)

func mustDate(t *testing.T, s string) datemath.Date {
	t.Helper()
	d, err := datemath.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "iso", input: "2025-01-13", want: "2025-01-13"},
		{name: "leap day", input: "2024-02-29", want: "2024-02-29"},
		{name: "non leap day", input: "2025-02-29", wantErr: true},
		{name: "slashes", input: "13/01/2025", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datemath.ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		start string
		n     int
		want  string
	}{
		{"2025-01-13", 1, "2025-01-14"},
		{"2025-01-31", 1, "2025-02-01"},
		{"2025-12-31", 1, "2026-01-01"},
		{"2025-03-01", -1, "2025-02-28"},
		{"2024-03-01", -1, "2024-02-29"},
	}

	for _, tt := range tests {
		got := mustDate(t, tt.start).AddDays(tt.n)
		if got.String() != tt.want {
			t.Errorf("%s %+d: got %s, want %s", tt.start, tt.n, got, tt.want)
		}
	}
}

func TestDate_StartOfISOWeek(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-01-13", "2025-01-13"}, // Monday
		{"2025-01-15", "2025-01-13"},
		{"2025-01-19", "2025-01-13"}, // Sunday
		{"2025-01-01", "2024-12-30"},
	}

	for _, tt := range tests {
		got := mustDate(t, tt.input).StartOfISOWeek()
		if got.String() != tt.want {
			t.Errorf("%s: got %s, want %s", tt.input, got, tt.want)
		}
		if got.Weekday() != time.Monday {
			t.Errorf("%s: start is %s", tt.input, got.Weekday())
		}
	}
}

func TestDate_Compare(t *testing.T) {
	a := mustDate(t, "2025-01-13")
	b := mustDate(t, "2025-02-01")

	if !a.Before(b) || b.Before(a) {
		t.Error("Before mismatch")
	}
	if b.Compare(a) != 1 || a.Compare(b) != -1 {
		t.Error("Compare mismatch")
	}
	if a.Compare(datemath.NewDate(2025, time.January, 13)) != 0 {
		t.Error("NewDate and ParseDate disagree")
	}
	if a.Compare(a) != 0 {
		t.Error("Compare of same date should be 0")
	}
}

func TestDate_IsWeekend(t *testing.T) {
	if mustDate(t, "2025-01-13").IsWeekend() {
		t.Error("Monday reported as weekend")
	}
	if !mustDate(t, "2025-01-18").IsWeekend() {
		t.Error("Saturday not reported as weekend")
	}
	if !mustDate(t, "2025-01-19").IsWeekend() {
		t.Error("Sunday not reported as weekend")
	}
}

func TestDate_DayBounds(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	start, end := mustDate(t, "2025-01-15").DayBounds(loc)
	if got := start.Format(time.RFC3339); got != "2025-01-15T00:00:00+01:00" {
		t.Errorf("start = %s", got)
	}
	if got := end.Format(time.RFC3339); got != "2025-01-15T23:59:59+01:00" {
		t.Errorf("end = %s", got)
	}
}

func TestToday(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 23:30 UTC is already the next day in Paris.
	now := time.Date(2025, time.January, 13, 23, 30, 0, 0, time.UTC)
	if got := datemath.Today(now, loc).String(); got != "2025-01-14" {
		t.Errorf("got %s, want 2025-01-14", got)
	}
	if got := datemath.Today(now, nil).String(); got != "2025-01-13" {
		t.Errorf("nil location: got %s, want 2025-01-13", got)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		minutes int
		wantErr bool
	}{
		{input: "14:00", want: "14:00", minutes: 840},
		{input: "9:30", want: "09:30", minutes: 570},
		{input: "00:00", want: "00:00", minutes: 0},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "14h", wantErr: true},
	}

	for _, tt := range tests {
		got, err := datemath.ParseClock(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.input, err)
			continue
		}
		if got.String() != tt.want || got.Minutes() != tt.minutes {
			t.Errorf("%q: got %s (%d), want %s (%d)", tt.input, got, got.Minutes(), tt.want, tt.minutes)
		}
	}
}

func TestDate_At(t *testing.T) {
	d := mustDate(t, "2025-01-15")
	got := d.At(datemath.MustParseClock("14:30"), time.UTC)
	want := time.Date(2025, time.January, 15, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDate_DaysSince(t *testing.T) {
	a := mustDate(t, "2025-01-13")
	if got := mustDate(t, "2025-01-20").DaysSince(a); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
	if got := mustDate(t, "2024-12-31").DaysSince(a); got != -13 {
		t.Errorf("got %d, want -13", got)
	}
	// spans the March DST change in Europe but dates carry no zone
	if got := mustDate(t, "2025-04-01").DaysSince(mustDate(t, "2025-03-01")); got != 31 {
		t.Errorf("got %d, want 31", got)
	}
}

func TestDate_DaysSinceFarApart(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		// a Gregorian cycle is exactly 146097 days
		{from: "2000-01-15", to: "2400-01-15", want: 146097},
		{from: "2025-01-13", to: "2025-01-13", want: 0},
		{from: "1970-01-01", to: "1970-03-01", want: 59},
		{from: "2024-02-28", to: "2024-03-01", want: 2},
		{from: "2100-02-28", to: "2100-03-01", want: 1},
		{from: "1969-12-31", to: "1970-01-01", want: 1},
		// past the range a time.Duration can represent
		{from: "2025-01-13", to: "9999-03-01", want: 2912490},
	}

	for _, tt := range tests {
		from, to := mustDate(t, tt.from), mustDate(t, tt.to)
		if got := to.DaysSince(from); got != tt.want {
			t.Errorf("%s -> %s: got %d, want %d", tt.from, tt.to, got, tt.want)
		}
		if got := from.DaysSince(to); got != -tt.want {
			t.Errorf("%s -> %s: got %d, want %d", tt.to, tt.from, got, -tt.want)
		}
	}
}
