package model

import "time"

// TemporalType classifies what a parsed text mostly describes.
type TemporalType string

const (
	TemporalTypeDate      TemporalType = "date"
	TemporalTypeDateTime  TemporalType = "datetime"
	TemporalTypeRecurring TemporalType = "recurring"
	TemporalTypeDuration  TemporalType = "duration"
	TemporalTypeRelative  TemporalType = "relative"
)

// WorkingHours is a daily window expressed as "HH:MM" strings.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TemporalContext is everything the parser needs to know about "now" and the user.
// It is supplied per call and never modified.
type TemporalContext struct {
	CurrentDate  time.Time    `json:"currentDate"`
	UserTimezone string       `json:"userTimezone"` // IANA id, e.g. "Europe/Paris"
	WorkingHours WorkingHours `json:"workingHours"`
	WorkingDays  []int        `json:"workingDays"` // 0=Sunday .. 6=Saturday
}

// ParsedTemporal is the result of parsing one scheduling text.
type ParsedTemporal struct {
	OriginalText         string               `json:"originalText"`
	Confidence           float64              `json:"confidence"`
	TemporalType         TemporalType         `json:"temporalType"`
	Extracted            Extracted            `json:"extracted"`
	CounterfactualChecks CounterfactualChecks `json:"counterfactualChecks"`
}

// Extracted holds the candidate values found in the text.
type Extracted struct {
	Dates       []string    `json:"dates"` // ISO dates, sorted, unique
	Times       []string    `json:"times"` // HH:MM, sorted, unique
	Durations   []int       `json:"durations"`
	Recurring   *Recurrence `json:"recurring,omitempty"`
	Constraints Constraints `json:"constraints"`
}

// Recurrence is a repeating-weekday intent such as "tous les lundis".
type Recurrence struct {
	Pattern   string   `json:"pattern,omitempty"`
	Frequency string   `json:"frequency,omitempty"`
	Weekdays  []string `json:"weekdays,omitempty"`
}

// Constraints are advisory filters inferred from vocabulary.
type Constraints struct {
	BeforeTime   string `json:"beforeTime,omitempty"`
	AfterTime    string `json:"afterTime,omitempty"`
	WorkingHours bool   `json:"workingHours,omitempty"`
	WeekendsOnly bool   `json:"weekendsOnly,omitempty"`
	WeekdaysOnly bool   `json:"weekdaysOnly,omitempty"`
}

// CounterfactualChecks reports contradictions between the text and the extracted values.
type CounterfactualChecks struct {
	Passed      bool     `json:"passed"`
	Conflicts   []string `json:"conflicts"`
	Suggestions []string `json:"suggestions"`
}
