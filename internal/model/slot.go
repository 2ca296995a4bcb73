package model

import "time"

// SlotStatus is the outcome of checking a slot against busy intervals.
type SlotStatus string

const (
	// SlotStatusBusy means a single busy interval covers the whole slot.
	SlotStatusBusy SlotStatus = "busy"
	// SlotStatusPartial means the slot overlaps busy time but is not fully covered by one interval.
	SlotStatusPartial SlotStatus = "partial"
)

// TimeSlot is a candidate start time on some date.
type TimeSlot struct {
	Hour     int  `json:"hour"`
	Minute   int  `json:"minute"`
	Enabled  bool `json:"enabled"`
	Duration int  `json:"duration,omitempty"` // minutes, 0 = use granularity
}

// BusyInterval is one busy period returned by a calendar.
type BusyInterval struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	EventTitle string    `json:"eventTitle,omitempty"`
}

// SlotSuggestion is a nearby free slot of the same length.
type SlotSuggestion struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TimeSlotConflict describes one slot that overlaps busy time.
type TimeSlotConflict struct {
	Date        string           `json:"date"`
	TimeSlot    TimeSlot         `json:"timeSlot"`
	Status      SlotStatus       `json:"status"`
	Conflicts   []BusyInterval   `json:"conflicts"`
	Suggestions []SlotSuggestion `json:"suggestions,omitempty"`
}
