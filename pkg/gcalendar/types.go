package gcalendar

import (
	"time"

	"google.golang.org/api/calendar/v3"
)

const (
	// DefaultCalendarID addresses the authenticated user's main calendar.
	DefaultCalendarID = "primary"
	// TokenFile is where scripts/gcal-auth stores the OAuth desktop token.
	TokenFile = "token.json"
	// Scope is the only access this package needs.
	Scope = calendar.CalendarReadonlyScope
)

// FreeBusyRequest is the input for a free/busy query.
type FreeBusyRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Timezone   string // e.g. "Europe/Paris"
}

// BusyPeriod is one busy interval reported by the API.
type BusyPeriod struct {
	Start time.Time
	End   time.Time
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	AllDay      bool
	Transparent bool // marked "free" by its owner
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
