package conflict

import (
	"context"
	"fmt"
	"time"

	"temporal-intent-engine/internal/model"
	"temporal-intent-engine/pkg/gcalendar"
)

// FreeBusyClient is the part of gcalendar.Client used by GoogleFreeBusy.
type FreeBusyClient interface {
	FreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) ([]gcalendar.BusyPeriod, error)
}

// EventLister is the part of gcalendar.Client used by GoogleEvents.
type EventLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// GoogleFreeBusy reads opaque busy intervals through the free/busy API.
type GoogleFreeBusy struct {
	client     FreeBusyClient
	calendarID string
	timezone   string
}

// NewGoogleFreeBusy creates a Calendar backed by the Google free/busy API.
func NewGoogleFreeBusy(client FreeBusyClient, calendarID, timezone string) *GoogleFreeBusy {
	return &GoogleFreeBusy{client: client, calendarID: calendarID, timezone: timezone}
}

func (g *GoogleFreeBusy) GetFreeBusy(ctx context.Context, start, end time.Time) ([]model.BusyInterval, error) {
	periods, err := g.client.FreeBusy(ctx, gcalendar.FreeBusyRequest{
		CalendarID: g.calendarID,
		TimeMin:    start,
		TimeMax:    end,
		Timezone:   g.timezone,
	})
	if err != nil {
		return nil, fmt.Errorf("google free/busy: %w", err)
	}

	out := make([]model.BusyInterval, 0, len(periods))
	for _, p := range periods {
		out = append(out, model.BusyInterval{Start: p.Start, End: p.End})
	}
	return out, nil
}

// GoogleEvents derives busy intervals from event listings so that conflicts
// carry the event title. Transparent and all-day events do not block time.
type GoogleEvents struct {
	client     EventLister
	calendarID string
}

// NewGoogleEvents creates a Calendar backed by the Google events API.
func NewGoogleEvents(client EventLister, calendarID string) *GoogleEvents {
	return &GoogleEvents{client: client, calendarID: calendarID}
}

func (g *GoogleEvents) GetFreeBusy(ctx context.Context, start, end time.Time) ([]model.BusyInterval, error) {
	events, err := g.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: g.calendarID,
		TimeMin:    start,
		TimeMax:    end,
	})
	if err != nil {
		return nil, fmt.Errorf("google events: %w", err)
	}

	out := make([]model.BusyInterval, 0, len(events))
	for _, e := range events {
		if e.AllDay || e.Transparent {
			continue
		}
		out = append(out, model.BusyInterval{Start: e.StartTime, End: e.EndTime, EventTitle: e.Summary})
	}
	return out, nil
}

// Static serves a fixed list of busy intervals, e.g. loaded from a file.
type Static struct {
	busy []model.BusyInterval
}

// NewStatic creates a Calendar over busy.
func NewStatic(busy []model.BusyInterval) *Static {
	return &Static{busy: append([]model.BusyInterval(nil), busy...)}
}

func (s *Static) GetFreeBusy(_ context.Context, start, end time.Time) ([]model.BusyInterval, error) {
	return overlapping(s.busy, start, end), nil
}
