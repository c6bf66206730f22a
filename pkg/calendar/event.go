package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

// ReminderChannel is how a reminder reaches the volunteer
type ReminderChannel string

const (
	ReminderEmail ReminderChannel = "email"
	ReminderSlack ReminderChannel = "slack"
	ReminderPush  ReminderChannel = "push"
	ReminderSMS   ReminderChannel = "sms"
)

// Reminder is one notification scheduled ahead of an event
type Reminder struct {
	Channel       ReminderChannel
	MinutesBefore int
	Message       string
}

// Event is a volunteer commitment on the calendar
type Event struct {
	ID             string
	Title          string
	Description    string
	Start          time.Time
	End            time.Time
	Location       string
	Organization   string
	AllDay         bool
	RecurrenceRule string
	Reminders      []Reminder
	Attendees      []string
	CreatedAt      time.Time
}

// Recurring reports whether the event repeats
func (e Event) Recurring() bool {
	return e.RecurrenceRule != ""
}

// Manager holds volunteer events and renders them for external
// calendars. Events live in memory for the process lifetime; the clock
// is injectable for tests.
type Manager struct {
	events []Event
	now    func() time.Time
}

func NewManager() *Manager {
	return &Manager{now: time.Now}
}

// WithClock replaces the manager's time source
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// CreateRequest carries the fields of a new event
type CreateRequest struct {
	Title          string
	Description    string
	Start          time.Time
	End            time.Time
	Location       string
	Organization   string
	AllDay         bool
	RecurrenceRule string
	Reminders      []Reminder
	Attendees      []string
}

// CreateEvent validates and stores a new event. A recurrence rule must
// be a valid RRULE body, e.g. "FREQ=WEEKLY;BYDAY=SA".
func (m *Manager) CreateEvent(req CreateRequest) (Event, error) {
	if req.Title == "" {
		return Event{}, fmt.Errorf("event title is required")
	}
	if req.End.Before(req.Start) {
		return Event{}, fmt.Errorf("event ends before it starts")
	}
	if req.RecurrenceRule != "" {
		if _, err := rrule.StrToRRule(req.RecurrenceRule); err != nil {
			return Event{}, fmt.Errorf("invalid recurrence rule %q: %w", req.RecurrenceRule, err)
		}
	}

	event := Event{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		Start:          req.Start,
		End:            req.End,
		Location:       req.Location,
		Organization:   req.Organization,
		AllDay:         req.AllDay,
		RecurrenceRule: req.RecurrenceRule,
		Reminders:      req.Reminders,
		Attendees:      req.Attendees,
		CreatedAt:      m.now(),
	}

	m.events = append(m.events, event)
	return event, nil
}

// Events returns all events in creation order
func (m *Manager) Events() []Event {
	return m.events
}

// Upcoming returns events with a start, or a recurrence occurrence,
// within the next N days, soonest first. A recurring event is returned
// with Start and End moved to its next occurrence in the window.
func (m *Manager) Upcoming(days int) []Event {
	now := m.now()
	cutoff := now.AddDate(0, 0, days)

	var upcoming []Event
	for _, e := range m.events {
		// Rules are validated at creation, so expansion cannot fail here
		occurrences, err := Occurrences(e, now, cutoff)
		if err != nil || len(occurrences) == 0 {
			continue
		}
		if next := occurrences[0]; !next.Equal(e.Start) {
			e.End = next.Add(e.End.Sub(e.Start))
			e.Start = next
		}
		upcoming = append(upcoming, e)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Start.Before(upcoming[j].Start)
	})
	return upcoming
}

// Today returns events starting on the current calendar day
func (m *Manager) Today() []Event {
	today := m.now().Format("2006-01-02")

	var out []Event
	for _, e := range m.events {
		if e.Start.Format("2006-01-02") == today {
			out = append(out, e)
		}
	}
	return out
}

// Occurrences expands a recurring event's start times within [from, to].
// A non-recurring event yields its own start when it falls in the window.
func Occurrences(e Event, from, to time.Time) ([]time.Time, error) {
	if !e.Recurring() {
		if !e.Start.Before(from) && !e.Start.After(to) {
			return []time.Time{e.Start}, nil
		}
		return nil, nil
	}

	r, err := rrule.StrToRRule(e.RecurrenceRule)
	if err != nil {
		return nil, fmt.Errorf("parsing recurrence rule %q: %w", e.RecurrenceRule, err)
	}
	r.DTStart(e.Start)

	return r.Between(from, to, true), nil
}
