package calendar

import (
	"fmt"
	"strings"
)

const (
	icalTimeLayout = "20060102T150405"
	icalDateLayout = "20060102"
)

// GenerateICal renders events as an iCal document suitable for import
// into Google Calendar, Outlook or Apple Calendar.
func GenerateICal(events []Event) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//VolunteerConnect Hub//EN\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")
	b.WriteString("X-WR-CALNAME:VolunteerConnect Schedule\r\n")

	for _, e := range events {
		writeEvent(&b, e)
	}

	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func writeEvent(b *strings.Builder, e Event) {
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(b, "UID:%s@volunteerconnect.hub\r\n", e.ID)

	if e.AllDay {
		fmt.Fprintf(b, "DTSTART;VALUE=DATE:%s\r\n", e.Start.Format(icalDateLayout))
		fmt.Fprintf(b, "DTEND;VALUE=DATE:%s\r\n", e.End.Format(icalDateLayout))
	} else {
		fmt.Fprintf(b, "DTSTART:%s\r\n", e.Start.Format(icalTimeLayout))
		fmt.Fprintf(b, "DTEND:%s\r\n", e.End.Format(icalTimeLayout))
	}

	fmt.Fprintf(b, "SUMMARY:%s\r\n", escapeText(e.Title))
	fmt.Fprintf(b, "DESCRIPTION:%s\r\n", escapeText(e.Description))
	fmt.Fprintf(b, "LOCATION:%s\r\n", escapeText(e.Location))

	if e.Recurring() {
		fmt.Fprintf(b, "RRULE:%s\r\n", e.RecurrenceRule)
	}

	for _, r := range e.Reminders {
		b.WriteString("BEGIN:VALARM\r\n")
		b.WriteString("ACTION:DISPLAY\r\n")
		b.WriteString("DESCRIPTION:Reminder\r\n")
		fmt.Fprintf(b, "TRIGGER:-PT%dM\r\n", r.MinutesBefore)
		b.WriteString("END:VALARM\r\n")
	}

	b.WriteString("END:VEVENT\r\n")
}

// escapeText escapes the characters iCal text values reserve
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
