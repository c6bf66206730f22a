package calendar

import (
	"fmt"
	"net/url"
	"strings"
)

// GoogleCalendarURL builds an add-to-calendar link for the event
func GoogleCalendarURL(e Event) string {
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", e.Title)
	params.Set("dates", fmt.Sprintf("%s/%s", e.Start.Format(icalTimeLayout), e.End.Format(icalTimeLayout)))
	params.Set("details", e.Description)
	params.Set("location", e.Location)

	return "https://calendar.google.com/calendar/render?" + params.Encode()
}

// ReminderEmailMessage is a rendered reminder message ready to send
type ReminderEmailMessage struct {
	Subject string
	Body    string
}

// BuildReminderEmail renders the reminder email for an upcoming event
func BuildReminderEmail(e Event, volunteerName string) ReminderEmailMessage {
	location := e.Location
	if location == "" {
		location = "TBD"
	}
	organization := e.Organization
	if organization == "" {
		organization = "N/A"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", volunteerName)
	b.WriteString("This is a reminder about your upcoming volunteer commitment:\n\n")
	fmt.Fprintf(&b, "Event: %s\n", e.Title)
	fmt.Fprintf(&b, "Location: %s\n", location)
	fmt.Fprintf(&b, "Date & Time: %s\n", e.Start.Format("Monday, January 2, 2006 at 3:04 PM"))
	fmt.Fprintf(&b, "Organization: %s\n", organization)
	if e.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", e.Description)
	}
	b.WriteString("\nPlease make sure to arrive on time and contact the organization if you need to make any changes.\n\n")
	b.WriteString("Thank you for your commitment to volunteering!\n\n")
	b.WriteString("Best regards,\nVolunteerConnect Hub\n\n")
	fmt.Fprintf(&b, "---\nAdd to Calendar: %s\n", GoogleCalendarURL(e))

	return ReminderEmailMessage{
		Subject: fmt.Sprintf("Reminder: %s - %s", e.Title, e.Start.Format("January 2, 2006")),
		Body:    b.String(),
	}
}
