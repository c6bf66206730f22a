package calendarclient

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/volunteerconnect/hub/internal/config"
	"github.com/volunteerconnect/hub/pkg/calendar"
	"github.com/volunteerconnect/hub/pkg/utils"
)

// Client wraps the Google Calendar API client
type Client struct {
	service    *gcal.Service
	ctx        context.Context
	calendarID string
}

// NewClient creates a new Calendar client using an existing OAuth token
// The token should already contain all necessary scopes (gmail, calendar)
func NewClient(ctx context.Context, oauthCfg *config.OAuthClientConfig, token *oauth2.Token) (*Client, error) {
	// Get OAuth config with all required scopes for the application
	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth config: %w", err)
	}

	httpClient := oauthConfig.Client(ctx, token)

	service, err := gcal.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &Client{
		service:    service,
		ctx:        ctx,
		calendarID: "primary",
	}, nil
}

// WithCalendarID targets a calendar other than the user's primary one
func (c *Client) WithCalendarID(id string) *Client {
	c.calendarID = id
	return c
}

// PublishEvent inserts a volunteer event into the user's Google Calendar
// and returns the created event's link
func (c *Client) PublishEvent(event calendar.Event) (string, error) {
	gcalEvent := &gcal.Event{
		Summary:     event.Title,
		Description: event.Description,
		Location:    event.Location,
	}

	if event.AllDay {
		gcalEvent.Start = &gcal.EventDateTime{Date: event.Start.Format("2006-01-02")}
		gcalEvent.End = &gcal.EventDateTime{Date: event.End.Format("2006-01-02")}
	} else {
		gcalEvent.Start = &gcal.EventDateTime{DateTime: event.Start.Format("2006-01-02T15:04:05Z07:00")}
		gcalEvent.End = &gcal.EventDateTime{DateTime: event.End.Format("2006-01-02T15:04:05Z07:00")}
	}

	if event.Recurring() {
		gcalEvent.Recurrence = []string{"RRULE:" + event.RecurrenceRule}
	}

	if len(event.Reminders) > 0 {
		overrides := make([]*gcal.EventReminder, 0, len(event.Reminders))
		for _, r := range event.Reminders {
			method := "popup"
			if r.Channel == calendar.ReminderEmail {
				method = "email"
			}
			overrides = append(overrides, &gcal.EventReminder{
				Method:  method,
				Minutes: int64(r.MinutesBefore),
			})
		}
		gcalEvent.Reminders = &gcal.EventReminders{
			UseDefault:      false,
			Overrides:       overrides,
			ForceSendFields: []string{"UseDefault"},
		}
	}

	created, err := c.service.Events.Insert(c.calendarID, gcalEvent).Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert calendar event: %w", err)
	}

	return created.HtmlLink, nil
}
