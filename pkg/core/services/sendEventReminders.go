package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/volunteerconnect/hub/internal/config"
	"github.com/volunteerconnect/hub/pkg/calendar"
	"github.com/volunteerconnect/hub/pkg/core/model"
)

// ReminderSent represents a volunteer who was successfully sent an event reminder
type ReminderSent struct {
	Email      string
	EventID    string
	EventTitle string
}

// FailedEmail represents a reminder that could not be delivered
type FailedEmail struct {
	Email string
	Error string
}

// ReminderProfileStore defines the database operations needed for sending reminders
type ReminderProfileStore interface {
	ListProfiles(ctx context.Context) ([]model.Profile, error)
}

// GmailClient defines the operations needed to send emails
type GmailClient interface {
	SendEmail(to, subject, body string) error
}

// SendEventReminders emails every attendee of events starting within the
// configured window. Returns reminders that were sent and those that failed
func SendEventReminders(
	ctx context.Context,
	database ReminderProfileStore,
	gmailClient GmailClient,
	manager *calendar.Manager,
	cfg *config.Config,
	logger *zap.Logger,
) ([]ReminderSent, []FailedEmail, error) {
	logger.Debug("Starting sendEventReminders", zap.Int("days_ahead", cfg.ReminderDaysAhead))

	// Step 1: Find events in the reminder window
	events := manager.Upcoming(cfg.ReminderDaysAhead)
	logger.Debug("Found upcoming events", zap.Int("count", len(events)))

	if len(events) == 0 {
		logger.Info("No upcoming events in the reminder window")
		return []ReminderSent{}, []FailedEmail{}, nil
	}

	// Step 2: Fetch profiles so reminders can be addressed by name
	logger.Debug("Fetching profiles")
	profiles, err := database.ListProfiles(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	namesByEmail := make(map[string]string, len(profiles))
	for _, p := range profiles {
		if p.Email != "" {
			namesByEmail[p.Email] = p.FirstName
		}
	}

	// Step 3: Send a reminder to each attendee
	sent := []ReminderSent{}
	failed := []FailedEmail{}
	for _, event := range events {
		for _, attendee := range event.Attendees {
			name := namesByEmail[attendee]
			if name == "" {
				name = "Volunteer"
			}

			email := calendar.BuildReminderEmail(event, name)
			if err := gmailClient.SendEmail(attendee, email.Subject, email.Body); err != nil {
				logger.Warn("Failed to send reminder",
					zap.String("email", attendee),
					zap.String("event_id", event.ID),
					zap.Error(err))
				failed = append(failed, FailedEmail{Email: attendee, Error: err.Error()})
				continue
			}

			logger.Debug("Sent reminder",
				zap.String("email", attendee),
				zap.String("event_id", event.ID))
			sent = append(sent, ReminderSent{
				Email:      attendee,
				EventID:    event.ID,
				EventTitle: event.Title,
			})
		}
	}

	logger.Info("Finished sending reminders",
		zap.Int("sent", len(sent)),
		zap.Int("failed", len(failed)))

	return sent, failed, nil
}
