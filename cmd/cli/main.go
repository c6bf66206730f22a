package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/volunteerconnect/hub/internal/config"
	"github.com/volunteerconnect/hub/pkg/calendar"
	"github.com/volunteerconnect/hub/pkg/clients/calendarclient"
	"github.com/volunteerconnect/hub/pkg/clients/gmailclient"
	"github.com/volunteerconnect/hub/pkg/clients/volunteermatch"
	"github.com/volunteerconnect/hub/pkg/core/hours"
	"github.com/volunteerconnect/hub/pkg/core/letters"
	"github.com/volunteerconnect/hub/pkg/core/matching"
	"github.com/volunteerconnect/hub/pkg/core/model"
	"github.com/volunteerconnect/hub/pkg/core/services"
	"github.com/volunteerconnect/hub/pkg/postgres"
	"github.com/volunteerconnect/hub/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg            *config.Config
	vmClient       *volunteermatch.Client
	gmailClient    *gmailclient.Client
	calendarClient *calendarclient.Client
	database       *postgres.DB
	manager        *calendar.Manager
	tracker        *hours.Tracker
	logger         *zap.Logger
	ctx            context.Context
}

var (
	env string
	app *App
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "VolunteerConnect Hub CLI - Find opportunities and track your service",
		Long:  `A CLI tool for matching volunteers with opportunities, tracking service hours, and managing volunteer commitments.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.database != nil {
					app.database.Close()
				}
				if app.logger != nil {
					app.logger.Sync()
				}
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment (test, prod, etc.)")

	// Add all commands
	rootCmd.AddCommand(createProfileCmd())
	rootCmd.AddCommand(listProfilesCmd())
	rootCmd.AddCommand(crawlCmd())
	rootCmd.AddCommand(pastRecommendationsCmd())
	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(listOpportunitiesCmd())
	rootCmd.AddCommand(topCausesCmd())
	rootCmd.AddCommand(logHoursCmd())
	rootCmd.AddCommand(verifyHoursCmd())
	rootCmd.AddCommand(hoursSummaryCmd())
	rootCmd.AddCommand(certificateCmd())
	rootCmd.AddCommand(exportHoursCmd())
	rootCmd.AddCommand(lookupOpportunityCmd())
	rootCmd.AddCommand(addEventCmd())
	rootCmd.AddCommand(listEventsCmd())
	rootCmd.AddCommand(exportCalendarCmd())
	rootCmd.AddCommand(publishEventCmd())
	rootCmd.AddCommand(sendRemindersCmd())
	rootCmd.AddCommand(writeLetterCmd())
	rootCmd.AddCommand(interactiveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, clients, and database
func initApp() error {
	var err error
	app = &App{
		ctx:     context.Background(),
		manager: calendar.NewManager(),
	}

	// Initialize logger
	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.logger.Info("Loading configuration")
	app.cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	// Initialize VolunteerMatch client from environment credentials
	username, apiKey := config.VolunteerMatchCredentials()
	app.vmClient = volunteermatch.NewClient(username, apiKey, app.logger)
	if !app.vmClient.IsConfigured() {
		app.logger.Debug("VolunteerMatch credentials not set, sample data will be used")
	}

	// Connect to the database and apply migrations
	app.logger.Info("Connecting to database")
	app.database, err = postgres.NewDB(app.ctx, app.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := app.database.RunMigrations(app.ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.logger.Info("Database initialized successfully")

	app.tracker = hours.NewTracker(app.database)

	return nil
}

// ensureGoogleClients runs the OAuth flow on first use so commands that never
// touch Google APIs don't require credentials
func ensureGoogleClients() error {
	if app.gmailClient != nil {
		return nil
	}

	app.logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	app.logger.Info("Initializing gmail client")
	app.gmailClient, err = gmailclient.NewClient(app.ctx, oauthCfg)
	if err != nil {
		return fmt.Errorf("failed to create gmail client: %w", err)
	}
	app.gmailClient = app.gmailClient.WithSender(app.cfg.GmailSender)

	// Calendar client reuses the gmail client's OAuth token
	app.logger.Info("Initializing calendar client")
	app.calendarClient, err = calendarclient.NewClient(app.ctx, oauthCfg, app.gmailClient.Token())
	if err != nil {
		return fmt.Errorf("failed to create calendar client: %w", err)
	}

	return nil
}

// Command definitions

func createProfileCmd() *cobra.Command {
	var (
		profile model.Profile
		skills  []string
	)

	cmd := &cobra.Command{
		Use:   "createProfile <profile_id>",
		Short: "Create or update a volunteer profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile.ID = args[0]

			for _, s := range skills {
				name, level, found := strings.Cut(s, ":")
				if !found {
					level = string(model.SkillIntermediate)
				}
				profile.Skills = append(profile.Skills, model.Skill{
					Name:  name,
					Level: model.SkillLevel(level),
				})
			}

			profile.ProfileComplete = profile.IsComplete()

			if err := app.database.UpsertProfile(app.ctx, profile); err != nil {
				return err
			}

			fmt.Printf("\n✓ Profile saved\n\n")
			fmt.Printf("Profile ID: %s\n", profile.ID)
			fmt.Printf("Complete:   %.0f%%\n\n", profile.CompletionPercentage())

			return nil
		},
	}

	cmd.Flags().StringVar(&profile.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&profile.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&profile.LastName, "last-name", "", "Last name")
	cmd.Flags().StringSliceVar(&profile.CausesInterested, "causes", nil, "Causes the volunteer cares about")
	cmd.Flags().StringSliceVar(&skills, "skills", nil, "Skills as name:level, e.g. teaching:advanced")
	cmd.Flags().IntVar(&profile.AvailabilityHoursPerWeek, "hours-per-week", 0, "Available hours per week")
	cmd.Flags().StringSliceVar(&profile.AvailabilityDays, "days", nil, "Available days of the week")
	cmd.Flags().BoolVar(&profile.PrefersVirtual, "virtual", false, "Prefers remote opportunities")
	cmd.Flags().BoolVar(&profile.PrefersInPerson, "in-person", false, "Prefers in-person opportunities")
	cmd.Flags().StringSliceVar(&profile.PopulationsInterested, "populations", nil, "Populations the volunteer wants to serve")
	cmd.Flags().StringSliceVar(&profile.Goals, "goals", nil, "What the volunteer wants out of volunteering")
	cmd.Flags().StringVar(&profile.PrimaryMotivation, "motivation", "", "Primary motivation")
	cmd.Flags().BoolVar(&profile.WillingBackgroundCheck, "background-check", false, "Willing to undergo a background check")

	return cmd
}

func listProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listProfiles",
		Short: "List stored volunteer profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.database.ListProfiles(app.ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nStored profiles: %d\n\n", len(profiles))
			for _, p := range profiles {
				fmt.Printf("  %-20s  %-25s  %-30s  %.0f%% complete\n",
					p.ID, p.FirstName+" "+p.LastName, p.Email, p.CompletionPercentage())
			}
			fmt.Println()

			return nil
		},
	}
}

func pastRecommendationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pastRecommendations <profile_id>",
		Short: "Show previously generated recommendations for a volunteer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.database.ListRecommendations(app.ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\nStored recommendations: %d\n\n", len(records))
			for _, r := range records {
				fmt.Printf("  %s  #%d  %-16s  %5.1f%%\n",
					r.CreatedAt.Format("2006-01-02 15:04"), r.Rank, r.OpportunityID, r.TotalScore)
			}
			fmt.Println()

			return nil
		},
	}
}

func crawlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crawl",
		Short: "Fetch opportunities from VolunteerMatch and store them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := services.CrawlOpportunities(app.ctx, app.database, app.vmClient, app.cfg, app.logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Stored %d opportunities\n\n", written)
			return nil
		},
	}
}

func recommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <profile_id>",
		Short: "Generate ranked opportunity recommendations for a volunteer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recommendations, err := services.GenerateRecommendations(app.ctx, app.database, app.cfg, app.logger, args[0])
			if err != nil {
				return err
			}

			if len(recommendations) == 0 {
				fmt.Println("\nNo good matches found. Try completing more of the profile or crawling more opportunities.")
				return nil
			}

			fmt.Printf("\n✓ Found %d recommendations\n\n", len(recommendations))
			for _, rec := range recommendations {
				fmt.Printf("%d. %s\n\n", rec.Rank, matching.Explain(rec))
				fmt.Println(strings.Repeat("-", 60))
			}

			return nil
		},
	}
}

func listOpportunitiesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "listOpportunities",
		Short: "List stored opportunities (active only by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opportunities, err := app.database.ListOpportunities(app.ctx, !all)
			if err != nil {
				return err
			}

			fmt.Printf("\nStored opportunities: %d\n\n", len(opportunities))
			for _, o := range opportunities {
				location := "Remote"
				if !o.IsVirtual {
					location = fmt.Sprintf("%s, %s", o.LocationCity, o.LocationState)
				}
				fmt.Printf("  %-16s  %-40s  %-25s  %s\n", o.ID, truncate(o.Title, 40), truncate(o.Organization, 25), location)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive opportunities")
	return cmd
}

func topCausesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topCauses <profile_id>",
		Short: "Show which causes dominate the current opportunity pool for a volunteer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.database.GetProfile(app.ctx, args[0])
			if err != nil {
				return err
			}

			opportunities, err := app.database.ListOpportunities(app.ctx, true)
			if err != nil {
				return err
			}

			candidates := make([]*model.Opportunity, len(opportunities))
			for i := range opportunities {
				candidates[i] = &opportunities[i]
			}

			counts := matching.TopCauses(&profile, candidates)

			fmt.Printf("\nTop causes across %d active opportunities:\n\n", len(opportunities))
			for _, c := range counts {
				fmt.Printf("  %-25s %d\n", c.Cause, c.Count)
			}
			fmt.Println()

			return nil
		},
	}
}

func logHoursCmd() *cobra.Command {
	var (
		orgID        string
		orgName      string
		date         string
		hoursWorked  float64
		activity     string
		description  string
		supervisor   string
		peopleServed int
	)

	cmd := &cobra.Command{
		Use:   "logHours <volunteer_id>",
		Short: "Log volunteer hours for later verification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceDate, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
			}

			entry, err := app.tracker.Log(app.ctx, hours.LogRequest{
				VolunteerID:      args[0],
				OrganizationID:   orgID,
				OrganizationName: orgName,
				Date:             serviceDate,
				Hours:            hoursWorked,
				ActivityType:     hours.ActivityType(activity),
				Description:      description,
				Supervisor:       supervisor,
				PeopleServed:     peopleServed,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Logged %.1f hours\n\n", entry.Hours)
			fmt.Printf("Entry ID: %s\n", entry.ID)
			fmt.Printf("Status:   %s\n\n", entry.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&orgID, "org-id", "", "Organization ID")
	cmd.Flags().StringVar(&orgName, "org", "", "Organization name")
	cmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "Service date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hoursWorked, "hours", 0, "Hours worked")
	cmd.Flags().StringVar(&activity, "activity", string(hours.ActivityDirectService), "Activity type")
	cmd.Flags().StringVar(&description, "description", "", "What the volunteer did")
	cmd.Flags().StringVar(&supervisor, "supervisor", "", "Supervisor who can verify the entry")
	cmd.Flags().IntVar(&peopleServed, "people-served", 0, "Number of people served")
	cmd.MarkFlagRequired("hours")

	return cmd
}

func verifyHoursCmd() *cobra.Command {
	var (
		reject bool
		notes  string
	)

	cmd := &cobra.Command{
		Use:   "verifyHours <entry_id> <verifier_id>",
		Short: "Verify or reject a logged hours entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.tracker.Verify(app.ctx, args[0], args[1], !reject, notes)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Entry %s is now %s\n\n", entry.ID, entry.Status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reject, "reject", false, "Reject the entry instead of verifying it")
	cmd.Flags().StringVar(&notes, "notes", "", "Verification notes")
	return cmd
}

func hoursSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hoursSummary <volunteer_id> [period]",
		Short: "Summarize volunteer hours for a period (week, month, quarter, year, all)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			period := hours.PeriodAll
			if len(args) > 1 {
				period = hours.Period(args[1])
			}

			report, err := app.tracker.Report(app.ctx, args[0], period)
			if err != nil {
				return err
			}

			s := report.Summary
			fmt.Printf("\nHours report (%s)\n\n", report.Period)
			fmt.Printf("Total hours:     %.1f\n", s.TotalHours)
			fmt.Printf("Verified hours:  %.1f\n", s.VerifiedHours)
			fmt.Printf("Pending hours:   %.1f\n", s.PendingHours)
			fmt.Printf("Entries:         %d\n", s.EntriesCount)
			fmt.Printf("Organizations:   %d\n", s.OrganizationsCount)
			fmt.Printf("People served:   %d\n", s.PeopleServed)
			fmt.Printf("Avg hours/log:   %.1f\n", report.AvgHoursPerLog)
			fmt.Printf("Impact score:    %.0f/100\n\n", report.ImpactScore)

			if len(s.ByOrganization) > 0 {
				fmt.Println("By organization:")
				for org, orgHours := range s.ByOrganization {
					fmt.Printf("  %-30s %.1f\n", org, orgHours)
				}
				fmt.Println()
			}

			advice, err := app.tracker.Advice(app.ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Schedule advice: %s\n", advice.Recommendation)
			if len(advice.OptimalDays) > 0 {
				fmt.Printf("Best days:       %s\n", strings.Join(advice.OptimalDays, ", "))
			}
			if advice.MostActiveOrg != "" {
				fmt.Printf("Most active at:  %s\n", advice.MostActiveOrg)
			}
			fmt.Println()

			return nil
		},
	}
}

func certificateCmd() *cobra.Command {
	var (
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "certificate <volunteer_id> <volunteer_name>",
		Short: "Generate a service certificate from verified hours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			periodStart, periodEnd, err := parsePeriodBounds(start, end)
			if err != nil {
				return err
			}

			cert, err := app.tracker.Certificate(app.ctx, args[0], args[1], periodStart, periodEnd, app.cfg.CertificateAuthority)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Certificate generated\n\n")
			fmt.Printf("Number:        %s\n", cert.CertificateNumber)
			fmt.Printf("Volunteer:     %s\n", cert.VolunteerName)
			fmt.Printf("Verified:      %.1f hours\n", cert.TotalHours)
			fmt.Printf("Organizations: %s\n\n", strings.Join(cert.Organizations, ", "))

			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Period end (YYYY-MM-DD)")
	return cmd
}

func exportHoursCmd() *cobra.Command {
	var (
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "exportHours <volunteer_id> <output.csv>",
		Short: "Export a volunteer's hours log as CSV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			periodStart, periodEnd, err := parsePeriodBounds(start, end)
			if err != nil {
				return err
			}

			csvData, err := app.tracker.ExportCSV(app.ctx, args[0], periodStart, periodEnd)
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], []byte(csvData), 0644); err != nil {
				return fmt.Errorf("failed to write CSV file: %w", err)
			}

			fmt.Printf("\n✓ Exported hours to %s\n\n", args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Period end (YYYY-MM-DD)")
	return cmd
}

func lookupOpportunityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookupOpportunity <opportunity_id>",
		Short: "Fetch a single opportunity from the VolunteerMatch API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.vmClient.IsConfigured() {
				return fmt.Errorf("VolunteerMatch API credentials are not configured")
			}

			opportunity, err := app.vmClient.GetOpportunity(app.ctx, args[0])
			if err != nil {
				return err
			}

			location := "Remote"
			if !opportunity.IsVirtual {
				location = fmt.Sprintf("%s, %s", opportunity.LocationCity, opportunity.LocationState)
			}

			fmt.Printf("\n%s\n\n", opportunity.Title)
			fmt.Printf("Organization: %s\n", opportunity.Organization)
			fmt.Printf("Location:     %s\n", location)
			fmt.Printf("Causes:       %s\n", strings.Join(opportunity.CauseAreas, ", "))
			fmt.Printf("Skills:       %s\n", strings.Join(opportunity.SkillsNeeded, ", "))
			fmt.Printf("URL:          %s\n\n", opportunity.SourceURL)
			fmt.Println(opportunity.Description)
			fmt.Println()

			return nil
		},
	}
}

func listEventsCmd() *cobra.Command {
	var today bool

	cmd := &cobra.Command{
		Use:   "listEvents",
		Short: "List session calendar events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events := app.manager.Events()
			if today {
				events = app.manager.Today()
			}

			fmt.Printf("\nEvents: %d\n\n", len(events))
			for _, e := range events {
				when := e.Start.Format("2006-01-02 15:04")
				if e.Recurring() {
					when += " (recurring)"
				}
				fmt.Printf("  %-36s  %-30s  %s\n", e.ID, truncate(e.Title, 30), when)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().BoolVar(&today, "today", false, "Only events on the current calendar day")
	return cmd
}

func addEventCmd() *cobra.Command {
	var (
		start     string
		end       string
		location  string
		org       string
		details   string
		rrule     string
		attendees []string
		remind    int
	)

	cmd := &cobra.Command{
		Use:   "addEvent <title>",
		Short: "Add a volunteer event to the session calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime, err := time.Parse("2006-01-02 15:04", start)
			if err != nil {
				return fmt.Errorf("start must be \"YYYY-MM-DD HH:MM\": %w", err)
			}
			endTime, err := time.Parse("2006-01-02 15:04", end)
			if err != nil {
				return fmt.Errorf("end must be \"YYYY-MM-DD HH:MM\": %w", err)
			}

			req := calendar.CreateRequest{
				Title:          args[0],
				Description:    details,
				Start:          startTime,
				End:            endTime,
				Location:       location,
				Organization:   org,
				RecurrenceRule: rrule,
				Attendees:      attendees,
			}
			if remind > 0 {
				req.Reminders = []calendar.Reminder{
					{Channel: calendar.ReminderEmail, MinutesBefore: remind},
				}
			}

			event, err := app.manager.CreateEvent(req)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Event created\n\n")
			fmt.Printf("Event ID: %s\n", event.ID)
			fmt.Printf("Add to Google Calendar: %s\n\n", calendar.GoogleCalendarURL(event))

			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&location, "location", "", "Where the event takes place")
	cmd.Flags().StringVar(&org, "org", "", "Organization running the event")
	cmd.Flags().StringVar(&details, "description", "", "Event description")
	cmd.Flags().StringVar(&rrule, "rrule", "", "Recurrence rule, e.g. FREQ=WEEKLY;BYDAY=SA")
	cmd.Flags().StringSliceVar(&attendees, "attendees", nil, "Attendee email addresses")
	cmd.Flags().IntVar(&remind, "remind", 0, "Email reminder minutes before the event")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func exportCalendarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exportCalendar <output.ics>",
		Short: "Export the session calendar as an iCal file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events := app.manager.Events()
			if len(events) == 0 {
				return fmt.Errorf("no events to export - add events first")
			}

			ical := calendar.GenerateICal(events)
			if err := os.WriteFile(args[0], []byte(ical), 0644); err != nil {
				return fmt.Errorf("failed to write iCal file: %w", err)
			}

			fmt.Printf("\n✓ Exported %d events to %s\n\n", len(events), args[0])
			return nil
		},
	}
}

func publishEventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publishEvent <event_id>",
		Short: "Publish a session calendar event to Google Calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureGoogleClients(); err != nil {
				return err
			}

			for _, event := range app.manager.Events() {
				if event.ID == args[0] {
					link, err := app.calendarClient.PublishEvent(event)
					if err != nil {
						return err
					}

					fmt.Printf("\n✓ Event published\n\n")
					fmt.Printf("Link: %s\n\n", link)
					return nil
				}
			}

			return fmt.Errorf("event %s not found", args[0])
		},
	}
}

func sendRemindersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sendReminders",
		Short: "Email reminders for upcoming events to their attendees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureGoogleClients(); err != nil {
				return err
			}

			sent, failed, err := services.SendEventReminders(app.ctx, app.database, app.gmailClient, app.manager, app.cfg, app.logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Reminders sent: %d\n", len(sent))
			for _, s := range sent {
				fmt.Printf("  %s (%s)\n", s.Email, s.EventTitle)
			}

			if len(failed) > 0 {
				fmt.Printf("\nFailed: %d\n", len(failed))
				for _, f := range failed {
					fmt.Printf("  %s: %s\n", f.Email, f.Error)
				}
			}
			fmt.Println()

			return nil
		},
	}
}

func writeLetterCmd() *cobra.Command {
	var letterCtx letters.Context

	typeNames := make([]string, 0, len(letters.Types()))
	for _, t := range letters.Types() {
		typeNames = append(typeNames, string(t))
	}

	cmd := &cobra.Command{
		Use:   "writeLetter <type>",
		Short: fmt.Sprintf("Write a volunteer letter (%s)", strings.Join(typeNames, ", ")),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			letterCtx.Type = letters.Type(args[0])

			letter, err := letters.NewWriter().Generate(letterCtx)
			if err != nil {
				return err
			}

			fmt.Printf("\nSubject: %s\n\n", letter.Subject)
			fmt.Println(letter.Body)
			fmt.Printf("\nQuality score: %.2f\n", letter.QualityScore)
			for _, suggestion := range letter.Suggestions {
				fmt.Printf("  - %s\n", suggestion)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&letterCtx.SenderName, "from", "", "Sender name")
	cmd.Flags().StringVar(&letterCtx.SenderEmail, "from-email", "", "Sender email")
	cmd.Flags().StringVar(&letterCtx.RecipientName, "to", "", "Recipient name")
	cmd.Flags().StringVar(&letterCtx.RecipientTitle, "to-title", "", "Recipient title")
	cmd.Flags().StringVar(&letterCtx.Organization, "org", "", "Organization the letter addresses")
	cmd.Flags().StringVar(&letterCtx.Role, "role", "", "Volunteer role")
	cmd.Flags().StringVar(&letterCtx.Reason, "reason", "", "Why the volunteer is writing")
	cmd.Flags().StringVar(&letterCtx.Experience, "experience", "", "Relevant experience")
	cmd.Flags().StringVar(&letterCtx.Skills, "skills", "", "Relevant skills")
	cmd.Flags().StringVar(&letterCtx.Availability, "availability", "", "When the volunteer is available")
	cmd.Flags().StringVar(&letterCtx.PreviousAction, "previous-action", "", "Earlier contact the letter follows up on")
	cmd.Flags().StringVar(&letterCtx.AdditionalInfo, "extra", "", "Additional information")

	return cmd
}

func parsePeriodBounds(start, end string) (time.Time, time.Time, error) {
	var periodStart, periodEnd time.Time
	var err error

	if start != "" {
		periodStart, err = time.Parse("2006-01-02", start)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start must be YYYY-MM-DD: %w", err)
		}
	}
	if end != "" {
		periodEnd, err = time.Parse("2006-01-02", end)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end must be YYYY-MM-DD: %w", err)
		}
	}

	return periodStart, periodEnd, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
