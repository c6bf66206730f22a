package hours

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Store is the persistence surface the tracker needs
type Store interface {
	InsertHoursEntry(ctx context.Context, entry Entry) error
	GetHoursEntry(ctx context.Context, id string) (Entry, error)
	UpdateHoursEntry(ctx context.Context, entry Entry) error
	ListHoursEntries(ctx context.Context, volunteerID string) ([]Entry, error)
	CountHoursEntries(ctx context.Context) (int, error)
}

// Tracker manages the hours logging and verification workflow on top of
// a Store. The clock is injectable for tests.
type Tracker struct {
	store Store
	now   func() time.Time
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// WithClock replaces the tracker's time source
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// LogRequest carries the fields of a new hours entry
type LogRequest struct {
	VolunteerID      string
	OrganizationID   string
	OrganizationName string
	Date             time.Time
	Hours            float64
	ActivityType     ActivityType
	Description      string
	Supervisor       string
	PeopleServed     int
	ImpactNotes      string
}

// Log records a new pending hours entry.
func (t *Tracker) Log(ctx context.Context, req LogRequest) (Entry, error) {
	if req.Hours <= 0 {
		return Entry{}, fmt.Errorf("hours must be positive, got %v", req.Hours)
	}
	if !req.ActivityType.IsValid() {
		return Entry{}, fmt.Errorf("unknown activity type %q", req.ActivityType)
	}

	entry := Entry{
		ID:               uuid.NewString(),
		VolunteerID:      req.VolunteerID,
		OrganizationID:   req.OrganizationID,
		OrganizationName: req.OrganizationName,
		Date:             req.Date,
		Hours:            req.Hours,
		ActivityType:     req.ActivityType,
		Description:      req.Description,
		Supervisor:       req.Supervisor,
		Status:           StatusPending,
		CreatedAt:        t.now(),
		PeopleServed:     req.PeopleServed,
		ImpactNotes:      req.ImpactNotes,
	}

	if err := t.store.InsertHoursEntry(ctx, entry); err != nil {
		return Entry{}, fmt.Errorf("inserting hours entry: %w", err)
	}

	return entry, nil
}

// Verify marks an entry verified or rejected and stamps the verifier.
func (t *Tracker) Verify(ctx context.Context, entryID, verifierID string, approved bool, notes string) (Entry, error) {
	entry, err := t.store.GetHoursEntry(ctx, entryID)
	if err != nil {
		return Entry{}, fmt.Errorf("loading hours entry %s: %w", entryID, err)
	}

	if approved {
		entry.Status = StatusVerified
	} else {
		entry.Status = StatusRejected
	}
	entry.VerifiedBy = verifierID
	entry.VerifiedAt = t.now()
	entry.UpdatedAt = t.now()
	if notes != "" {
		entry.Notes = notes
	}

	if err := t.store.UpdateHoursEntry(ctx, entry); err != nil {
		return Entry{}, fmt.Errorf("updating hours entry %s: %w", entryID, err)
	}

	return entry, nil
}

// Summary aggregates a volunteer's entries over an optional period.
func (t *Tracker) Summary(ctx context.Context, volunteerID string, start, end time.Time) (Summary, error) {
	entries, err := t.store.ListHoursEntries(ctx, volunteerID)
	if err != nil {
		return Summary{}, fmt.Errorf("listing hours for %s: %w", volunteerID, err)
	}
	return Summarize(entries, start, end), nil
}

// Advice derives schedule advice from the volunteer's full history.
func (t *Tracker) Advice(ctx context.Context, volunteerID string) (ScheduleAdvice, error) {
	entries, err := t.store.ListHoursEntries(ctx, volunteerID)
	if err != nil {
		return ScheduleAdvice{}, fmt.Errorf("listing hours for %s: %w", volunteerID, err)
	}
	return AdviseSchedule(entries), nil
}

// Report builds an impact report for the period ending now.
func (t *Tracker) Report(ctx context.Context, volunteerID string, period Period) (Report, error) {
	entries, err := t.store.ListHoursEntries(ctx, volunteerID)
	if err != nil {
		return Report{}, fmt.Errorf("listing hours for %s: %w", volunteerID, err)
	}
	return BuildReport(entries, period, t.now())
}

// Certificate issues a certificate covering the volunteer's verified
// hours in [start, end]. The signature authority defaults to the hub
// itself when empty.
func (t *Tracker) Certificate(ctx context.Context, volunteerID, volunteerName string, start, end time.Time, authority string) (Certificate, error) {
	summary, err := t.Summary(ctx, volunteerID, start, end)
	if err != nil {
		return Certificate{}, err
	}

	seq, err := t.store.CountHoursEntries(ctx)
	if err != nil {
		return Certificate{}, fmt.Errorf("counting hours entries: %w", err)
	}

	if authority == "" {
		authority = "VolunteerConnect Hub"
	}

	now := t.now()
	return Certificate{
		ID:                 uuid.NewString(),
		VolunteerName:      volunteerName,
		TotalHours:         summary.VerifiedHours,
		PeriodStart:        start,
		PeriodEnd:          end,
		Organizations:      sortedKeys(summary.ByOrganization),
		Activities:         sortedKeys(summary.ByActivityType),
		IssuedAt:           now,
		CertificateNumber:  fmt.Sprintf("VC-%d-%05d", now.Year(), seq),
		SignatureAuthority: authority,
	}, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
