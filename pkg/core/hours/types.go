package hours

import "time"

// Status is the verification state of a logged entry
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
	StatusDisputed Status = "disputed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected, StatusDisputed:
		return true
	}
	return false
}

// ActivityType categorises what the volunteer did
type ActivityType string

const (
	ActivityDirectService   ActivityType = "direct_service"
	ActivityIndirectService ActivityType = "indirect_service"
	ActivityFundraising     ActivityType = "fundraising"
	ActivityAdvocacy        ActivityType = "advocacy"
	ActivityTraining        ActivityType = "training"
	ActivityAdministrative  ActivityType = "administrative"
	ActivityTravel          ActivityType = "travel"
	ActivityOther           ActivityType = "other"
)

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityDirectService, ActivityIndirectService, ActivityFundraising,
		ActivityAdvocacy, ActivityTraining, ActivityAdministrative,
		ActivityTravel, ActivityOther:
		return true
	}
	return false
}

// Entry is a single logged block of volunteer hours
type Entry struct {
	ID               string
	VolunteerID      string
	OrganizationID   string
	OrganizationName string
	Date             time.Time
	Hours            float64
	ActivityType     ActivityType
	Description      string
	Supervisor       string
	Status           Status
	VerifiedBy       string
	VerifiedAt       time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Notes            string
	ImpactNotes      string
	PeopleServed     int
}

// Summary aggregates a volunteer's entries over a period
type Summary struct {
	TotalHours         float64
	VerifiedHours      float64
	PendingHours       float64
	EntriesCount       int
	OrganizationsCount int
	ByOrganization     map[string]float64
	ByActivityType     map[string]float64
	ByMonth            map[string]float64
	PeopleServed       int
	PeriodStart        time.Time
	PeriodEnd          time.Time
}

// Report is a period summary with derived metrics for presentation
type Report struct {
	Period         Period
	Summary        Summary
	AvgHoursPerLog float64
	ImpactScore    float64
}

// Certificate records a volunteer's verified service over a period
type Certificate struct {
	ID                 string
	VolunteerName      string
	TotalHours         float64
	PeriodStart        time.Time
	PeriodEnd          time.Time
	Organizations      []string
	Activities         []string
	IssuedAt           time.Time
	CertificateNumber  string
	SignatureAuthority string
}
