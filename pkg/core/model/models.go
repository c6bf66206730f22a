package model

// CommitmentType is the recurrence pattern of an opportunity
type CommitmentType string

const (
	CommitmentOneTime   CommitmentType = "one_time"
	CommitmentRecurring CommitmentType = "recurring"
	CommitmentOngoing   CommitmentType = "ongoing"
	CommitmentSeasonal  CommitmentType = "seasonal"
)

func (c CommitmentType) IsValid() bool {
	switch c {
	case CommitmentOneTime, CommitmentRecurring, CommitmentOngoing, CommitmentSeasonal:
		return true
	}
	return false
}

// SkillLevel is a self-reported proficiency level
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// Skill is a named skill with a proficiency level
type Skill struct {
	Name  string
	Level SkillLevel
}

// Profile represents a volunteer's questionnaire answers relevant to matching.
// Every field is optional: an empty collection or zero value means
// "not specified" and scores through the neutral branch of each factor.
type Profile struct {
	ID                       string
	Email                    string
	FirstName                string
	LastName                 string
	CausesInterested         []string
	Skills                   []Skill
	AvailabilityHoursPerWeek int
	AvailabilityDays         []string
	PrefersVirtual           bool
	PrefersInPerson          bool
	PopulationsInterested    []string
	Goals                    []string
	PrimaryMotivation        string
	WillingBackgroundCheck   bool
	ProfileComplete          bool
}

// Opportunity represents a volunteer opportunity from any source
type Opportunity struct {
	ID                string
	Source            string
	SourceID          string
	SourceURL         string
	Title             string
	Organization      string
	Description       string
	LocationCity      string
	LocationState     string
	IsVirtual         bool
	CauseAreas        []string
	SkillsNeeded      []string
	PopulationsServed []string
	CommitmentType    CommitmentType

	// HoursPerWeekMax of zero means the commitment is flexible
	HoursPerWeekMin int
	HoursPerWeekMax int

	MinAge                  int
	BackgroundCheckRequired bool
	TrainingProvided        bool
	IsActive                bool
}
