package volunteermatch

import "github.com/volunteerconnect/hub/pkg/core/model"

// sourceURLs maps an opportunity source to its public site
var sourceURLs = map[string]string{
	"volunteermatch": "https://www.volunteermatch.org",
	"idealist":       "https://www.idealist.org",
	"habitat":        "https://www.habitat.org/volunteer",
	"red_cross":      "https://www.redcross.org/volunteer",
	"americorps":     "https://americorps.gov",
}

// SampleOpportunities returns a curated set of realistic listings so
// matching, ranking and the CLI work without API credentials. IDs are
// content-derived, so repeated loads upsert cleanly.
func SampleOpportunities() []model.Opportunity {
	samples := []model.Opportunity{
		{
			Source:                  "volunteermatch",
			Title:                   "Youth Tutoring Program Volunteer",
			Organization:            "Local Library System",
			Description:             "Help K-12 students with homework and reading skills. Training provided. Background check required for working with minors.",
			CauseAreas:              []string{"education", "youth"},
			SkillsNeeded:            []string{"Teaching", "Patience", "Communication"},
			PopulationsServed:       []string{"children", "teens"},
			CommitmentType:          model.CommitmentRecurring,
			HoursPerWeekMin:         2,
			HoursPerWeekMax:         4,
			BackgroundCheckRequired: true,
			TrainingProvided:        true,
		},
		{
			Source:            "volunteermatch",
			Title:             "Food Bank Sorting Volunteer",
			Organization:      "Community Food Bank",
			Description:       "Sort and package food donations for distribution to families in need. Great for groups and families.",
			CauseAreas:        []string{"hunger", "community"},
			SkillsNeeded:      []string{"Physical ability", "Teamwork"},
			PopulationsServed: []string{"families", "general"},
			CommitmentType:    model.CommitmentOneTime,
			HoursPerWeekMin:   3,
			HoursPerWeekMax:   4,
			TrainingProvided:  true,
			MinAge:            12,
		},
		{
			Source:                  "volunteermatch",
			Title:                   "Senior Companion Visitor",
			Organization:            "Elder Care Services",
			Description:             "Visit with isolated seniors, provide companionship, play games, or help with errands. Make a real difference in someone's life.",
			CauseAreas:              []string{"seniors", "health"},
			SkillsNeeded:            []string{"Compassion", "Communication", "Patience"},
			PopulationsServed:       []string{"seniors"},
			CommitmentType:          model.CommitmentRecurring,
			HoursPerWeekMin:         1,
			HoursPerWeekMax:         3,
			BackgroundCheckRequired: true,
			TrainingProvided:        true,
		},
		{
			Source:            "volunteermatch",
			Title:             "Virtual ESL Conversation Partner",
			Organization:      "Immigrant Services Center",
			Description:       "Help adult English language learners practice conversational English via video chat. Flexible schedule.",
			CauseAreas:        []string{"education", "immigrants"},
			SkillsNeeded:      []string{"Communication", "Patience", "Cultural sensitivity"},
			PopulationsServed: []string{"adults", "immigrants"},
			CommitmentType:    model.CommitmentRecurring,
			HoursPerWeekMin:   1,
			HoursPerWeekMax:   2,
			TrainingProvided:  true,
			IsVirtual:         true,
		},
		{
			Source:            "volunteermatch",
			Title:             "Animal Shelter Dog Walker",
			Organization:      "Humane Society",
			Description:       "Walk and socialize shelter dogs to improve their behavior and adoption chances. Must be 18+ and comfortable with dogs.",
			CauseAreas:        []string{"animals"},
			SkillsNeeded:      []string{"Animal handling", "Physical fitness"},
			PopulationsServed: []string{"animals"},
			CommitmentType:    model.CommitmentRecurring,
			HoursPerWeekMin:   2,
			HoursPerWeekMax:   6,
			TrainingProvided:  true,
			MinAge:            18,
		},
		{
			Source:            "habitat",
			Title:             "Home Build Volunteer",
			Organization:      "Habitat for Humanity",
			Description:       "Help build affordable homes for families in need. No construction experience necessary - we'll teach you!",
			CauseAreas:        []string{"housing", "community"},
			SkillsNeeded:      []string{"Physical ability", "Teamwork"},
			PopulationsServed: []string{"families"},
			CommitmentType:    model.CommitmentOneTime,
			HoursPerWeekMin:   6,
			HoursPerWeekMax:   8,
			TrainingProvided:  true,
			MinAge:            16,
		},
		{
			Source:                  "red_cross",
			Title:                   "Disaster Response Volunteer",
			Organization:            "American Red Cross",
			Description:             "Be trained and ready to respond to local disasters. Help with sheltering, feeding, and comfort for affected families.",
			CauseAreas:              []string{"disaster", "community"},
			SkillsNeeded:            []string{"Flexibility", "Compassion", "Physical ability"},
			PopulationsServed:       []string{"general"},
			CommitmentType:          model.CommitmentOngoing,
			BackgroundCheckRequired: true,
			TrainingProvided:        true,
			MinAge:                  18,
		},
		{
			Source:            "volunteermatch",
			Title:             "Nonprofit Website Developer",
			Organization:      "Tech for Good",
			Description:       "Use your web development skills to help nonprofits improve their online presence. Remote work, flexible hours.",
			CauseAreas:        []string{"community", "arts"},
			SkillsNeeded:      []string{"Web Development", "HTML/CSS", "JavaScript"},
			PopulationsServed: []string{"general"},
			CommitmentType:    model.CommitmentRecurring,
			HoursPerWeekMin:   3,
			HoursPerWeekMax:   10,
			IsVirtual:         true,
		},
		{
			Source:            "volunteermatch",
			Title:             "Park Cleanup & Conservation",
			Organization:      "Parks & Recreation Department",
			Description:       "Help maintain local parks through cleanup events, trail maintenance, and native plant gardening.",
			CauseAreas:        []string{"environment", "community"},
			SkillsNeeded:      []string{"Physical ability", "Outdoor interest"},
			PopulationsServed: []string{"general"},
			CommitmentType:    model.CommitmentOneTime,
			HoursPerWeekMin:   2,
			HoursPerWeekMax:   4,
			TrainingProvided:  true,
		},
		{
			Source:                  "volunteermatch",
			Title:                   "Hospital Patient Greeter",
			Organization:            "Regional Medical Center",
			Description:             "Welcome visitors, provide directions, and assist patients with check-in. Friendly personality essential.",
			CauseAreas:              []string{"health"},
			SkillsNeeded:            []string{"Communication", "Compassion", "Reliability"},
			PopulationsServed:       []string{"adults", "seniors"},
			CommitmentType:          model.CommitmentRecurring,
			HoursPerWeekMin:         4,
			HoursPerWeekMax:         8,
			BackgroundCheckRequired: true,
			TrainingProvided:        true,
		},
		{
			Source:                  "americorps",
			Title:                   "AmeriCorps Education Fellow",
			Organization:            "AmeriCorps VISTA",
			Description:             "Full-time service position helping under-resourced schools. Living stipend, education award, and healthcare provided.",
			CauseAreas:              []string{"education", "poverty"},
			SkillsNeeded:            []string{"Teaching", "Leadership", "Commitment"},
			PopulationsServed:       []string{"children", "teens"},
			CommitmentType:          model.CommitmentOngoing,
			HoursPerWeekMin:         40,
			HoursPerWeekMax:         40,
			BackgroundCheckRequired: true,
			TrainingProvided:        true,
			MinAge:                  18,
		},
		{
			Source:                  "volunteermatch",
			Title:                   "Crisis Text Line Counselor",
			Organization:            "Crisis Text Line",
			Description:             "Support people in crisis via text messaging. Extensive training provided. Minimum 4-hour weekly commitment for 1 year.",
			CauseAreas:              []string{"mental_health", "health"},
			SkillsNeeded:            []string{"Empathy", "Communication", "Emotional resilience"},
			PopulationsServed:       []string{"teens", "adults"},
			CommitmentType:          model.CommitmentRecurring,
			HoursPerWeekMin:         4,
			HoursPerWeekMax:         4,
			BackgroundCheckRequired: true,
			TrainingProvided:        true,
			IsVirtual:               true,
			MinAge:                  18,
		},
	}

	for i := range samples {
		samples[i].ID = model.OpportunityID(samples[i].Source, samples[i].SourceID, samples[i].Title, samples[i].Organization)
		samples[i].SourceURL = sourceURLs[samples[i].Source]
		samples[i].IsActive = true
	}

	return samples
}
