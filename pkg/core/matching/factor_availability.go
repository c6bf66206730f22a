package matching

import (
	"fmt"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

// AvailabilityFitFactor scores whether the volunteer's weekly hours fit
// the opportunity's commitment.
//
// Scoring:
//   - Opportunity max hours of 0 means flexible: 90 regardless of the
//     volunteer's hours
//   - Volunteer hours unknown: 50
//   - Enough time for the full range: 100; covers the minimum only: 80
//   - Short by at most 2 hours: 60; larger shortfall: 30
type AvailabilityFitFactor struct{}

func (AvailabilityFitFactor) Name() string { return FactorAvailabilityFit }

func (AvailabilityFitFactor) Weight() float64 { return 0.15 }

func (AvailabilityFitFactor) Score(p *model.Profile, o *model.Opportunity) (float64, []string) {
	userHours := p.AvailabilityHoursPerWeek

	if o.HoursPerWeekMax == 0 {
		return 90, []string{"Flexible time commitment"}
	}

	if userHours == 0 {
		return 50, nil
	}

	if userHours >= o.HoursPerWeekMin {
		if o.HoursPerWeekMax <= userHours {
			return 100, []string{fmt.Sprintf("Perfect fit for your %dhrs/week", userHours)}
		}
		return 80, []string{fmt.Sprintf("Fits within your %dhrs/week availability", userHours)}
	}

	shortage := o.HoursPerWeekMin - userHours
	if shortage <= 2 {
		return 60, []string{"May require slightly more time than usual"}
	}
	return 30, []string{"Requires more hours than your stated availability"}
}
