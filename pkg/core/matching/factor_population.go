package matching

import (
	"fmt"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

// PopulationInterestFactor scores overlap between the populations the
// volunteer wants to serve and those the opportunity serves.
//
// Scoring:
//   - Any overlap: 100
//   - Either side unspecified: 70 (neutral)
//   - Both specified but disjoint: 50
type PopulationInterestFactor struct{}

func (PopulationInterestFactor) Name() string { return FactorPopulationInterest }

func (PopulationInterestFactor) Weight() float64 { return 0.10 }

func (PopulationInterestFactor) Score(p *model.Profile, o *model.Opportunity) (float64, []string) {
	if len(p.PopulationsInterested) == 0 || len(o.PopulationsServed) == 0 {
		return 70, nil
	}

	userPops := lowerSet(p.PopulationsInterested)
	matches := intersect(userPops, o.PopulationsServed)

	if len(matches) > 0 {
		return 100, []string{fmt.Sprintf("Serves %s - your preferred population", joinSorted(lowerSet(matches)))}
	}

	return 50, nil
}
