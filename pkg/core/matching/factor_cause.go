package matching

import (
	"fmt"
	"strings"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

// CauseAlignmentFactor scores how well the opportunity's cause areas match
// the causes the volunteer cares about.
//
// Scoring:
//   - Each direct cause match is worth 40 points
//   - Each related-cause match (via the relatedCauses table) is worth 20
//   - The combined score is capped at 100
//   - Zero if either side has no cause areas at all
type CauseAlignmentFactor struct{}

func (CauseAlignmentFactor) Name() string { return FactorCauseAlignment }

func (CauseAlignmentFactor) Weight() float64 { return 0.30 }

func (CauseAlignmentFactor) Score(p *model.Profile, o *model.Opportunity) (float64, []string) {
	if len(p.CausesInterested) == 0 || len(o.CauseAreas) == 0 {
		return 0, nil
	}

	oppCauses := lowerSet(o.CauseAreas)

	direct := make(map[string]bool)
	related := make(map[string]bool)
	for _, cause := range p.CausesInterested {
		cause = strings.ToLower(cause)
		if oppCauses[cause] {
			direct[cause] = true
		}
		for _, rel := range relatedCauses[cause] {
			if oppCauses[rel] {
				related[rel] = true
			}
		}
	}

	score := float64(len(direct))*40 + float64(len(related))*20
	if score > 100 {
		score = 100
	}

	var reasons []string
	if len(direct) > 0 {
		reasons = append(reasons, fmt.Sprintf("Aligns with your passion for %s", joinSorted(direct)))
	} else if len(related) > 0 {
		reasons = append(reasons, "Related to your interests")
	}

	return score, reasons
}
