package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

// MatchScore is the detailed result of scoring one profile against one
// opportunity. It is created fresh per scoring call and never mutated
// afterwards.
type MatchScore struct {
	// TotalScore is the weighted sum of factor scores, 0-100,
	// rounded to one decimal place
	TotalScore float64

	// FactorScores maps factor name to its 0-100 score
	FactorScores map[string]float64

	// MatchReasons are human-readable reasons this opportunity fits,
	// in factor order
	MatchReasons []string

	// ImprovementSuggestions are hints for weak factors
	ImprovementSuggestions []string
}

// Scorer computes multi-factor match scores. The zero value is not
// usable; construct with NewScorer.
type Scorer struct {
	factors []Factor
}

// NewScorer creates a Scorer with the standard factor set. It returns an
// error if the factor weights do not sum to exactly 1.0, since a skewed
// weight scheme silently distorts every score.
func NewScorer() (*Scorer, error) {
	s := &Scorer{
		factors: []Factor{
			CauseAlignmentFactor{},
			SkillMatchFactor{},
			AvailabilityFitFactor{},
			LocationProximityFactor{},
			VirtualPreferenceFactor{},
			PopulationInterestFactor{},
			GoalAlignmentFactor{},
		},
	}

	var sum float64
	for _, f := range s.factors {
		sum += f.Weight()
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return nil, fmt.Errorf("factor weights sum to %v, expected 1.0", sum)
	}

	return s, nil
}

// Score calculates the match score between a profile and an opportunity.
// It is pure and never fails: missing optional fields score through each
// factor's neutral branch.
func (s *Scorer) Score(p *model.Profile, o *model.Opportunity) MatchScore {
	factorScores := make(map[string]float64, len(s.factors))
	var reasons []string
	total := 0.0

	for _, f := range s.factors {
		score, factorReasons := f.Score(p, o)
		factorScores[f.Name()] = score
		total += score * f.Weight()
		for _, r := range factorReasons {
			if r != "" {
				reasons = append(reasons, r)
			}
		}
	}

	return MatchScore{
		TotalScore:             math.Round(total*10) / 10,
		FactorScores:           factorScores,
		MatchReasons:           reasons,
		ImprovementSuggestions: buildSuggestions(factorScores, o),
	}
}

// buildSuggestions generates improvement hints for weak factors
func buildSuggestions(factorScores map[string]float64, o *model.Opportunity) []string {
	var suggestions []string

	if factorScores[FactorSkillMatch] < 50 && len(o.SkillsNeeded) > 0 {
		skills := o.SkillsNeeded
		if len(skills) > 3 {
			skills = skills[:3]
		}
		suggestions = append(suggestions, "Consider developing skills in: "+strings.Join(skills, ", "))
	}

	if factorScores[FactorAvailabilityFit] < 50 {
		suggestions = append(suggestions, "This opportunity may require adjusting your availability")
	}

	return suggestions
}
