package matching

import (
	"fmt"
	"strings"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

// youthPopulations marks populations that imply direct impact on young
// people, which satisfies a "make a difference" goal.
var youthPopulations = map[string]bool{
	"children": true,
	"teens":    true,
	"youth":    true,
}

// GoalAlignmentFactor scores how well the opportunity serves the
// volunteer's stated goals (learn skills, build resume, network, ...).
//
// Scoring:
//   - No goals stated: 60 (neutral)
//   - Otherwise base 60, plus 15 per goal the opportunity can provide,
//     capped at 100. At most two goal reasons are reported.
//
// What an opportunity "provides" is inferred from its attributes:
// training implies learning, a recurring commitment implies resume
// building and networking, virtual implies flexibility, and serving
// young people implies making a difference.
type GoalAlignmentFactor struct{}

func (GoalAlignmentFactor) Name() string { return FactorGoalAlignment }

func (GoalAlignmentFactor) Weight() float64 { return 0.10 }

func (GoalAlignmentFactor) Score(p *model.Profile, o *model.Opportunity) (float64, []string) {
	if len(p.Goals) == 0 {
		return 60, nil
	}

	provides := inferProvides(o)

	score := 60.0
	var reasons []string
	for _, goal := range p.Goals {
		normalized := strings.ReplaceAll(strings.ToLower(goal), " ", "_")
		if provides[normalized] {
			score += 15
			reasons = append(reasons, fmt.Sprintf("Helps you %s", strings.ToLower(goal)))
		}
	}

	if score > 100 {
		score = 100
	}
	if len(reasons) > 2 {
		reasons = reasons[:2]
	}
	return score, reasons
}

// inferProvides derives the set of goals an opportunity can satisfy from
// its attributes
func inferProvides(o *model.Opportunity) map[string]bool {
	provides := make(map[string]bool)

	if o.TrainingProvided {
		provides["learn_skills"] = true
	}
	if o.IsVirtual {
		provides["flexible"] = true
	}
	if o.CommitmentType == model.CommitmentRecurring {
		provides["build_resume"] = true
		provides["network"] = true
	}
	for _, pop := range o.PopulationsServed {
		if youthPopulations[strings.ToLower(pop)] {
			provides["make_difference"] = true
			break
		}
	}

	return provides
}
