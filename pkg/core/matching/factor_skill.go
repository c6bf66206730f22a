package matching

import (
	"fmt"
	"strings"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

// SkillMatchFactor scores how well the volunteer's skills cover the
// opportunity's required skills.
//
// Scoring:
//   - Opportunity lists no skills: 80 (anyone can do it)
//   - Volunteer has no skills: 60 if training is provided, otherwise 30
//   - No exact overlap: 50 for a partial (substring) match, 40 if
//     training is provided, otherwise 20
//   - Overlap: match percentage of required skills * 100, plus a 20
//     point bonus for having any match, capped at 100
type SkillMatchFactor struct{}

func (SkillMatchFactor) Name() string { return FactorSkillMatch }

func (SkillMatchFactor) Weight() float64 { return 0.25 }

func (SkillMatchFactor) Score(p *model.Profile, o *model.Opportunity) (float64, []string) {
	if len(o.SkillsNeeded) == 0 {
		return 80, []string{"No specific skills required"}
	}

	if len(p.Skills) == 0 {
		if o.TrainingProvided {
			return 60, []string{"Training provided - great for learning"}
		}
		return 30, nil
	}

	userSkills := make(map[string]bool, len(p.Skills))
	for _, s := range p.Skills {
		userSkills[strings.ToLower(s.Name)] = true
	}

	matched := intersect(userSkills, o.SkillsNeeded)

	if len(matched) == 0 {
		if hasPartialSkillMatch(userSkills, o.SkillsNeeded) {
			return 50, []string{"Your skills are related to requirements"}
		}
		if o.TrainingProvided {
			return 40, []string{"Training provided for required skills"}
		}
		return 20, nil
	}

	matchPct := float64(len(matched)) / float64(len(o.SkillsNeeded)) * 100

	// Preserve the opportunity's original casing in the reason
	matchedSet := lowerSet(matched)
	var matchedNames []string
	for _, s := range o.SkillsNeeded {
		if matchedSet[strings.ToLower(s)] {
			matchedNames = append(matchedNames, s)
		}
	}
	if len(matchedNames) > 3 {
		matchedNames = matchedNames[:3]
	}
	reasons := []string{fmt.Sprintf("Uses your skills in %s", strings.Join(matchedNames, ", "))}

	score := matchPct + 20 // bonus for any match
	if score > 100 {
		score = 100
	}
	return score, reasons
}

// hasPartialSkillMatch reports whether any user skill is a substring of a
// required skill or vice versa, e.g. "teaching" vs "teaching assistant"
func hasPartialSkillMatch(userSkills map[string]bool, skillsNeeded []string) bool {
	for us := range userSkills {
		for _, os := range skillsNeeded {
			osLower := strings.ToLower(os)
			if strings.Contains(osLower, us) || strings.Contains(us, osLower) {
				return true
			}
		}
	}
	return false
}
