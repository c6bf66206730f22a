package matching

import (
	"sort"
	"strings"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

// Factor names as they appear in MatchScore.FactorScores
const (
	FactorCauseAlignment     = "cause_alignment"
	FactorSkillMatch         = "skill_match"
	FactorAvailabilityFit    = "availability_fit"
	FactorLocationProximity  = "location_proximity"
	FactorVirtualPreference  = "virtual_preference"
	FactorPopulationInterest = "population_interest"
	FactorGoalAlignment      = "goal_alignment"
)

// Factor scores one dimension of compatibility between a profile and an
// opportunity. Implementations are pure: no I/O, no state, deterministic
// for identical inputs. Scores are in [0, 100]; missing inputs take the
// factor's neutral branch rather than producing an error.
type Factor interface {
	// Name is the key used for this factor in MatchScore.FactorScores
	Name() string

	// Weight is this factor's share of the total score. All factor
	// weights in a Scorer must sum to exactly 1.0.
	Weight() float64

	// Score returns the 0-100 factor score and any human-readable
	// match reasons this factor contributes.
	Score(p *model.Profile, o *model.Opportunity) (float64, []string)
}

// lowerSet builds a case-insensitive membership set from a string slice
func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

// intersect returns the members of set present in values (lowercased)
func intersect(set map[string]bool, values []string) []string {
	var matches []string
	for _, v := range values {
		if set[strings.ToLower(v)] {
			matches = append(matches, strings.ToLower(v))
		}
	}
	return matches
}

// joinSorted renders a membership set as a comma-separated list in a
// deterministic order, so reason strings are stable across runs
func joinSorted(set map[string]bool) string {
	members := make([]string, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	sort.Strings(members)
	return strings.Join(members, ", ")
}
