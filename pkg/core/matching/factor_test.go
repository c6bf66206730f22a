package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

func TestCauseAlignment_EmptyEitherSideScoresZero(t *testing.T) {
	f := CauseAlignmentFactor{}

	score, reasons := f.Score(&model.Profile{}, &model.Opportunity{CauseAreas: []string{"education"}})
	assert.Equal(t, 0.0, score)
	assert.Empty(t, reasons)

	score, _ = f.Score(&model.Profile{CausesInterested: []string{"education"}}, &model.Opportunity{})
	assert.Equal(t, 0.0, score)
}

func TestCauseAlignment_DirectAndRelatedMatches(t *testing.T) {
	f := CauseAlignmentFactor{}

	p := &model.Profile{CausesInterested: []string{"Education"}}

	score, reasons := f.Score(p, &model.Opportunity{CauseAreas: []string{"education"}})
	assert.Equal(t, 40.0, score)
	assert.Contains(t, reasons, "Aligns with your passion for education")

	score, reasons = f.Score(p, &model.Opportunity{CauseAreas: []string{"literacy"}})
	assert.Equal(t, 20.0, score)
	assert.Contains(t, reasons, "Related to your interests")
}

func TestCauseAlignment_CappedAt100(t *testing.T) {
	f := CauseAlignmentFactor{}

	p := &model.Profile{CausesInterested: []string{"education", "youth", "health"}}
	o := &model.Opportunity{CauseAreas: []string{"education", "youth", "health"}}

	score, _ := f.Score(p, o)
	assert.Equal(t, 100.0, score)
}

func TestSkillMatch_NoSkillsRequired(t *testing.T) {
	f := SkillMatchFactor{}

	score, reasons := f.Score(&model.Profile{}, &model.Opportunity{})
	assert.Equal(t, 80.0, score)
	assert.Contains(t, reasons, "No specific skills required")

	withSkills := &model.Profile{Skills: []model.Skill{{Name: "Teaching"}}}
	score, _ = f.Score(withSkills, &model.Opportunity{})
	assert.Equal(t, 80.0, score)
}

func TestSkillMatch_NoUserSkills(t *testing.T) {
	f := SkillMatchFactor{}
	o := &model.Opportunity{SkillsNeeded: []string{"Teaching"}}

	score, _ := f.Score(&model.Profile{}, o)
	assert.Equal(t, 30.0, score)

	o.TrainingProvided = true
	score, reasons := f.Score(&model.Profile{}, o)
	assert.Equal(t, 60.0, score)
	assert.Contains(t, reasons, "Training provided - great for learning")
}

func TestSkillMatch_OverlapScoring(t *testing.T) {
	f := SkillMatchFactor{}

	p := &model.Profile{Skills: []model.Skill{
		{Name: "teaching"},
		{Name: "patience"},
	}}
	o := &model.Opportunity{SkillsNeeded: []string{"Teaching", "Patience"}}

	score, reasons := f.Score(p, o)
	assert.Equal(t, 100.0, score)
	assert.Contains(t, reasons, "Uses your skills in Teaching, Patience")

	half := &model.Profile{Skills: []model.Skill{{Name: "Teaching"}}}
	score, _ = f.Score(half, o)
	assert.Equal(t, 70.0, score)
}

func TestSkillMatch_PartialSubstringMatch(t *testing.T) {
	f := SkillMatchFactor{}

	p := &model.Profile{Skills: []model.Skill{{Name: "teaching"}}}
	o := &model.Opportunity{SkillsNeeded: []string{"Teaching Assistant"}}

	score, reasons := f.Score(p, o)
	assert.Equal(t, 50.0, score)
	assert.Contains(t, reasons, "Your skills are related to requirements")
}

func TestSkillMatch_NoOverlap(t *testing.T) {
	f := SkillMatchFactor{}

	p := &model.Profile{Skills: []model.Skill{{Name: "Cooking"}}}
	o := &model.Opportunity{SkillsNeeded: []string{"Legal Research"}}

	score, _ := f.Score(p, o)
	assert.Equal(t, 20.0, score)

	o.TrainingProvided = true
	score, _ = f.Score(p, o)
	assert.Equal(t, 40.0, score)
}

func TestAvailabilityFit_FlexibleMaxAlwaysHigh(t *testing.T) {
	f := AvailabilityFitFactor{}

	for _, hours := range []int{0, 1, 5, 40} {
		p := &model.Profile{AvailabilityHoursPerWeek: hours}
		score, _ := f.Score(p, &model.Opportunity{HoursPerWeekMax: 0})
		assert.GreaterOrEqual(t, score, 90.0)
	}
}

func TestAvailabilityFit_Ranges(t *testing.T) {
	f := AvailabilityFitFactor{}
	o := &model.Opportunity{HoursPerWeekMin: 4, HoursPerWeekMax: 6}

	score, _ := f.Score(&model.Profile{}, o)
	assert.Equal(t, 50.0, score)

	score, _ = f.Score(&model.Profile{AvailabilityHoursPerWeek: 8}, o)
	assert.Equal(t, 100.0, score)

	score, _ = f.Score(&model.Profile{AvailabilityHoursPerWeek: 5}, o)
	assert.Equal(t, 80.0, score)

	score, _ = f.Score(&model.Profile{AvailabilityHoursPerWeek: 3}, o)
	assert.Equal(t, 60.0, score)

	score, _ = f.Score(&model.Profile{AvailabilityHoursPerWeek: 1}, o)
	assert.Equal(t, 30.0, score)
}

func TestLocationScore_PreferenceCombinations(t *testing.T) {
	virtual := &model.Opportunity{IsVirtual: true}
	inPerson := &model.Opportunity{}

	score, _ := locationScore(&model.Profile{PrefersVirtual: true}, virtual)
	assert.Equal(t, 100.0, score)

	score, _ = locationScore(&model.Profile{PrefersInPerson: true}, virtual)
	assert.Equal(t, 60.0, score)

	score, _ = locationScore(&model.Profile{}, virtual)
	assert.Equal(t, 80.0, score)

	score, _ = locationScore(&model.Profile{PrefersInPerson: true}, inPerson)
	assert.Equal(t, 90.0, score)

	score, _ = locationScore(&model.Profile{PrefersVirtual: true}, inPerson)
	assert.Equal(t, 40.0, score)

	score, _ = locationScore(&model.Profile{}, inPerson)
	assert.Equal(t, 70.0, score)
}

func TestVirtualPreference_NoDuplicateReasons(t *testing.T) {
	p := &model.Profile{PrefersVirtual: true}
	o := &model.Opportunity{IsVirtual: true}

	_, locReasons := LocationProximityFactor{}.Score(p, o)
	_, virtReasons := VirtualPreferenceFactor{}.Score(p, o)

	assert.NotEmpty(t, locReasons)
	assert.Empty(t, virtReasons)
}

func TestPopulationInterest_OverlapNeutralDisjoint(t *testing.T) {
	f := PopulationInterestFactor{}

	score, reasons := f.Score(
		&model.Profile{PopulationsInterested: []string{"Children"}},
		&model.Opportunity{PopulationsServed: []string{"children", "families"}},
	)
	assert.Equal(t, 100.0, score)
	assert.Contains(t, reasons, "Serves children - your preferred population")

	score, _ = f.Score(&model.Profile{}, &model.Opportunity{PopulationsServed: []string{"seniors"}})
	assert.Equal(t, 70.0, score)

	score, _ = f.Score(
		&model.Profile{PopulationsInterested: []string{"seniors"}},
		&model.Opportunity{PopulationsServed: []string{"children"}},
	)
	assert.Equal(t, 50.0, score)
}

func TestGoalAlignment_InferredProvides(t *testing.T) {
	f := GoalAlignmentFactor{}

	score, _ := f.Score(&model.Profile{}, &model.Opportunity{})
	assert.Equal(t, 60.0, score)

	p := &model.Profile{Goals: []string{"Learn Skills", "Network", "Build Resume"}}
	o := &model.Opportunity{
		TrainingProvided: true,
		CommitmentType:   model.CommitmentRecurring,
	}

	score, reasons := f.Score(p, o)
	assert.Equal(t, 100.0, score)
	assert.Len(t, reasons, 2)
	assert.Contains(t, reasons, "Helps you learn skills")
}

func TestGoalAlignment_YouthPopulationsSatisfyMakeDifference(t *testing.T) {
	f := GoalAlignmentFactor{}

	p := &model.Profile{Goals: []string{"Make Difference"}}
	o := &model.Opportunity{PopulationsServed: []string{"Teens"}}

	score, reasons := f.Score(p, o)
	assert.Equal(t, 75.0, score)
	assert.Contains(t, reasons, "Helps you make difference")
}
