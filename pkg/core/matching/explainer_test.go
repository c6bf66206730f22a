package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

func TestExplain_FullRecommendation(t *testing.T) {
	scorer, err := NewScorer()
	require.NoError(t, err)

	o := tutoringOpportunity()
	rec := Recommendation{
		Opportunity: o,
		Score:       scorer.Score(tutoringProfile(), o),
		Rank:        1,
	}

	text := Explain(rec)

	assert.Contains(t, text, "**Youth Tutoring** (Match: ")
	assert.Contains(t, text, "Organization: City Learning Center")
	assert.Contains(t, text, "**Why we think you'd be great for this:**")
	assert.Contains(t, text, "• Aligns with your passion for education, youth")
	assert.Contains(t, text, "**Commitment:** 2-4 hours/week (In-person)")
}

func TestExplain_MissingFieldsUseFallbacks(t *testing.T) {
	rec := Recommendation{
		Opportunity: &model.Opportunity{IsVirtual: true},
		Score:       MatchScore{TotalScore: 42.5},
	}

	text := Explain(rec)

	assert.Contains(t, text, "**Opportunity** (Match: 42.5%)")
	assert.Contains(t, text, "Organization: Unknown")
	assert.Contains(t, text, "**Commitment:** Flexible (Remote)")
	assert.NotContains(t, text, "Why we think")
}

func TestExplain_NilOpportunity(t *testing.T) {
	text := Explain(Recommendation{Score: MatchScore{TotalScore: 10}})

	assert.Contains(t, text, "**Opportunity** (Match: 10%)")
	assert.Contains(t, text, "Organization: Unknown")
}

func TestExplain_IncludesTips(t *testing.T) {
	rec := Recommendation{
		Opportunity: &model.Opportunity{Title: "Food Bank Sorter", Organization: "Harvest Share"},
		Score: MatchScore{
			TotalScore:             55.0,
			ImprovementSuggestions: []string{"Consider developing skills in: Logistics"},
		},
	}

	text := Explain(rec)

	assert.Contains(t, text, "**Tips for success:**")
	assert.Contains(t, text, "• Consider developing skills in: Logistics")
}
