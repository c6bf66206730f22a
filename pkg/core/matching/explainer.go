package matching

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

// Explain renders a human-readable rationale for one recommendation:
// title, organization, match percentage, the reasons behind the score,
// the time commitment, and any tips for weak factors. Pure formatting,
// with fallback literals for missing fields.
func Explain(rec Recommendation) string {
	o := rec.Opportunity
	score := rec.Score

	title := "Opportunity"
	organization := "Unknown"
	if o != nil {
		if o.Title != "" {
			title = o.Title
		}
		if o.Organization != "" {
			organization = o.Organization
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (Match: %s%%)\n\n", title, strconv.FormatFloat(score.TotalScore, 'f', -1, 64))
	fmt.Fprintf(&b, "Organization: %s\n\n", organization)

	if len(score.MatchReasons) > 0 {
		b.WriteString("**Why we think you'd be great for this:**\n")
		for _, reason := range score.MatchReasons {
			fmt.Fprintf(&b, "• %s\n", reason)
		}
	}

	b.WriteString("\n**Commitment:** ")
	if o != nil && o.HoursPerWeekMax > 0 {
		fmt.Fprintf(&b, "%d-%d hours/week", o.HoursPerWeekMin, o.HoursPerWeekMax)
	} else {
		b.WriteString("Flexible")
	}
	if o != nil && o.IsVirtual {
		b.WriteString(" (Remote)")
	} else {
		b.WriteString(" (In-person)")
	}

	if len(score.ImprovementSuggestions) > 0 {
		b.WriteString("\n\n**Tips for success:**\n")
		for _, tip := range score.ImprovementSuggestions {
			fmt.Fprintf(&b, "• %s\n", tip)
		}
	}

	return b.String()
}

// CauseCount pairs a cause area with how many candidate opportunities
// match it for a given volunteer.
type CauseCount struct {
	Cause string
	Count int
}

// TopCauses counts, for each of the volunteer's interested causes, how
// many opportunities serve it, and returns the five most common in
// descending order. Ties keep cause-name order for determinism.
func TopCauses(p *model.Profile, opportunities []*model.Opportunity) []CauseCount {
	userCauses := lowerSet(p.CausesInterested)

	counts := make(map[string]int)
	for _, o := range opportunities {
		for _, cause := range o.CauseAreas {
			if userCauses[strings.ToLower(cause)] {
				counts[cause]++
			}
		}
	}

	out := make([]CauseCount, 0, len(counts))
	for cause, n := range counts {
		out = append(out, CauseCount{Cause: cause, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Cause < out[j].Cause
	})

	if len(out) > 5 {
		out = out[:5]
	}
	return out
}
