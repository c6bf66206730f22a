package matching

import (
	"sort"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

// DefaultMinScore is the threshold below which a match is not worth
// recommending.
const DefaultMinScore = 20.0

// DefaultMaxResults caps how many recommendations a ranking returns by
// default.
const DefaultMaxResults = 10

// Recommendation is one ranked entry produced by the Ranker. Rank is
// 1-based within the returned list.
type Recommendation struct {
	Opportunity *model.Opportunity
	Score       MatchScore
	Rank        int
}

// Ranker scores a candidate set against a profile and produces an
// ordered shortlist.
type Ranker struct {
	scorer     *Scorer
	minScore   float64
	maxResults int
}

// NewRanker creates a Ranker with the default threshold and result cap.
func NewRanker(scorer *Scorer) *Ranker {
	return &Ranker{
		scorer:     scorer,
		minScore:   DefaultMinScore,
		maxResults: DefaultMaxResults,
	}
}

// WithMaxResults returns the ranker with a different result cap. A cap
// below 1 is ignored.
func (r *Ranker) WithMaxResults(n int) *Ranker {
	if n >= 1 {
		r.maxResults = n
	}
	return r
}

// WithMinScore returns the ranker with a different score threshold.
func (r *Ranker) WithMinScore(min float64) *Ranker {
	if min >= 0 {
		r.minScore = min
	}
	return r
}

// Rank scores every opportunity for the profile, drops scores below the
// threshold, and returns the top entries in descending score order. Ties
// keep their input order. The result is never nil. Callers that only want
// active opportunities filter the candidate set before ranking.
func (r *Ranker) Rank(p *model.Profile, opportunities []*model.Opportunity) []Recommendation {
	recs := make([]Recommendation, 0, len(opportunities))

	for _, o := range opportunities {
		score := r.scorer.Score(p, o)
		if score.TotalScore < r.minScore {
			continue
		}
		recs = append(recs, Recommendation{Opportunity: o, Score: score})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score.TotalScore > recs[j].Score.TotalScore
	})

	if len(recs) > r.maxResults {
		recs = recs[:r.maxResults]
	}

	for i := range recs {
		recs[i].Rank = i + 1
	}

	return recs
}
