package db

import "time"

// RecommendationRecord is a persisted recommendation from a scoring run.
// The opportunity snapshot lives in the opportunity table; this record
// keeps the score breakdown for later display.
type RecommendationRecord struct {
	ID            string
	ProfileID     string
	OpportunityID string
	TotalScore    float64
	FactorScores  map[string]float64
	MatchReasons  []string
	Rank          int
	CreatedAt     time.Time
}
