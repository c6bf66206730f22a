package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/volunteerconnect/hub/internal/config"
	"github.com/volunteerconnect/hub/pkg/core/matching"
	"github.com/volunteerconnect/hub/pkg/core/model"
	"github.com/volunteerconnect/hub/pkg/db"
)

// RecommendationsStore defines the database operations needed for generating recommendations
type RecommendationsStore interface {
	GetProfile(ctx context.Context, id string) (model.Profile, error)
	ListOpportunities(ctx context.Context, activeOnly bool) ([]model.Opportunity, error)
	SaveRecommendations(ctx context.Context, records []db.RecommendationRecord) error
}

// GenerateRecommendations scores all active opportunities against a volunteer's
// profile, persists the ranked results, and returns them best match first
func GenerateRecommendations(
	ctx context.Context,
	database RecommendationsStore,
	cfg *config.Config,
	logger *zap.Logger,
	profileID string,
) ([]matching.Recommendation, error) {
	logger.Debug("Starting generateRecommendations", zap.String("profile_id", profileID))

	// Step 1: Fetch the volunteer's profile
	logger.Debug("Fetching profile")
	profile, err := database.GetProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s: %w", profileID, err)
	}

	if !profile.ProfileComplete {
		logger.Warn("Profile is incomplete, recommendations may be weak",
			zap.String("profile_id", profileID))
	}

	// Step 2: Fetch active opportunities
	logger.Debug("Fetching active opportunities")
	opportunities, err := database.ListOpportunities(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch opportunities: %w", err)
	}
	logger.Debug("Found opportunities", zap.Int("count", len(opportunities)))

	// Step 3: Score and rank
	scorer, err := matching.NewScorer()
	if err != nil {
		return nil, fmt.Errorf("failed to create scorer: %w", err)
	}

	ranker := matching.NewRanker(scorer).WithMaxResults(cfg.MaxRecommendations)
	if cfg.MinMatchScore > 0 {
		ranker = ranker.WithMinScore(cfg.MinMatchScore)
	}

	candidates := make([]*model.Opportunity, len(opportunities))
	for i := range opportunities {
		candidates[i] = &opportunities[i]
	}

	recommendations := ranker.Rank(&profile, candidates)
	logger.Debug("Ranked opportunities", zap.Int("count", len(recommendations)))

	// Step 4: Persist the run
	now := time.Now()
	records := make([]db.RecommendationRecord, 0, len(recommendations))
	for _, rec := range recommendations {
		records = append(records, db.RecommendationRecord{
			ID:            uuid.NewString(),
			ProfileID:     profile.ID,
			OpportunityID: rec.Opportunity.ID,
			TotalScore:    rec.Score.TotalScore,
			FactorScores:  rec.Score.FactorScores,
			MatchReasons:  rec.Score.MatchReasons,
			Rank:          rec.Rank,
			CreatedAt:     now,
		})
	}

	if err := database.SaveRecommendations(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save recommendations: %w", err)
	}
	logger.Info("Saved recommendations",
		zap.String("profile_id", profileID),
		zap.Int("count", len(records)))

	return recommendations, nil
}
