package db

import (
	"context"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

// ProfileStore defines profile persistence operations
type ProfileStore interface {
	GetProfile(ctx context.Context, id string) (model.Profile, error)
	UpsertProfile(ctx context.Context, profile model.Profile) error
	ListProfiles(ctx context.Context) ([]model.Profile, error)
}

// OpportunityStore defines opportunity persistence operations
type OpportunityStore interface {
	GetOpportunity(ctx context.Context, id string) (model.Opportunity, error)
	UpsertOpportunities(ctx context.Context, opportunities []model.Opportunity) (int, error)
	ListOpportunities(ctx context.Context, activeOnly bool) ([]model.Opportunity, error)
}

// RecommendationStore defines recommendation persistence operations
type RecommendationStore interface {
	SaveRecommendations(ctx context.Context, records []RecommendationRecord) error
	ListRecommendations(ctx context.Context, profileID string) ([]RecommendationRecord, error)
}
