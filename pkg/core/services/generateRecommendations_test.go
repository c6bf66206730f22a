package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/volunteerconnect/hub/internal/config"
	"github.com/volunteerconnect/hub/pkg/core/model"
	"github.com/volunteerconnect/hub/pkg/db"
)

// mockRecommendationsStore implements RecommendationsStore for testing
type mockRecommendationsStore struct {
	profiles      map[string]model.Profile
	opportunities []model.Opportunity
	saved         []db.RecommendationRecord
	profileErr    error
	listErr       error
	saveErr       error
}

func (m *mockRecommendationsStore) GetProfile(ctx context.Context, id string) (model.Profile, error) {
	if m.profileErr != nil {
		return model.Profile{}, m.profileErr
	}
	p, ok := m.profiles[id]
	if !ok {
		return model.Profile{}, fmt.Errorf("profile %s not found", id)
	}
	return p, nil
}

func (m *mockRecommendationsStore) ListOpportunities(ctx context.Context, activeOnly bool) ([]model.Opportunity, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if !activeOnly {
		return m.opportunities, nil
	}
	var active []model.Opportunity
	for _, o := range m.opportunities {
		if o.IsActive {
			active = append(active, o)
		}
	}
	return active, nil
}

func (m *mockRecommendationsStore) SaveRecommendations(ctx context.Context, records []db.RecommendationRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, records...)
	return nil
}

func matchingProfile() model.Profile {
	return model.Profile{
		ID:                       "vol-1",
		Email:                    "maria@example.com",
		FirstName:                "Maria",
		CausesInterested:         []string{"education", "youth"},
		Skills:                   skillsNamed("teaching", "spanish"),
		AvailabilityHoursPerWeek: 5,
		AvailabilityDays:         []string{"saturday"},
		PrefersInPerson:          true,
		PopulationsInterested:    []string{"children"},
		Goals:                    []string{"give_back"},
		ProfileComplete:          true,
	}
}

func skillsNamed(names ...string) []model.Skill {
	skills := make([]model.Skill, 0, len(names))
	for _, n := range names {
		skills = append(skills, model.Skill{Name: n, Level: model.SkillIntermediate})
	}
	return skills
}

func testOpportunities() []model.Opportunity {
	return []model.Opportunity{
		{
			ID:                "opp-tutoring",
			Title:             "Youth Tutoring",
			Organization:      "City Tutors",
			CauseAreas:        []string{"education", "children"},
			SkillsNeeded:      []string{"teaching", "patience"},
			PopulationsServed: []string{"children"},
			HoursPerWeekMin:   2,
			HoursPerWeekMax:   4,
			IsActive:          true,
		},
		{
			ID:         "opp-unrelated",
			Title:      "Tax Preparation Help",
			CauseAreas: []string{"economic_opportunity"},
			IsActive:   true,
		},
		{
			ID:         "opp-inactive",
			Title:      "Closed Program",
			CauseAreas: []string{"education"},
			IsActive:   false,
		},
	}
}

func TestGenerateRecommendations_RanksAndPersists(t *testing.T) {
	mockStore := &mockRecommendationsStore{
		profiles:      map[string]model.Profile{"vol-1": matchingProfile()},
		opportunities: testOpportunities(),
	}
	cfg := &config.Config{MaxRecommendations: 10}
	ctx := context.Background()

	recommendations, err := GenerateRecommendations(ctx, mockStore, cfg, zap.NewNop(), "vol-1")

	require.NoError(t, err)
	require.NotEmpty(t, recommendations)

	// The tutoring opportunity should lead and the inactive one never appears
	assert.Equal(t, "opp-tutoring", recommendations[0].Opportunity.ID)
	assert.Equal(t, 1, recommendations[0].Rank)
	for _, rec := range recommendations {
		assert.NotEqual(t, "opp-inactive", rec.Opportunity.ID)
	}

	// Every returned recommendation was persisted with matching fields
	require.Len(t, mockStore.saved, len(recommendations))
	for i, record := range mockStore.saved {
		assert.NotEmpty(t, record.ID)
		assert.Equal(t, "vol-1", record.ProfileID)
		assert.Equal(t, recommendations[i].Opportunity.ID, record.OpportunityID)
		assert.Equal(t, recommendations[i].Score.TotalScore, record.TotalScore)
		assert.Equal(t, recommendations[i].Rank, record.Rank)
		assert.False(t, record.CreatedAt.IsZero())
	}
}

func TestGenerateRecommendations_RespectsMaxRecommendations(t *testing.T) {
	profile := matchingProfile()
	opportunities := []model.Opportunity{}
	for i := 0; i < 5; i++ {
		opportunities = append(opportunities, model.Opportunity{
			ID:         fmt.Sprintf("opp-%d", i),
			Title:      fmt.Sprintf("Opportunity %d", i),
			CauseAreas: []string{"education"},
			IsActive:   true,
		})
	}
	mockStore := &mockRecommendationsStore{
		profiles:      map[string]model.Profile{"vol-1": profile},
		opportunities: opportunities,
	}
	cfg := &config.Config{MaxRecommendations: 2}

	recommendations, err := GenerateRecommendations(context.Background(), mockStore, cfg, zap.NewNop(), "vol-1")

	require.NoError(t, err)
	assert.Len(t, recommendations, 2)
	assert.Len(t, mockStore.saved, 2)
}

func TestGenerateRecommendations_ProfileNotFound(t *testing.T) {
	mockStore := &mockRecommendationsStore{profiles: map[string]model.Profile{}}
	cfg := &config.Config{MaxRecommendations: 10}

	_, err := GenerateRecommendations(context.Background(), mockStore, cfg, zap.NewNop(), "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch profile")
	assert.Empty(t, mockStore.saved)
}

func TestGenerateRecommendations_SaveFailure(t *testing.T) {
	mockStore := &mockRecommendationsStore{
		profiles:      map[string]model.Profile{"vol-1": matchingProfile()},
		opportunities: testOpportunities(),
		saveErr:       fmt.Errorf("connection refused"),
	}
	cfg := &config.Config{MaxRecommendations: 10}

	_, err := GenerateRecommendations(context.Background(), mockStore, cfg, zap.NewNop(), "vol-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save recommendations")
}
