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
)

// mockCrawlStore implements CrawlStore for testing
type mockCrawlStore struct {
	stored []model.Opportunity
	err    error
}

func (m *mockCrawlStore) UpsertOpportunities(ctx context.Context, opportunities []model.Opportunity) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.stored = append(m.stored, opportunities...)
	return len(opportunities), nil
}

// mockOpportunityFetcher implements OpportunityFetcher for testing
type mockOpportunityFetcher struct {
	opportunities []model.Opportunity
	configured    bool
	err           error

	gotCauses   []string
	gotLocation string
}

func (m *mockOpportunityFetcher) FetchOpportunities(ctx context.Context, causes []string, location string, includeVirtual bool, maxPerCause int) ([]model.Opportunity, error) {
	m.gotCauses = causes
	m.gotLocation = location
	if m.err != nil {
		return nil, m.err
	}
	return m.opportunities, nil
}

func (m *mockOpportunityFetcher) IsConfigured() bool {
	return m.configured
}

func crawlConfig() *config.Config {
	return &config.Config{
		Crawl: config.CrawlConfig{
			Causes:      []string{"education", "environment"},
			Location:    "Seattle, WA",
			MaxPerCause: 10,
		},
	}
}

func TestCrawlOpportunities_FetchesAndStores(t *testing.T) {
	mockFetcher := &mockOpportunityFetcher{
		configured: true,
		opportunities: []model.Opportunity{
			{ID: "opp-1", Title: "Youth Tutoring", IsActive: true},
			{ID: "opp-2", Title: "Park Cleanup", IsActive: true},
		},
	}
	mockStore := &mockCrawlStore{}

	written, err := CrawlOpportunities(context.Background(), mockStore, mockFetcher, crawlConfig(), zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 2, written)
	assert.Len(t, mockStore.stored, 2)

	// Config values were forwarded to the fetcher
	assert.Equal(t, []string{"education", "environment"}, mockFetcher.gotCauses)
	assert.Equal(t, "Seattle, WA", mockFetcher.gotLocation)
}

func TestCrawlOpportunities_NothingFetched(t *testing.T) {
	mockFetcher := &mockOpportunityFetcher{configured: true}
	mockStore := &mockCrawlStore{}

	written, err := CrawlOpportunities(context.Background(), mockStore, mockFetcher, crawlConfig(), zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 0, written)
	assert.Empty(t, mockStore.stored)
}

func TestCrawlOpportunities_FetchFailure(t *testing.T) {
	mockFetcher := &mockOpportunityFetcher{
		configured: true,
		err:        fmt.Errorf("rate limited"),
	}
	mockStore := &mockCrawlStore{}

	_, err := CrawlOpportunities(context.Background(), mockStore, mockFetcher, crawlConfig(), zap.NewNop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch opportunities")
	assert.Empty(t, mockStore.stored)
}

func TestCrawlOpportunities_StoreFailure(t *testing.T) {
	mockFetcher := &mockOpportunityFetcher{
		configured:    true,
		opportunities: []model.Opportunity{{ID: "opp-1", Title: "Youth Tutoring"}},
	}
	mockStore := &mockCrawlStore{err: fmt.Errorf("connection refused")}

	_, err := CrawlOpportunities(context.Background(), mockStore, mockFetcher, crawlConfig(), zap.NewNop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store opportunities")
}
