package volunteermatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

func TestIsConfigured(t *testing.T) {
	assert.False(t, NewClient("", "", zap.NewNop()).IsConfigured())
	assert.True(t, NewClient("user", "key", zap.NewNop()).IsConfigured())
}

func TestWSSEHeader_Shape(t *testing.T) {
	c := NewClient("hub-user", "secret-key", zap.NewNop())

	header, err := c.wsseHeader()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(header, `UsernameToken Username="hub-user"`))
	assert.Contains(t, header, "PasswordDigest=")
	assert.Contains(t, header, "Nonce=")
	assert.Contains(t, header, "Created=")
}

func TestSearchOpportunities_MapsListings(t *testing.T) {
	var gotAction string
	var gotWSSE string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAction = r.URL.Query().Get("action")
		gotWSSE = r.Header.Get("X-WSSE")

		resp := map[string]any{
			"opportunities": []map[string]any{
				{
					"id":                      12345,
					"title":                   "Classroom Reading Helper",
					"plaintextDescription":    "Read with second graders.",
					"parentOrg":               map[string]any{"name": "City Schools Foundation"},
					"vmUrl":                   "https://www.volunteermatch.org/opp/12345",
					"location":                map[string]any{"city": "Springfield", "region": "IL"},
					"virtual":                 false,
					"categoryIds":             []int{5, 10},
					"skillsNeeded":            []string{"Reading", "Patience"},
					"requiresBackgroundCheck": true,
					"minimumAge":              16,
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	c := NewClient("hub-user", "secret-key", zap.NewNop()).WithBaseURL(server.URL)

	opps, err := c.SearchOpportunities(context.Background(), SearchParams{Location: "Springfield, IL"})
	require.NoError(t, err)

	assert.Equal(t, "searchOpportunities", gotAction)
	assert.NotEmpty(t, gotWSSE)

	require.Len(t, opps, 1)
	o := opps[0]
	assert.Equal(t, "volunteermatch", o.Source)
	assert.Equal(t, "12345", o.SourceID)
	assert.Equal(t, "Classroom Reading Helper", o.Title)
	assert.Equal(t, "City Schools Foundation", o.Organization)
	assert.Equal(t, "Read with second graders.", o.Description)
	assert.Equal(t, "Springfield", o.LocationCity)
	assert.Equal(t, []string{"education", "youth"}, o.CauseAreas)
	assert.Equal(t, []string{"children", "teens"}, o.PopulationsServed)
	assert.Equal(t, model.CommitmentOngoing, o.CommitmentType)
	assert.True(t, o.BackgroundCheckRequired)
	assert.True(t, o.TrainingProvided)
	assert.True(t, o.IsActive)
	assert.Len(t, o.ID, 16)
}

func TestSearchOpportunities_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(map[string]string{"error": "quota exceeded"}))
	}))
	defer server.Close()

	c := NewClient("hub-user", "secret-key", zap.NewNop()).WithBaseURL(server.URL)

	_, err := c.SearchOpportunities(context.Background(), SearchParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestSearchOpportunities_Unconfigured(t *testing.T) {
	c := NewClient("", "", zap.NewNop())

	_, err := c.SearchOpportunities(context.Background(), SearchParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestGetOpportunity_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"opportunities": []any{}}))
	}))
	defer server.Close()

	c := NewClient("hub-user", "secret-key", zap.NewNop()).WithBaseURL(server.URL)

	_, err := c.GetOpportunity(context.Background(), "99999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFetchOpportunities_FallsBackToSamples(t *testing.T) {
	c := NewClient("", "", zap.NewNop())

	opps, err := c.FetchOpportunities(context.Background(), nil, "", true, 5)
	require.NoError(t, err)

	assert.Len(t, opps, 12)
	for _, o := range opps {
		assert.Len(t, o.ID, 16)
		assert.True(t, o.IsActive)
		assert.NotEmpty(t, o.CauseAreas)
	}
}

func TestSampleOpportunities_StableIDs(t *testing.T) {
	first := SampleOpportunities()
	second := SampleOpportunities()

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestCausesForCategories(t *testing.T) {
	assert.Equal(t, []string{"education", "youth"}, causesForCategories([]int{5}))
	assert.Equal(t, []string{"health", "mental_health"}, causesForCategories([]int{15}))
	assert.Equal(t, []string{"community"}, causesForCategories([]int{27}))
	assert.Equal(t, []string{"community"}, causesForCategories(nil))
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "education_literacy", CategoryName(10))
	assert.Equal(t, "unknown", CategoryName(99))
}
