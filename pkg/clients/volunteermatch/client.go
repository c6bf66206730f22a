package volunteermatch

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

const defaultBaseURL = "https://www.volunteermatch.org/api/call"

// searchFields is the field set requested for every search
var searchFields = []string{
	"id", "title", "description", "plaintextDescription", "greatFor",
	"categoryIds", "skillsNeeded", "virtual", "vmUrl", "location",
	"parentOrg", "availability", "requiresBackgroundCheck",
	"requiresDriversLicense", "minimumAge",
}

// Client talks to the VolunteerMatch opportunity API. Without
// credentials it is unconfigured and callers should fall back to
// SampleOpportunities.
type Client struct {
	username   string
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(username, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		username:   username,
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// WithBaseURL points the client at a different API endpoint, used in
// tests
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// IsConfigured reports whether API credentials are present
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// CategoryName returns the slug for a VolunteerMatch category ID
func CategoryName(id int) string {
	if name, ok := categoryNames[id]; ok {
		return name
	}
	return "unknown"
}

// wsseHeader builds the X-WSSE UsernameToken header the API expects:
// PasswordDigest = Base64(SHA256(nonce + created + key))
func (c *Client) wsseHeader() (string, error) {
	created := time.Now().UTC().Format("2006-01-02T15:04:05Z")

	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	digestInput := append(append(nonce, []byte(created)...), []byte(c.apiKey)...)
	digest := sha256.Sum256(digestInput)

	return fmt.Sprintf(`UsernameToken Username="%s", PasswordDigest="%s", Nonce="%s", Created="%s"`,
		c.username,
		base64.StdEncoding.EncodeToString(digest[:]),
		base64.StdEncoding.EncodeToString(nonce),
		created,
	), nil
}

// SearchParams narrows an opportunity search
type SearchParams struct {
	Location     string
	Keywords     string
	Categories   []int
	Skills       []string
	Virtual      *bool
	NumResults   int
	PageNumber   int
	SortCriteria string
}

type searchQuery struct {
	Location        string   `json:"location,omitempty"`
	NumberOfResults int      `json:"numberOfResults,omitempty"`
	PageNumber      int      `json:"pageNumber,omitempty"`
	SortCriteria    string   `json:"sortCriteria,omitempty"`
	FieldsToDisplay []string `json:"fieldsToDisplay"`
	Keywords        string   `json:"keywords,omitempty"`
	CategoryIDs     []int    `json:"categoryIds,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Virtual         *bool    `json:"virtual,omitempty"`
	IDs             []string `json:"ids,omitempty"`
}

type apiLocation struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type apiParentOrg struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type apiOpportunity struct {
	ID                      json.Number  `json:"id"`
	Title                   string       `json:"title"`
	Description             string       `json:"description"`
	PlaintextDescription    string       `json:"plaintextDescription"`
	ParentOrg               apiParentOrg `json:"parentOrg"`
	VMURL                   string       `json:"vmUrl"`
	Location                apiLocation  `json:"location"`
	Virtual                 bool         `json:"virtual"`
	CategoryIDs             []int        `json:"categoryIds"`
	SkillsNeeded            []string     `json:"skillsNeeded"`
	GreatFor                []string     `json:"greatFor"`
	RequiresBackgroundCheck bool         `json:"requiresBackgroundCheck"`
	MinimumAge              int          `json:"minimumAge"`
}

type apiResponse struct {
	Opportunities []apiOpportunity `json:"opportunities"`
	Error         string           `json:"error"`
}

// toOpportunity maps an API listing onto the hub's standard record.
// Hours bounds are unknown from the API so both stay 0 (flexible), and
// training defaults to provided since most listings include it.
func (a apiOpportunity) toOpportunity() model.Opportunity {
	id := a.ID.String()
	return model.Opportunity{
		ID:                      model.OpportunityID("volunteermatch", id, a.Title, a.ParentOrg.Name),
		Source:                  "volunteermatch",
		SourceID:                id,
		SourceURL:               a.VMURL,
		Title:                   a.Title,
		Organization:            a.ParentOrg.Name,
		Description:             firstNonEmpty(a.PlaintextDescription, a.Description),
		LocationCity:            a.Location.City,
		LocationState:           a.Location.Region,
		IsVirtual:               a.Virtual,
		CauseAreas:              causesForCategories(a.CategoryIDs),
		SkillsNeeded:            a.SkillsNeeded,
		PopulationsServed:       populationsForCategories(a.CategoryIDs),
		CommitmentType:          model.CommitmentOngoing,
		BackgroundCheckRequired: a.RequiresBackgroundCheck,
		TrainingProvided:        true,
		MinAge:                  a.MinimumAge,
		IsActive:                true,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (c *Client) call(ctx context.Context, action string, query searchQuery) (*apiResponse, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("volunteermatch api not configured")
	}

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	params := url.Values{}
	params.Set("action", action)
	params.Set("query", string(queryJSON))
	if c.username == "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.username != "" {
		header, err := c.wsseHeader()
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-WSSE", header)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling volunteermatch %s: %w", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading volunteermatch response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("volunteermatch %s returned status %d", action, resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parsing volunteermatch response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("volunteermatch %s failed: %s", action, parsed.Error)
	}

	return &parsed, nil
}

// SearchOpportunities searches listings and maps them to the hub's
// standard record.
func (c *Client) SearchOpportunities(ctx context.Context, params SearchParams) ([]model.Opportunity, error) {
	if params.Location == "" {
		params.Location = "United States"
	}
	if params.NumResults <= 0 {
		params.NumResults = 20
	}
	if params.NumResults > 100 {
		params.NumResults = 100
	}
	if params.PageNumber <= 0 {
		params.PageNumber = 1
	}
	if params.SortCriteria == "" {
		params.SortCriteria = "relevance"
	}

	resp, err := c.call(ctx, "searchOpportunities", searchQuery{
		Location:        params.Location,
		NumberOfResults: params.NumResults,
		PageNumber:      params.PageNumber,
		SortCriteria:    params.SortCriteria,
		FieldsToDisplay: searchFields,
		Keywords:        params.Keywords,
		CategoryIDs:     params.Categories,
		Skills:          params.Skills,
		Virtual:         params.Virtual,
	})
	if err != nil {
		return nil, err
	}

	opportunities := make([]model.Opportunity, 0, len(resp.Opportunities))
	for _, o := range resp.Opportunities {
		opportunities = append(opportunities, o.toOpportunity())
	}

	c.logger.Debug("volunteermatch search complete",
		zap.String("location", params.Location),
		zap.Int("results", len(opportunities)))

	return opportunities, nil
}

// SearchByCause searches using the category IDs mapped from a hub cause
// area, defaulting to the community category for unknown causes.
func (c *Client) SearchByCause(ctx context.Context, cause, location string, virtual *bool, numResults int) ([]model.Opportunity, error) {
	categories, ok := causeCategories[cause]
	if !ok {
		categories = []int{6}
	}
	return c.SearchOpportunities(ctx, SearchParams{
		Location:   location,
		Categories: categories,
		Virtual:    virtual,
		NumResults: numResults,
	})
}

// GetOpportunity fetches one listing by its VolunteerMatch ID.
func (c *Client) GetOpportunity(ctx context.Context, id string) (model.Opportunity, error) {
	resp, err := c.call(ctx, "getOpportunitiesById", searchQuery{
		IDs:             []string{id},
		FieldsToDisplay: searchFields,
	})
	if err != nil {
		return model.Opportunity{}, err
	}
	if len(resp.Opportunities) == 0 {
		return model.Opportunity{}, fmt.Errorf("opportunity %s not found", id)
	}
	return resp.Opportunities[0].toOpportunity(), nil
}
