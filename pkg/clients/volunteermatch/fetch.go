package volunteermatch

import (
	"context"

	"go.uber.org/zap"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

// defaultCauses are the cause areas crawled when none are requested
var defaultCauses = []string{
	"education", "environment", "health", "hunger",
	"animals", "seniors", "youth", "community",
}

// FetchOpportunities pulls listings for each cause area, in-person and
// optionally virtual, deduped by ID. An unconfigured client returns the
// curated samples so the rest of the pipeline keeps working offline.
func (c *Client) FetchOpportunities(ctx context.Context, causes []string, location string, includeVirtual bool, maxPerCause int) ([]model.Opportunity, error) {
	if !c.IsConfigured() {
		c.logger.Warn("volunteermatch api not configured, using sample opportunities")
		return SampleOpportunities(), nil
	}

	if len(causes) == 0 {
		causes = defaultCauses
	}
	if maxPerCause <= 0 {
		maxPerCause = 5
	}

	inPerson := false
	virtual := true

	seen := make(map[string]bool)
	var all []model.Opportunity

	for _, cause := range causes {
		c.logger.Info("fetching opportunities", zap.String("cause", cause))

		opps, err := c.SearchByCause(ctx, cause, location, &inPerson, maxPerCause)
		if err != nil {
			return nil, err
		}
		if includeVirtual {
			virtualOpps, err := c.SearchByCause(ctx, cause, location, &virtual, maxPerCause/2)
			if err != nil {
				return nil, err
			}
			opps = append(opps, virtualOpps...)
		}

		for _, o := range opps {
			if seen[o.ID] {
				continue
			}
			seen[o.ID] = true
			all = append(all, o)
		}
	}

	c.logger.Info("fetched opportunities", zap.Int("count", len(all)))
	return all, nil
}
