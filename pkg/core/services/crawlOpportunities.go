package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/volunteerconnect/hub/internal/config"
	"github.com/volunteerconnect/hub/pkg/core/model"
)

// CrawlStore defines the database operations needed for crawling opportunities
type CrawlStore interface {
	UpsertOpportunities(ctx context.Context, opportunities []model.Opportunity) (int, error)
}

// OpportunityFetcher defines the operations needed to fetch opportunities from a source
type OpportunityFetcher interface {
	FetchOpportunities(ctx context.Context, causes []string, location string, includeVirtual bool, maxPerCause int) ([]model.Opportunity, error)
	IsConfigured() bool
}

// CrawlOpportunities fetches opportunities from VolunteerMatch and stores them,
// returning how many were written. Without API credentials the fetcher falls
// back to its built-in sample listings
func CrawlOpportunities(
	ctx context.Context,
	database CrawlStore,
	fetcher OpportunityFetcher,
	cfg *config.Config,
	logger *zap.Logger,
) (int, error) {
	logger.Debug("Starting crawlOpportunities",
		zap.Strings("causes", cfg.Crawl.Causes),
		zap.String("location", cfg.Crawl.Location))

	if !fetcher.IsConfigured() {
		logger.Info("VolunteerMatch API not configured, using sample opportunities")
	}

	// Step 1: Fetch opportunities from the source
	logger.Debug("Fetching opportunities")
	opportunities, err := fetcher.FetchOpportunities(ctx, cfg.Crawl.Causes, cfg.Crawl.Location,
		cfg.Crawl.IncludeVirtual, cfg.Crawl.MaxPerCause)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch opportunities: %w", err)
	}
	logger.Debug("Fetched opportunities", zap.Int("count", len(opportunities)))

	if len(opportunities) == 0 {
		logger.Info("No opportunities fetched")
		return 0, nil
	}

	// Step 2: Store them
	logger.Debug("Storing opportunities")
	written, err := database.UpsertOpportunities(ctx, opportunities)
	if err != nil {
		return 0, fmt.Errorf("failed to store opportunities: %w", err)
	}
	logger.Info("Stored opportunities", zap.Int("count", written))

	return written, nil
}
