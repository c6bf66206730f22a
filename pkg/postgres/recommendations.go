package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/volunteerconnect/hub/pkg/db"
)

// SaveRecommendations stores the results of a scoring run
func (d *DB) SaveRecommendations(ctx context.Context, records []db.RecommendationRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, r := range records {
		factorJSON, err := json.Marshal(r.FactorScores)
		if err != nil {
			return fmt.Errorf("failed to encode factor scores: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO recommendation (id, profile_id, opportunity_id, total_score, factor_scores, match_reasons, rank, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, r.ID, r.ProfileID, r.OpportunityID, r.TotalScore, factorJSON, r.MatchReasons, r.Rank, r.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert recommendation %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListRecommendations retrieves a profile's stored recommendations,
// newest run first, best rank first within a run
func (d *DB) ListRecommendations(ctx context.Context, profileID string) ([]db.RecommendationRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, profile_id, opportunity_id, total_score, factor_scores, match_reasons, rank, created_at
		FROM recommendation
		WHERE profile_id = $1
		ORDER BY created_at DESC, rank
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	defer rows.Close()

	var records []db.RecommendationRecord
	for rows.Next() {
		var r db.RecommendationRecord
		var factorJSON []byte
		if err := rows.Scan(&r.ID, &r.ProfileID, &r.OpportunityID, &r.TotalScore, &factorJSON,
			&r.MatchReasons, &r.Rank, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		if len(factorJSON) > 0 {
			if err := json.Unmarshal(factorJSON, &r.FactorScores); err != nil {
				return nil, fmt.Errorf("failed to decode factor scores: %w", err)
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recommendations: %w", err)
	}

	return records, nil
}
