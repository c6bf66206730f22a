package postgres

import (
	"context"
	"fmt"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

const opportunityColumns = `id, source, source_id, source_url, title, organization, description,
	location_city, location_state, is_virtual, cause_areas, skills_needed,
	populations_served, commitment_type, hours_per_week_min, hours_per_week_max,
	min_age, background_check_required, training_provided, is_active`

// GetOpportunity retrieves one opportunity by ID
func (d *DB) GetOpportunity(ctx context.Context, id string) (model.Opportunity, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT `+opportunityColumns+`
		FROM opportunity
		WHERE id = $1
	`, id)

	o, err := scanOpportunity(row)
	if err != nil {
		return model.Opportunity{}, fmt.Errorf("failed to get opportunity %s: %w", id, err)
	}
	return o, nil
}

// ListOpportunities retrieves opportunities, optionally only active ones
func (d *DB) ListOpportunities(ctx context.Context, activeOnly bool) ([]model.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunity`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY title`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query opportunities: %w", err)
	}
	defer rows.Close()

	var opportunities []model.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}
		opportunities = append(opportunities, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating opportunities: %w", err)
	}

	return opportunities, nil
}

// UpsertOpportunities inserts or updates opportunities by ID and returns
// how many rows were written
func (d *DB) UpsertOpportunities(ctx context.Context, opportunities []model.Opportunity) (int, error) {
	if len(opportunities) == 0 {
		return 0, nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, o := range opportunities {
		_, err := tx.Exec(ctx, `
			INSERT INTO opportunity (`+opportunityColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
			ON CONFLICT (id) DO UPDATE SET
				source = EXCLUDED.source,
				source_id = EXCLUDED.source_id,
				source_url = EXCLUDED.source_url,
				title = EXCLUDED.title,
				organization = EXCLUDED.organization,
				description = EXCLUDED.description,
				location_city = EXCLUDED.location_city,
				location_state = EXCLUDED.location_state,
				is_virtual = EXCLUDED.is_virtual,
				cause_areas = EXCLUDED.cause_areas,
				skills_needed = EXCLUDED.skills_needed,
				populations_served = EXCLUDED.populations_served,
				commitment_type = EXCLUDED.commitment_type,
				hours_per_week_min = EXCLUDED.hours_per_week_min,
				hours_per_week_max = EXCLUDED.hours_per_week_max,
				min_age = EXCLUDED.min_age,
				background_check_required = EXCLUDED.background_check_required,
				training_provided = EXCLUDED.training_provided,
				is_active = EXCLUDED.is_active,
				updated_at = NOW()
		`, o.ID, o.Source, o.SourceID, o.SourceURL, o.Title, o.Organization, o.Description,
			o.LocationCity, o.LocationState, o.IsVirtual, o.CauseAreas, o.SkillsNeeded,
			o.PopulationsServed, string(o.CommitmentType), o.HoursPerWeekMin, o.HoursPerWeekMax,
			o.MinAge, o.BackgroundCheckRequired, o.TrainingProvided, o.IsActive)
		if err != nil {
			return 0, fmt.Errorf("failed to upsert opportunity %s: %w", o.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return len(opportunities), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOpportunity(row rowScanner) (model.Opportunity, error) {
	var o model.Opportunity
	var commitment string
	err := row.Scan(&o.ID, &o.Source, &o.SourceID, &o.SourceURL, &o.Title, &o.Organization,
		&o.Description, &o.LocationCity, &o.LocationState, &o.IsVirtual, &o.CauseAreas,
		&o.SkillsNeeded, &o.PopulationsServed, &commitment, &o.HoursPerWeekMin,
		&o.HoursPerWeekMax, &o.MinAge, &o.BackgroundCheckRequired, &o.TrainingProvided,
		&o.IsActive)
	if err != nil {
		return model.Opportunity{}, err
	}
	o.CommitmentType = model.CommitmentType(commitment)
	return o, nil
}
