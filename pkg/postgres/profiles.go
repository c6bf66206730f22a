package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/volunteerconnect/hub/pkg/core/model"
)

const profileColumns = `id, email, first_name, last_name, causes_interested, skills,
	availability_hours_per_week, availability_days, prefers_virtual, prefers_in_person,
	populations_interested, goals, primary_motivation, willing_background_check,
	profile_complete`

// GetProfile retrieves one profile by ID
func (d *DB) GetProfile(ctx context.Context, id string) (model.Profile, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profile
		WHERE id = $1
	`, id)

	p, err := scanProfile(row)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get profile %s: %w", id, err)
	}
	return p, nil
}

// ListProfiles retrieves all profiles
func (d *DB) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	rows, err := d.pool.Query(ctx, `SELECT `+profileColumns+` FROM profile ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}

// UpsertProfile inserts or updates a profile by ID
func (d *DB) UpsertProfile(ctx context.Context, p model.Profile) error {
	skillsJSON, err := json.Marshal(p.Skills)
	if err != nil {
		return fmt.Errorf("failed to encode skills: %w", err)
	}

	_, err = d.pool.Exec(ctx, `
		INSERT INTO profile (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			causes_interested = EXCLUDED.causes_interested,
			skills = EXCLUDED.skills,
			availability_hours_per_week = EXCLUDED.availability_hours_per_week,
			availability_days = EXCLUDED.availability_days,
			prefers_virtual = EXCLUDED.prefers_virtual,
			prefers_in_person = EXCLUDED.prefers_in_person,
			populations_interested = EXCLUDED.populations_interested,
			goals = EXCLUDED.goals,
			primary_motivation = EXCLUDED.primary_motivation,
			willing_background_check = EXCLUDED.willing_background_check,
			profile_complete = EXCLUDED.profile_complete,
			updated_at = NOW()
	`, p.ID, p.Email, p.FirstName, p.LastName, p.CausesInterested, skillsJSON,
		p.AvailabilityHoursPerWeek, p.AvailabilityDays, p.PrefersVirtual, p.PrefersInPerson,
		p.PopulationsInterested, p.Goals, p.PrimaryMotivation, p.WillingBackgroundCheck,
		p.ProfileComplete)
	if err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", p.ID, err)
	}

	return nil
}

func scanProfile(row rowScanner) (model.Profile, error) {
	var p model.Profile
	var skillsJSON []byte
	err := row.Scan(&p.ID, &p.Email, &p.FirstName, &p.LastName, &p.CausesInterested,
		&skillsJSON, &p.AvailabilityHoursPerWeek, &p.AvailabilityDays, &p.PrefersVirtual,
		&p.PrefersInPerson, &p.PopulationsInterested, &p.Goals, &p.PrimaryMotivation,
		&p.WillingBackgroundCheck, &p.ProfileComplete)
	if err != nil {
		return model.Profile{}, err
	}
	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &p.Skills); err != nil {
			return model.Profile{}, fmt.Errorf("failed to decode skills: %w", err)
		}
	}
	return p, nil
}
