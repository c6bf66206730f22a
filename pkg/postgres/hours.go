package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/volunteerconnect/hub/pkg/core/hours"
)

const hoursColumns = `id, volunteer_id, organization_id, organization_name, service_date,
	hours, activity_type, description, supervisor, status, verified_by, verified_at,
	created_at, updated_at, notes, impact_notes, people_served`

// InsertHoursEntry stores a new hours entry
func (d *DB) InsertHoursEntry(ctx context.Context, e hours.Entry) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO hours_entry (`+hoursColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`, e.ID, e.VolunteerID, e.OrganizationID, e.OrganizationName, e.Date, e.Hours,
		string(e.ActivityType), e.Description, e.Supervisor, string(e.Status), e.VerifiedBy,
		nullableTime(e.VerifiedAt), e.CreatedAt, nullableTime(e.UpdatedAt), e.Notes,
		e.ImpactNotes, e.PeopleServed)
	if err != nil {
		return fmt.Errorf("failed to insert hours entry %s: %w", e.ID, err)
	}
	return nil
}

// GetHoursEntry retrieves one hours entry by ID
func (d *DB) GetHoursEntry(ctx context.Context, id string) (hours.Entry, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT `+hoursColumns+`
		FROM hours_entry
		WHERE id = $1
	`, id)

	e, err := scanHoursEntry(row)
	if err != nil {
		return hours.Entry{}, fmt.Errorf("failed to get hours entry %s: %w", id, err)
	}
	return e, nil
}

// UpdateHoursEntry replaces a stored hours entry
func (d *DB) UpdateHoursEntry(ctx context.Context, e hours.Entry) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE hours_entry SET
			organization_id = $2,
			organization_name = $3,
			service_date = $4,
			hours = $5,
			activity_type = $6,
			description = $7,
			supervisor = $8,
			status = $9,
			verified_by = $10,
			verified_at = $11,
			updated_at = $12,
			notes = $13,
			impact_notes = $14,
			people_served = $15
		WHERE id = $1
	`, e.ID, e.OrganizationID, e.OrganizationName, e.Date, e.Hours, string(e.ActivityType),
		e.Description, e.Supervisor, string(e.Status), e.VerifiedBy, nullableTime(e.VerifiedAt),
		nullableTime(e.UpdatedAt), e.Notes, e.ImpactNotes, e.PeopleServed)
	if err != nil {
		return fmt.Errorf("failed to update hours entry %s: %w", e.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("hours entry %s not found", e.ID)
	}
	return nil
}

// ListHoursEntries retrieves all entries for a volunteer, oldest first
func (d *DB) ListHoursEntries(ctx context.Context, volunteerID string) ([]hours.Entry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+hoursColumns+`
		FROM hours_entry
		WHERE volunteer_id = $1
		ORDER BY service_date
	`, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query hours entries: %w", err)
	}
	defer rows.Close()

	var entries []hours.Entry
	for rows.Next() {
		e, err := scanHoursEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hours entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hours entries: %w", err)
	}

	return entries, nil
}

// CountHoursEntries returns the total number of stored entries
func (d *DB) CountHoursEntries(ctx context.Context) (int, error) {
	var count int
	if err := d.pool.QueryRow(ctx, `SELECT COUNT(*) FROM hours_entry`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count hours entries: %w", err)
	}
	return count, nil
}

func scanHoursEntry(row rowScanner) (hours.Entry, error) {
	var e hours.Entry
	var activityType, status string
	var verifiedAt, updatedAt *time.Time
	err := row.Scan(&e.ID, &e.VolunteerID, &e.OrganizationID, &e.OrganizationName, &e.Date,
		&e.Hours, &activityType, &e.Description, &e.Supervisor, &status, &e.VerifiedBy,
		&verifiedAt, &e.CreatedAt, &updatedAt, &e.Notes, &e.ImpactNotes, &e.PeopleServed)
	if err != nil {
		return hours.Entry{}, err
	}
	e.ActivityType = hours.ActivityType(activityType)
	e.Status = hours.Status(status)
	if verifiedAt != nil {
		e.VerifiedAt = *verifiedAt
	}
	if updatedAt != nil {
		e.UpdatedAt = *updatedAt
	}
	return e, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
