package hours

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var csvHeader = []string{"Date", "Organization", "Hours", "Activity Type", "Description", "Status", "Supervisor"}

// ExportCSV renders a volunteer's entries in the period as CSV, one row
// per entry in store order, with the standard header row.
func (t *Tracker) ExportCSV(ctx context.Context, volunteerID string, start, end time.Time) (string, error) {
	entries, err := t.store.ListHoursEntries(ctx, volunteerID)
	if err != nil {
		return "", fmt.Errorf("listing hours for %s: %w", volunteerID, err)
	}

	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}

	for _, e := range filterByPeriod(entries, start, end) {
		record := []string{
			e.Date.Format("2006-01-02"),
			e.OrganizationName,
			strconv.FormatFloat(e.Hours, 'f', -1, 64),
			string(e.ActivityType),
			e.Description,
			string(e.Status),
			e.Supervisor,
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing csv: %w", err)
	}

	return b.String(), nil
}
