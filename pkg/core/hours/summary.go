package hours

import "time"

// Summarize aggregates the given entries into totals, per-organization,
// per-activity and per-month breakdowns. Entries outside the [start, end]
// window are excluded; a zero start or end leaves that side open. When no
// period bound is given the observed min/max entry dates are reported
// instead.
func Summarize(entries []Entry, start, end time.Time) Summary {
	filtered := filterByPeriod(entries, start, end)

	s := Summary{
		ByOrganization: make(map[string]float64),
		ByActivityType: make(map[string]float64),
		ByMonth:        make(map[string]float64),
		EntriesCount:   len(filtered),
		PeriodStart:    start,
		PeriodEnd:      end,
	}

	for _, e := range filtered {
		s.TotalHours += e.Hours
		switch e.Status {
		case StatusVerified:
			s.VerifiedHours += e.Hours
		case StatusPending:
			s.PendingHours += e.Hours
		}

		s.ByOrganization[e.OrganizationName] += e.Hours
		s.ByActivityType[string(e.ActivityType)] += e.Hours
		s.ByMonth[e.Date.Format("2006-01")] += e.Hours
		s.PeopleServed += e.PeopleServed
	}

	s.OrganizationsCount = len(s.ByOrganization)

	if start.IsZero() && len(filtered) > 0 {
		s.PeriodStart = minDate(filtered)
	}
	if end.IsZero() && len(filtered) > 0 {
		s.PeriodEnd = maxDate(filtered)
	}

	return s
}

func filterByPeriod(entries []Entry, start, end time.Time) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !start.IsZero() && e.Date.Before(start) {
			continue
		}
		if !end.IsZero() && e.Date.After(end) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func minDate(entries []Entry) time.Time {
	min := entries[0].Date
	for _, e := range entries[1:] {
		if e.Date.Before(min) {
			min = e.Date
		}
	}
	return min
}

func maxDate(entries []Entry) time.Time {
	max := entries[0].Date
	for _, e := range entries[1:] {
		if e.Date.After(max) {
			max = e.Date
		}
	}
	return max
}
