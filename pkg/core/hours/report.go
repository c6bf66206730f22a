package hours

import (
	"fmt"
	"math"
	"time"
)

// Period selects the window an impact report covers
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAll     Period = "all"
)

// Bounds returns the [start, end] window for the period ending now. A
// zero start means unbounded (PeriodAll).
func (p Period) Bounds(now time.Time) (time.Time, time.Time, error) {
	var start time.Time
	switch p {
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodMonth:
		start = now.AddDate(0, 0, -30)
	case PeriodQuarter:
		start = now.AddDate(0, 0, -90)
	case PeriodYear:
		start = now.AddDate(0, 0, -365)
	case PeriodAll:
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown report period %q", p)
	}
	return start, now, nil
}

// BuildReport summarises the entries over the period ending now and
// derives the presentation metrics.
func BuildReport(entries []Entry, period Period, now time.Time) (Report, error) {
	start, end, err := period.Bounds(now)
	if err != nil {
		return Report{}, err
	}

	summary := Summarize(entries, start, end)

	avg := 0.0
	if summary.EntriesCount > 0 {
		avg = math.Round(summary.TotalHours/float64(summary.EntriesCount)*10) / 10
	}

	return Report{
		Period:         period,
		Summary:        summary,
		AvgHoursPerLog: avg,
		ImpactScore:    ImpactScore(summary),
	}, nil
}

// ImpactScore rates a period of service on a 0-100 scale: verified hours
// carry the score (10 verified hours reaches the 100 cap), with bonuses
// for serving several organizations (5 per org, up to 20) and for people
// reached (1 per 10 people, up to 20). The total is capped at 100.
func ImpactScore(summary Summary) float64 {
	hoursScore := math.Min(100, summary.VerifiedHours*10)
	orgBonus := math.Min(20, float64(summary.OrganizationsCount)*5)
	peopleBonus := math.Min(20, float64(summary.PeopleServed)/10)

	return math.Min(100, hoursScore+orgBonus+peopleBonus)
}
