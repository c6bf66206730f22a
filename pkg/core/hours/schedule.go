package hours

import (
	"fmt"
	"math"
	"sort"
)

// ScheduleAdvice suggests a volunteering cadence from logged history
type ScheduleAdvice struct {
	Recommendation  string
	OptimalDays     []string
	AvgSessionHours float64
	TotalSessions   int
	MostActiveOrg   string
}

// AdviseSchedule derives scheduling advice from a volunteer's history.
// With no history it suggests a starter cadence and weekend days.
func AdviseSchedule(entries []Entry) ScheduleAdvice {
	if len(entries) == 0 {
		return ScheduleAdvice{
			Recommendation: "Start with 2-4 hours per week to build a sustainable habit.",
			OptimalDays:    []string{"Saturday", "Sunday"},
		}
	}

	hoursByDay := make(map[string]float64)
	hoursByOrg := make(map[string]float64)
	total := 0.0
	for _, e := range entries {
		hoursByDay[e.Date.Weekday().String()] += e.Hours
		hoursByOrg[e.OrganizationName] += e.Hours
		total += e.Hours
	}

	days := sortedKeys(hoursByDay)
	sort.SliceStable(days, func(i, j int) bool {
		return hoursByDay[days[i]] > hoursByDay[days[j]]
	})
	if len(days) > 2 {
		days = days[:2]
	}

	var topOrg string
	for _, org := range sortedKeys(hoursByOrg) {
		if topOrg == "" || hoursByOrg[org] > hoursByOrg[topOrg] {
			topOrg = org
		}
	}

	avg := math.Round(total/float64(len(entries))*10) / 10

	return ScheduleAdvice{
		Recommendation:  fmt.Sprintf("You average %.1f hours per session. Consider maintaining this pace.", avg),
		OptimalDays:     days,
		AvgSessionHours: avg,
		TotalSessions:   len(entries),
		MostActiveOrg:   topOrg,
	}
}
