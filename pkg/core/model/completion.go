package model

// completionWeights assigns a weight to each field a volunteer must fill in
// before recommendations are useful. The keys mirror the questionnaire
// sections; weights are relative, not percentages.
var completionWeights = []struct {
	weight int
	filled func(p *Profile) bool
}{
	{10, func(p *Profile) bool { return p.FirstName != "" }},
	{10, func(p *Profile) bool { return p.LastName != "" }},
	{10, func(p *Profile) bool { return p.Email != "" }},
	{10, func(p *Profile) bool { return len(p.Skills) > 0 }},
	{10, func(p *Profile) bool { return len(p.CausesInterested) > 0 }},
	{5, func(p *Profile) bool { return p.AvailabilityHoursPerWeek > 0 }},
	{5, func(p *Profile) bool { return len(p.AvailabilityDays) > 0 }},
	{10, func(p *Profile) bool { return p.PrimaryMotivation != "" }},
	{10, func(p *Profile) bool { return len(p.Goals) > 0 }},
	{5, func(p *Profile) bool { return len(p.PopulationsInterested) > 0 }},
}

// CompletionPercentage returns how much of the scoring-relevant profile has
// been filled in, as a 0-100 percentage.
func (p *Profile) CompletionPercentage() float64 {
	total := 0
	completed := 0
	for _, f := range completionWeights {
		total += f.weight
		if f.filled(p) {
			completed += f.weight
		}
	}
	return float64(completed) / float64(total) * 100
}

// IsComplete reports whether the profile has enough answers to generate
// meaningful recommendations.
func (p *Profile) IsComplete() bool {
	return p.CompletionPercentage() >= 80
}
