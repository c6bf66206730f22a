package matching

import "github.com/volunteerconnect/hub/pkg/core/model"

// locationScore rates how the opportunity's delivery mode fits the
// volunteer's stated preference. The result feeds both the location
// proximity and virtual preference factors (0.05 weight each, 0.10
// combined).
//
//	virtual opportunity:   prefers virtual 100, prefers in-person 60, neutral 80
//	in-person opportunity: prefers in-person 90, prefers virtual 40, neutral 70
func locationScore(p *model.Profile, o *model.Opportunity) (float64, []string) {
	if o.IsVirtual {
		switch {
		case p.PrefersVirtual:
			return 100, []string{"Remote opportunity - matches your preference"}
		case p.PrefersInPerson:
			return 60, []string{"Virtual opportunity available"}
		default:
			return 80, nil
		}
	}

	switch {
	case p.PrefersInPerson:
		return 90, []string{"In-person opportunity"}
	case p.PrefersVirtual:
		return 40, []string{"Requires in-person attendance"}
	default:
		return 70, nil
	}
}

// LocationProximityFactor carries the location half of the combined
// location/virtual assessment and contributes its reasons.
type LocationProximityFactor struct{}

func (LocationProximityFactor) Name() string { return FactorLocationProximity }

func (LocationProximityFactor) Weight() float64 { return 0.05 }

func (LocationProximityFactor) Score(p *model.Profile, o *model.Opportunity) (float64, []string) {
	return locationScore(p, o)
}

// VirtualPreferenceFactor carries the virtual half of the combined
// location/virtual assessment. Reasons are contributed by
// LocationProximityFactor only, to avoid duplicates.
type VirtualPreferenceFactor struct{}

func (VirtualPreferenceFactor) Name() string { return FactorVirtualPreference }

func (VirtualPreferenceFactor) Weight() float64 { return 0.05 }

func (VirtualPreferenceFactor) Score(p *model.Profile, o *model.Opportunity) (float64, []string) {
	score, _ := locationScore(p, o)
	return score, nil
}
