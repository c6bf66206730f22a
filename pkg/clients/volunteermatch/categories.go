package volunteermatch

import "sort"

// categoryNames maps VolunteerMatch numeric category IDs to their slugs
var categoryNames = map[int]string{
	1:  "advocacy_human_rights",
	2:  "animals",
	3:  "arts_culture",
	4:  "board_development",
	5:  "children_youth",
	6:  "community",
	7:  "computers_technology",
	8:  "crisis_support",
	9:  "disaster_relief",
	10: "education_literacy",
	11: "emergency_safety",
	12: "employment",
	13: "environment",
	14: "faith_based",
	15: "health_medicine",
	16: "homeless_housing",
	17: "hunger",
	18: "immigrants_refugees",
	19: "international",
	20: "justice_legal",
	21: "lgbtq",
	22: "media_broadcasting",
	23: "people_with_disabilities",
	24: "politics",
	25: "race_ethnicity",
	26: "seniors",
	27: "sports_recreation",
	28: "veterans_military_families",
	29: "women",
}

// causeCategories maps hub cause areas to the VolunteerMatch categories
// searched for them
var causeCategories = map[string][]int{
	"education":     {5, 10},
	"environment":   {13},
	"health":        {15},
	"hunger":        {17},
	"housing":       {16},
	"animals":       {2},
	"seniors":       {26},
	"youth":         {5},
	"veterans":      {28},
	"disaster":      {9, 11},
	"community":     {6},
	"immigrants":    {18},
	"mental_health": {8, 15},
	"arts":          {3},
	"justice":       {20},
	"disability":    {23},
	"faith":         {14},
	"international": {19},
}

// causesForCategories maps a listing's category IDs back to hub cause
// areas, defaulting to community when nothing maps. The result is
// sorted for stable output.
func causesForCategories(categoryIDs []int) []string {
	seen := make(map[string]bool)
	for _, id := range categoryIDs {
		for cause, ids := range causeCategories {
			for _, cid := range ids {
				if cid == id {
					seen[cause] = true
				}
			}
		}
	}
	if len(seen) == 0 {
		return []string{"community"}
	}
	causes := make([]string, 0, len(seen))
	for cause := range seen {
		causes = append(causes, cause)
	}
	sort.Strings(causes)
	return causes
}

// populationsForCategories infers served populations from category IDs
func populationsForCategories(categoryIDs []int) []string {
	var populations []string
	for _, id := range categoryIDs {
		switch id {
		case 5:
			populations = append(populations, "children", "teens")
		case 26:
			populations = append(populations, "seniors")
		case 2:
			populations = append(populations, "animals")
		case 28:
			populations = append(populations, "veterans")
		}
	}
	if len(populations) == 0 {
		return []string{"general"}
	}
	return populations
}
