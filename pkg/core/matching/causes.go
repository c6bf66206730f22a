package matching

// relatedCauses maps a cause area to causes considered adjacent to it.
// A profile interested in a key cause gets partial credit for
// opportunities tagged with any of the related causes. The table is
// static configuration, never mutated at runtime.
var relatedCauses = map[string][]string{
	"education":     {"youth", "literacy", "tutoring", "mentoring"},
	"environment":   {"conservation", "climate", "sustainability", "parks"},
	"health":        {"mental_health", "wellness", "medical", "hospital"},
	"hunger":        {"food_bank", "food_security", "nutrition", "meals"},
	"housing":       {"homelessness", "shelter", "construction", "habitat"},
	"animals":       {"pets", "wildlife", "shelter", "rescue"},
	"seniors":       {"elderly", "aging", "retirement", "elder_care"},
	"youth":         {"children", "teens", "kids", "students"},
	"veterans":      {"military", "service_members", "armed_forces"},
	"disaster":      {"emergency", "relief", "crisis", "red_cross"},
	"community":     {"neighborhood", "civic", "local", "development"},
	"arts":          {"culture", "music", "theater", "museum"},
	"immigrants":    {"refugees", "asylum", "newcomers", "esl"},
	"disability":    {"accessibility", "special_needs", "adaptive"},
	"mental_health": {"counseling", "crisis", "support", "wellness"},
	"poverty":       {"low_income", "economic", "assistance", "welfare"},
}
