package letters

import "time"

// Type identifies which letter template to render
type Type string

const (
	TypeApplication           Type = "application"
	TypeThankYou              Type = "thank_you"
	TypeOutreach              Type = "outreach"
	TypeFollowUp              Type = "follow_up"
	TypePartnership           Type = "partnership"
	TypeRecommendationRequest Type = "recommendation_request"
	TypeConfirmation          Type = "confirmation"
	TypeCancellation          Type = "cancellation"
)

func (t Type) IsValid() bool {
	_, ok := templates[t]
	return ok
}

// Types lists every supported letter type in a stable order
func Types() []Type {
	return []Type{
		TypeApplication,
		TypeThankYou,
		TypeOutreach,
		TypeFollowUp,
		TypePartnership,
		TypeRecommendationRequest,
		TypeConfirmation,
		TypeCancellation,
	}
}

// Context carries the details a letter is rendered from. Empty fields
// fall back to generic phrasing or are pruned from the output.
type Context struct {
	Type           Type
	SenderName     string
	SenderEmail    string
	RecipientName  string
	RecipientTitle string
	Organization   string
	Role           string
	Reason         string
	Experience     string
	Skills         string
	Availability   string
	PreviousAction string
	AdditionalInfo string
}

// Letter is a rendered letter with its quality assessment
type Letter struct {
	ID           string
	Type         Type
	Subject      string
	Body         string
	GeneratedAt  time.Time
	QualityScore float64
	Suggestions  []string
}
