package letters

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Writer renders volunteering letters from templates and scores the
// result. The clock is injectable for tests.
type Writer struct {
	now func() time.Time
}

func NewWriter() *Writer {
	return &Writer{now: time.Now}
}

// WithClock replaces the writer's time source
func (w *Writer) WithClock(now func() time.Time) *Writer {
	w.now = now
	return w
}

// Generate renders the letter for the context's type, assesses its
// quality and collects improvement suggestions. Unknown types are an
// error; everything else degrades to fallback phrasing.
func (w *Writer) Generate(ctx Context) (Letter, error) {
	tmpl, ok := templates[ctx.Type]
	if !ok {
		return Letter{}, fmt.Errorf("unknown letter type %q", ctx.Type)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, fillValues(ctx)); err != nil {
		return Letter{}, fmt.Errorf("rendering %s letter: %w", ctx.Type, err)
	}

	body := pruneEmptyLines(buf.String())
	quality := assessQuality(body, ctx)

	return Letter{
		ID:           uuid.NewString(),
		Type:         ctx.Type,
		Subject:      Subject(ctx),
		Body:         body,
		GeneratedAt:  w.now(),
		QualityScore: quality,
		Suggestions:  buildSuggestions(body, ctx, quality),
	}, nil
}

// fillValues maps template keys to context values with fallback
// phrasing for the fields every letter needs
func fillValues(ctx Context) map[string]string {
	return map[string]string{
		"sender_name":     fallback(ctx.SenderName, "[Your Name]"),
		"sender_email":    fallback(ctx.SenderEmail, "[Your Email]"),
		"recipient_name":  fallback(ctx.RecipientName, "Hiring Manager"),
		"recipient_title": ctx.RecipientTitle,
		"organization":    fallback(ctx.Organization, "your organization"),
		"role":            fallback(ctx.Role, "volunteer"),
		"reason":          fallback(ctx.Reason, "I am passionate about making a positive impact"),
		"experience":      ctx.Experience,
		"skills":          ctx.Skills,
		"availability":    fallback(ctx.Availability, "flexible schedule"),
		"previous_action": fallback(ctx.PreviousAction, "previous inquiry"),
		"additional_info": ctx.AdditionalInfo,
	}
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// pruneEmptyLines drops lines that are bare bracketed placeholders and
// collapses the blank-line runs left behind by empty optional fields
func pruneEmptyLines(text string) string {
	var out []string
	blank := true
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && trimmed != "" {
			continue
		}
		if trimmed == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// Subject builds the subject line for the context's letter type
func Subject(ctx Context) string {
	switch ctx.Type {
	case TypeApplication:
		return "Volunteer Application - " + fallback(ctx.Role, "General Volunteer")
	case TypeThankYou:
		return "Thank You - " + fallback(ctx.Organization, "Volunteer Experience")
	case TypeOutreach:
		return "Volunteer Opportunity Inquiry - " + ctx.Organization
	case TypeFollowUp:
		return "Follow Up - " + fallback(ctx.PreviousAction, "Volunteer Application")
	case TypePartnership:
		return "Partnership Proposal - Volunteer Program"
	case TypeRecommendationRequest:
		return "Recommendation Request - Volunteer Service"
	case TypeConfirmation:
		return "Confirmation - " + fallback(ctx.Role, "Volunteer Commitment")
	case TypeCancellation:
		return "Schedule Change - " + fallback(ctx.Role, "Volunteer Session")
	default:
		return "Volunteer Inquiry"
	}
}

// assessQuality scores the rendered letter between 0 and 1, deducting
// for missing details and off-target length, with a small bonus for
// addressing a named recipient
func assessQuality(body string, ctx Context) float64 {
	score := 1.0

	if ctx.SenderName == "" || strings.Contains(body, "[Your Name]") {
		score -= 0.1
	}
	if ctx.Organization == "" || strings.Contains(body, "your organization") {
		score -= 0.05
	}

	words := len(strings.Fields(body))
	if words < 50 {
		score -= 0.1
	} else if words > 500 {
		score -= 0.05
	}

	if ctx.RecipientName != "" && strings.Contains(body, ctx.RecipientName) {
		score += 0.05
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// buildSuggestions lists ways to improve a letter that scored below the
// maximum
func buildSuggestions(body string, ctx Context, quality float64) []string {
	if quality >= 1.0 {
		return nil
	}

	var suggestions []string
	if ctx.SenderName == "" || strings.Contains(body, "[Your Name]") {
		suggestions = append(suggestions, "Add your name to personalize the letter")
	}
	if strings.Contains(body, "your organization") {
		suggestions = append(suggestions, "Specify the organization name")
	}
	if len(strings.Fields(body)) < 100 {
		suggestions = append(suggestions, "Consider adding more detail about your qualifications")
	}
	if ctx.Experience == "" {
		suggestions = append(suggestions, "Adding relevant experience can strengthen your application")
	}
	if ctx.Skills == "" {
		suggestions = append(suggestions, "Highlighting specific skills can make your letter more compelling")
	}
	return suggestions
}
