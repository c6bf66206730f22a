package letters

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullContext() Context {
	return Context{
		Type:         TypeApplication,
		SenderName:   "Jane Smith",
		SenderEmail:  "jane@example.com",
		Organization: "Local Food Bank",
		Role:         "Food Distribution Volunteer",
		Reason:       "I am passionate about fighting food insecurity in our community.",
		Experience:   "I have previously volunteered at soup kitchens and community gardens.",
		Skills:       "Strong organizational skills, food safety certification, bilingual (English/Spanish).",
		Availability: "Saturdays from 9 AM to 1 PM",
	}
}

func TestGenerate_ApplicationLetter(t *testing.T) {
	writer := NewWriter()

	letter, err := writer.Generate(fullContext())
	require.NoError(t, err)

	assert.Equal(t, "Volunteer Application - Food Distribution Volunteer", letter.Subject)
	assert.Contains(t, letter.Body, "Dear Hiring Manager,")
	assert.Contains(t, letter.Body, "volunteering as a Food Distribution Volunteer with Local Food Bank")
	assert.Contains(t, letter.Body, "I am available Saturdays from 9 AM to 1 PM")
	assert.Contains(t, letter.Body, "Sincerely,\nJane Smith\njane@example.com")
	assert.NotEmpty(t, letter.ID)
}

func TestGenerate_UnknownType(t *testing.T) {
	writer := NewWriter()

	_, err := writer.Generate(Context{Type: Type("memo")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown letter type")
}

func TestGenerate_AllTypesRender(t *testing.T) {
	writer := NewWriter()

	for _, typ := range Types() {
		ctx := fullContext()
		ctx.Type = typ

		letter, err := writer.Generate(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, letter.Subject)
		assert.NotEmpty(t, letter.Body)
		assert.Equal(t, typ, letter.Type)
	}
}

func TestGenerate_PrunesPlaceholderLines(t *testing.T) {
	writer := NewWriter()

	letter, err := writer.Generate(Context{Type: TypeApplication, Organization: "Local Food Bank"})
	require.NoError(t, err)

	assert.NotContains(t, letter.Body, "[Your Name]")
	assert.NotContains(t, letter.Body, "[Your Email]")
	assert.NotContains(t, letter.Body, "\n\n\n")
}

func TestGenerate_UsesClock(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	writer := NewWriter().WithClock(func() time.Time { return issued })

	letter, err := writer.Generate(fullContext())
	require.NoError(t, err)

	assert.Equal(t, issued, letter.GeneratedAt)
}

func TestQuality_CompleteLetterScoresFull(t *testing.T) {
	ctx := fullContext()
	ctx.RecipientName = "Maria Lopez"

	writer := NewWriter()
	letter, err := writer.Generate(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1.0, letter.QualityScore)
	assert.Empty(t, letter.Suggestions)
}

func TestQuality_DeductionsForMissingDetails(t *testing.T) {
	writer := NewWriter()

	letter, err := writer.Generate(Context{Type: TypeApplication})
	require.NoError(t, err)

	// missing sender -0.1, generic organization -0.05
	assert.InDelta(t, 0.85, letter.QualityScore, 1e-9)
	assert.Contains(t, letter.Suggestions, "Add your name to personalize the letter")
	assert.Contains(t, letter.Suggestions, "Specify the organization name")
	assert.Contains(t, letter.Suggestions, "Adding relevant experience can strengthen your application")
	assert.Contains(t, letter.Suggestions, "Highlighting specific skills can make your letter more compelling")
}

func TestQuality_ShortLetterPenalised(t *testing.T) {
	body := "Dear Sam, thanks. Jane"
	score := assessQuality(body, Context{SenderName: "Jane", Organization: "Food Bank"})

	assert.InDelta(t, 0.9, score, 1e-9)
}

func TestQuality_LongLetterPenalised(t *testing.T) {
	body := strings.Repeat("word ", 501)
	score := assessQuality(body, Context{SenderName: "Jane", Organization: "Food Bank"})

	assert.InDelta(t, 0.95, score, 1e-9)
}

func TestQuality_RecipientPersonalisationBonusClampedToOne(t *testing.T) {
	body := "Dear Maria Lopez, " + strings.Repeat("word ", 60)
	score := assessQuality(body, Context{
		SenderName:    "Jane",
		Organization:  "Food Bank",
		RecipientName: "Maria Lopez",
	})

	assert.Equal(t, 1.0, score)
}

func TestSubject_PerType(t *testing.T) {
	assert.Equal(t, "Volunteer Application - General Volunteer", Subject(Context{Type: TypeApplication}))
	assert.Equal(t, "Thank You - Volunteer Experience", Subject(Context{Type: TypeThankYou}))
	assert.Equal(t, "Volunteer Opportunity Inquiry - Harvest Share", Subject(Context{Type: TypeOutreach, Organization: "Harvest Share"}))
	assert.Equal(t, "Follow Up - Volunteer Application", Subject(Context{Type: TypeFollowUp}))
	assert.Equal(t, "Partnership Proposal - Volunteer Program", Subject(Context{Type: TypePartnership}))
	assert.Equal(t, "Recommendation Request - Volunteer Service", Subject(Context{Type: TypeRecommendationRequest}))
	assert.Equal(t, "Confirmation - Volunteer Commitment", Subject(Context{Type: TypeConfirmation}))
	assert.Equal(t, "Schedule Change - Volunteer Session", Subject(Context{Type: TypeCancellation}))
	assert.Equal(t, "Volunteer Inquiry", Subject(Context{Type: Type("memo")}))
}
