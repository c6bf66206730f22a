package letters

import "text/template"

var templates = map[Type]*template.Template{
	TypeApplication:           template.Must(template.New("application").Parse(applicationTemplate)),
	TypeThankYou:              template.Must(template.New("thank_you").Parse(thankYouTemplate)),
	TypeOutreach:              template.Must(template.New("outreach").Parse(outreachTemplate)),
	TypeFollowUp:              template.Must(template.New("follow_up").Parse(followUpTemplate)),
	TypePartnership:           template.Must(template.New("partnership").Parse(partnershipTemplate)),
	TypeRecommendationRequest: template.Must(template.New("recommendation_request").Parse(recommendationTemplate)),
	TypeConfirmation:          template.Must(template.New("confirmation").Parse(confirmationTemplate)),
	TypeCancellation:          template.Must(template.New("cancellation").Parse(cancellationTemplate)),
}

const applicationTemplate = `Dear {{.recipient_name}},

I am writing to express my interest in volunteering as a {{.role}} with {{.organization}}. {{.reason}}

{{.experience}}

I am available {{.availability}} and am committed to contributing meaningfully to your mission.

{{.skills}}

{{.additional_info}}

Thank you for considering my application. I look forward to the opportunity to contribute to your important work.

Sincerely,
{{.sender_name}}
{{.sender_email}}`

const thankYouTemplate = `Dear {{.recipient_name}},

I wanted to express my heartfelt gratitude for the opportunity to volunteer with {{.organization}}.

{{.experience}}

The experience has been incredibly rewarding, and I have learned so much from working with your team.

{{.additional_info}}

Thank you again for your guidance and support throughout my time volunteering.

With appreciation,
{{.sender_name}}`

const outreachTemplate = `Dear {{.recipient_name}},

I am reaching out to inquire about volunteer opportunities with {{.organization}}. {{.reason}}

{{.experience}}

I would love to learn more about how I can contribute to your mission. {{.additional_info}}

Would you be available for a brief call or meeting to discuss potential opportunities?

Best regards,
{{.sender_name}}
{{.sender_email}}`

const followUpTemplate = `Dear {{.recipient_name}},

I hope this message finds you well. I am following up on my {{.previous_action}} regarding volunteer opportunities with {{.organization}}.

{{.additional_info}}

I remain very interested in contributing to your mission and would appreciate any updates you might have.

Please let me know if there is any additional information I can provide.

Thank you for your time.

Best regards,
{{.sender_name}}
{{.sender_email}}`

const partnershipTemplate = `Dear {{.recipient_name}},

I am reaching out on behalf of our organization to explore potential partnership opportunities with {{.organization}}.

{{.reason}}

We believe that together, we could make a significant impact in our community through coordinated volunteer efforts.

{{.additional_info}}

I would welcome the opportunity to discuss this further at your convenience.

Best regards,
{{.sender_name}}
{{.sender_email}}`

const recommendationTemplate = `Dear {{.recipient_name}},

I hope this message finds you well. I am reaching out to request a letter of recommendation for my volunteer service with {{.organization}}.

{{.experience}}

{{.additional_info}}

If you are able to provide a recommendation, I would be happy to provide any additional information that might be helpful.

Thank you for considering my request.

Sincerely,
{{.sender_name}}
{{.sender_email}}`

const confirmationTemplate = `Dear {{.recipient_name}},

I am writing to confirm my commitment to volunteer as a {{.role}} with {{.organization}}.

I understand that I will be volunteering {{.availability}}.

{{.additional_info}}

Please let me know if there is anything I should prepare or bring.

Thank you, and I look forward to contributing to your team.

Best regards,
{{.sender_name}}
{{.sender_email}}`

const cancellationTemplate = `Dear {{.recipient_name}},

I regret to inform you that I need to cancel my upcoming volunteer session with {{.organization}}.

{{.reason}}

I sincerely apologize for any inconvenience this may cause. {{.additional_info}}

I remain committed to volunteering and would like to reschedule at your earliest convenience.

Thank you for your understanding.

Sincerely,
{{.sender_name}}
{{.sender_email}}`
