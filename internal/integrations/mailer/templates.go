package mailer

import "text/template"

type mailTemplate struct {
	subject *template.Template
	body    *template.Template
}

func mustTemplate(name, subject, body string) mailTemplate {
	return mailTemplate{
		subject: template.Must(template.New(name + "_subject").Parse(subject)),
		body:    template.Must(template.New(name + "_body").Parse(body)),
	}
}

var templates = map[Kind]mailTemplate{
	KindGuestReceived: mustTemplate(string(KindGuestReceived),
		`We received your request #{{.R.ID}}`,
		`Hello {{.R.FirstName}},

thank you for your reservation request from {{.R.ArrivalDate}} to {{.R.DepartureDate}} ({{.R.Nights}} nights, {{.R.Guests}} guests).
Total: {{.AmountDue}} EUR.

We will get back to you shortly.
`),

	KindOperatorNew: mustTemplate(string(KindOperatorNew),
		`New reservation request #{{.R.ID}} from {{.R.FullName}}`,
		`{{.R.FullName}} <{{.R.Email}}>{{if .R.Phone}}, {{.R.Phone}}{{end}}
Stay: {{.R.ArrivalDate}} - {{.R.DepartureDate}} ({{.R.Nights}} nights, {{.R.Guests}} guests)
Total: {{.AmountDue}} EUR{{if .R.PromoCode}} (promo {{.R.PromoCode}}){{end}}
Suggested deposit: {{.Deposit}} EUR
{{if .R.Message}}
Message:
{{.R.Message}}
{{end}}
Manage: {{.ManageURL}}
`),

	KindApproved: mustTemplate(string(KindApproved),
		`Your reservation #{{.R.ID}} is approved`,
		`Hello {{.R.FirstName}},

your stay from {{.R.ArrivalDate}} to {{.R.DepartureDate}} is approved.
Please pay the deposit of {{.Deposit}} EUR to confirm:
{{.PaymentURL}}
`),

	KindRejected: mustTemplate(string(KindRejected),
		`Your reservation request #{{.R.ID}}`,
		`Hello {{.R.FirstName}},

unfortunately we cannot accept your request from {{.R.ArrivalDate}} to {{.R.DepartureDate}}.
{{if .R.RejectionReason}}
{{.R.RejectionReason}}
{{end}}`),

	KindPaid: mustTemplate(string(KindPaid),
		`Reservation #{{.R.ID}} confirmed`,
		`Hello {{.R.FirstName}},

we received your deposit. Your stay from {{.R.ArrivalDate}} to {{.R.DepartureDate}} is confirmed.
`),
}
