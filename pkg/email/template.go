package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

const (
	subjectPrefix  = "New Contact Form Submission - "
	defaultSubject = "General Inquiry"
	// PhonePrefix is the country code prepended to the local number the forms collect
	PhonePrefix = "+92"
	// submittedAtLayout matches the en-US locale string the frontend team is used to reading
	submittedAtLayout = "1/2/2006, 3:04:05 PM"
)

// ContactEmailData holds the fields of a contact form submission
type ContactEmailData struct {
	InquiryPurpose string
	Description    string
	FullName       string
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	Organization   string
	CompanyName    string
	Budget         string
	ProjectType    string
	Message        string
	SubmittedAt    time.Time
}

// Detailed reports whether the contact page variant applies.
func (d ContactEmailData) Detailed() bool {
	return d.InquiryPurpose != ""
}

// Name prefers the split name fields when both are set.
func (d ContactEmailData) Name() string {
	if d.FirstName != "" && d.LastName != "" {
		return d.FirstName + " " + d.LastName
	}
	return d.FullName
}

// Company prefers companyName over organization.
func (d ContactEmailData) Company() string {
	if d.CompanyName != "" {
		return d.CompanyName
	}
	return d.Organization
}

// Phone is pre-escaped so the leading plus sign survives as-is.
func (d ContactEmailData) Phone() template.HTML {
	return template.HTML(PhonePrefix + " " + template.HTMLEscapeString(d.PhoneNumber)) //nolint:gosec // number is escaped above
}

func (d ContactEmailData) Timestamp() string {
	return d.SubmittedAt.Format(submittedAtLayout)
}

// Subject returns the subject line for the submission's variant.
func (d ContactEmailData) Subject() string {
	if d.Detailed() {
		return subjectPrefix + d.InquiryPurpose
	}
	if d.ProjectType != "" {
		return subjectPrefix + d.ProjectType
	}
	return subjectPrefix + defaultSubject
}

// detailedTemplate is used for the contact page form. Every line but email is optional.
const detailedTemplate = `<h2>New Contact Form Submission</h2>
<p><strong>Inquiry Purpose:</strong> {{.InquiryPurpose}}</p>
{{- if .Description}}
<p><strong>Description:</strong> {{.Description}}</p>
{{- end}}
{{- with .Name}}
<p><strong>Name:</strong> {{.}}</p>
{{- end}}
<p><strong>Email:</strong> {{.Email}}</p>
{{- with .Company}}
<p><strong>Company:</strong> {{.}}</p>
{{- end}}
{{- if .Budget}}
<p><strong>Budget:</strong> {{.Budget}}</p>
{{- end}}
{{- if .ProjectType}}
<p><strong>Project Type:</strong> {{.ProjectType}}</p>
{{- end}}
{{- if .PhoneNumber}}
<p><strong>Phone Number:</strong> {{.Phone}}</p>
{{- end}}
{{- if .Message}}
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
{{- end}}
<hr>
<p><em>Submitted at: {{.Timestamp}}</em></p>
`

// basicTemplate is used for the contact-form component and renders every field.
const basicTemplate = `<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Company:</strong> {{.CompanyName}}</p>
<p><strong>Budget:</strong> {{.Budget}}</p>
<p><strong>Project Type:</strong> {{.ProjectType}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
<hr>
<p><em>Submitted at: {{.Timestamp}}</em></p>
`

var (
	detailedTmpl = template.Must(template.New("detailed").Parse(detailedTemplate))
	basicTmpl    = template.Must(template.New("basic").Parse(basicTemplate))
)

// RenderContactEmail builds the subject and HTML body for a submission.
// Field values are HTML-escaped.
func RenderContactEmail(data ContactEmailData) (subject, html string, err error) {
	tmpl := basicTmpl
	if data.Detailed() {
		tmpl = detailedTmpl
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("failed to execute %s email template: %w", tmpl.Name(), err)
	}

	return data.Subject(), body.String(), nil
}
