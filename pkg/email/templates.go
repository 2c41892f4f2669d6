package email

import (
	"bytes"
	"fmt"
	"text/template"
)

// User input is embedded as submitted: text/template does no HTML escaping.

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ApplicationEmailData holds the data for both job application emails
type ApplicationEmailData struct {
	Name         string
	Email        string
	Position     string
	Message      string
	ResumeURL    string
	Organization string
	Team         string
}

const contactEmailTemplate = `
<h3>New Contact Submission</h3>
<p><b>Name:</b> {{.Name}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>Subject:</b> {{.Subject}}</p>
<p><b>Message:</b><br>{{.Message}}</p>
`

const applicationAdminTemplate = `
<h2>📄 New Job Application</h2>
<p><b>Name:</b> {{.Name}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>Position:</b> {{.Position}}</p>
<p><b>Resume:</b> <a href="{{or .ResumeURL "#"}}" target="_blank">{{or .ResumeURL "(No link provided)"}}</a></p>
<p><b>Message:</b><br>{{or .Message "(No message provided)"}}</p>
`

const applicationAckTemplate = `
<h3>Hi {{.Name}},</h3>
<p>Thanks for applying for <b>{{.Position}}</b> at <b>{{.Organization}}</b>.</p>
<p>Our HR team will review your application and contact you if shortlisted.</p>
<p>Best regards,<br>{{.Team}}</p>
`

var (
	contactTmpl          = template.Must(template.New("contact").Parse(contactEmailTemplate))
	applicationAdminTmpl = template.Must(template.New("application_admin").Parse(applicationAdminTemplate))
	applicationAckTmpl   = template.Must(template.New("application_ack").Parse(applicationAckTemplate))
)

// ContactSubject is the subject line of the admin copy of a contact message.
func ContactSubject(subject string) string {
	return fmt.Sprintf("New Contact Message: %s", subject)
}

// ApplicationAdminSubject is the subject line of the admin notification.
func ApplicationAdminSubject(position string) string {
	return fmt.Sprintf("New Job Application: %s", position)
}

// ApplicationAckSubject is the subject line of the applicant acknowledgment.
func ApplicationAckSubject(position string) string {
	return fmt.Sprintf("Application Received - %s", position)
}

func RenderContact(data ContactEmailData) (string, error) {
	return render(contactTmpl, data)
}

func RenderApplicationAdmin(data ApplicationEmailData) (string, error) {
	return render(applicationAdminTmpl, data)
}

func RenderApplicationAck(data ApplicationEmailData) (string, error) {
	return render(applicationAckTmpl, data)
}

func render(tmpl *template.Template, data any) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}
	return body.String(), nil
}
