package notification

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateData is everything the email bodies interpolate.
type TemplateData struct {
	Name            string
	RegistrationID  string
	EventNames      string
	PassType        string
	Amount          int
	College         string
	Date            string
	Venue           string
	TransactionID   string
	TeamMembersList string
}

const confirmationSubject = "Registration Confirmed – Technovate 2026 | Government College of Technology"

const confirmationTmpl = `<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;color:#1e293b">
  <h2 style="color:#0891b2">Technovate 2026 – Registration Confirmed</h2>
  <p>Dear {{if .Name}}{{.Name}}{{else}}Participant{{end}},</p>
  <p>Greetings from the Department of Information Technology!</p>
  <p>We are delighted to inform you that your registration for Technovate 2026 has been successfully confirmed.</p>
  <table style="border-collapse:collapse;width:100%;margin:16px 0">
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Event Name</b></td><td style="padding:6px;border:1px solid #e2e8f0">{{if .EventNames}}{{.EventNames}}{{else}}N/A{{end}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Pass</b></td><td style="padding:6px;border:1px solid #e2e8f0">{{if .PassType}}{{.PassType}}{{else}}N/A{{end}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Amount</b></td><td style="padding:6px;border:1px solid #e2e8f0">₹{{.Amount}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Date</b></td><td style="padding:6px;border:1px solid #e2e8f0">{{.Date}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Venue</b></td><td style="padding:6px;border:1px solid #e2e8f0">{{.Venue}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Reporting Time</b></td><td style="padding:6px;border:1px solid #e2e8f0">9:00 AM</td></tr>
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Registration ID</b></td><td style="padding:6px;border:1px solid #e2e8f0">{{if .RegistrationID}}{{.RegistrationID}}{{else}}N/A{{end}}</td></tr>
  </table>
  <p><b>Event Pass Details:</b></p>
  <ul>
    <li>Your pass grants access to all events under Technovate 2026.</li>
    <li>Please carry a valid College ID card.</li>
    <li>Show this email at the registration desk for verification.</li>
  </ul>
  <p><b>Important Instructions:</b></p>
  <ul>
    <li>Participants must report on time.</li>
    <li>Bring necessary materials (if required for your event).</li>
    <li>Lunch and refreshments will be provided.</li>
  </ul>
  <p>If you have any queries, feel free to contact us.<br>
  Mobile: +91 9025490023<br>
  Email: technovate26@gmail.com</p>
  <p>Let's innovate. Let's compete. Let's win.</p>
  <p>Warm Regards,<br>
  Team Technovate 2026<br>
  Department of Information Technology<br>
  Government College of Technology, Coimbatore</p>
</div>`

const verificationSubject = "Payment Under Verification – Technovate 2026"

const verificationTmpl = `<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;color:#1e293b">
  <h2 style="color:#d97706">Technovate 2026 – Payment Verification Pending</h2>
  <p>Dear {{if .Name}}{{.Name}}{{else}}Participant{{end}},</p>
  <p>We have received your registration for Technovate 2026. Your payment is currently under verification by our team.</p>
  <table style="border-collapse:collapse;width:100%;margin:16px 0">
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Status</b></td><td style="padding:6px;border:1px solid #e2e8f0;color:#d97706"><b>PENDING VERIFICATION</b></td></tr>
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Registration ID</b></td><td style="padding:6px;border:1px solid #e2e8f0">{{if .RegistrationID}}{{.RegistrationID}}{{else}}N/A{{end}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Transaction ID</b></td><td style="padding:6px;border:1px solid #e2e8f0">{{if .TransactionID}}{{.TransactionID}}{{else}}N/A{{end}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Event Name</b></td><td style="padding:6px;border:1px solid #e2e8f0">{{if .EventNames}}{{.EventNames}}{{else}}N/A{{end}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Pass</b></td><td style="padding:6px;border:1px solid #e2e8f0">{{if .PassType}}{{.PassType}}{{else}}N/A{{end}}</td></tr>
    <tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Amount</b></td><td style="padding:6px;border:1px solid #e2e8f0">₹{{.Amount}}</td></tr>
    {{if .TeamMembersList}}<tr><td style="padding:6px;border:1px solid #e2e8f0"><b>Team Members</b></td><td style="padding:6px;border:1px solid #e2e8f0">{{.TeamMembersList}}</td></tr>{{end}}
  </table>
  <p>You will receive a confirmation email once the payment is verified. No further action is needed from your side.</p>
  <p>If the verification takes more than 24 hours, contact us at technovate26@gmail.com quoting your Registration ID.</p>
  <p>Warm Regards,<br>
  Team Technovate 2026<br>
  Department of Information Technology<br>
  Government College of Technology, Coimbatore</p>
</div>`

var (
	confirmationTemplate = template.Must(template.New("confirmation").Parse(confirmationTmpl))
	verificationTemplate = template.Must(template.New("verification").Parse(verificationTmpl))
)

// RenderConfirmation builds the subject and HTML body of the
// registration confirmation email.
func RenderConfirmation(data TemplateData) (string, string, error) {
	var body bytes.Buffer
	if err := confirmationTemplate.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("failed to render email template: %w", err)
	}
	return confirmationSubject, body.String(), nil
}

// RenderVerificationPending builds the PENDING VERIFICATION email.
func RenderVerificationPending(data TemplateData) (string, string, error) {
	var body bytes.Buffer
	if err := verificationTemplate.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("failed to render email template: %w", err)
	}
	return verificationSubject, body.String(), nil
}
