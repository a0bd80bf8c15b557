package domain

import "html/template"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// QRCodeGenerator renders payload data as a QR code image data URL.
type QRCodeGenerator interface {
	DataURL(data string) (string, error)
}

// RegistrationEmailData holds data for the registration confirmation email.
// QRImage is a data URL; the template.URL type keeps html/template from
// rejecting the data: scheme.
type RegistrationEmailData struct {
	Name         string
	EventPurpose string
	QRImage      template.URL
	QRData       string
}

// AttendanceEmailData holds data for the attendance confirmation email.
type AttendanceEmailData struct {
	Name         string
	EventPurpose string
	RecordedAt   string
}
