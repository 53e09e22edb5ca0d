package repository

// MailRepository delivers a report artifact as an email attachment.
type MailRepository interface {
	// Send builds a multipart message with a plain-text body and the file at
	// attachmentPath attached, and submits it over an authenticated STARTTLS
	// connection. Authentication and transport errors are returned to the
	// caller; the run treats them as fatal.
	Send(subject, body, attachmentPath string) error
}
