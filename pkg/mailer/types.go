package mailer

import (
	"context"
	"fmt"
)

// Email is a fully-prepared message ready for delivery.
type Email struct {
	Subject     string            // Subject line
	HTML        string            // HTML body
	Text        string            // Plain text alternative
	From        string            // Override the account's default sender
	ReplyTo     string            // Reply-to address
	To          []string          // Recipients (at least one required)
	CC          []string          // Carbon copy recipients
	BCC         []string          // Blind carbon copy recipients
	Headers     map[string]string // Custom headers
	Attachments []Attachment      // File attachments
}

// Attachment is one file carried by an Email.
type Attachment struct {
	Filename    string // Display name
	ContentType string // MIME type (e.g. "application/pdf")
	Content     []byte // Raw file content
}

// Sender is the minimal interface a mail provider implements.
// Delivery is all-or-nothing: an error means the provider accepted none
// of the message.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// Recipient formats a name and address into RFC 5322 form.
// Returns "Name <email>" when a name is given, otherwise just the address.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
