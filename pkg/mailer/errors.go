package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrSendFailed indicates the provider refused or failed delivery.
	ErrSendFailed = errors.New("failed to send email")

	// ErrUnknownAccount indicates the mail account ID is not configured.
	ErrUnknownAccount = errors.New("unknown mail account")
)
