// Package mailer defines the outbound mail contract of the composition
// engine and ships provider adapters for it.
//
// The engine itself only prepares an Email; actual delivery, including
// any retry policy, belongs to the provider behind the Sender interface.
// Two adapters are included:
//
//   - resend: delivery through the Resend API
//   - smtp: delivery through a per-account SMTP server, the way the
//     back office sends through its configured mail accounts
//
// Custom providers implement Sender:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) error {
//		// hand the email to your provider
//		return nil
//	}
package mailer
