// Package smtp delivers mail through a per-account SMTP server.
//
// The back office configures one mail account per mailbox (host, port,
// credentials, default sender); each account maps to one Sender instance.
package smtp

// Config holds the SMTP settings of one mail account.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host        string `env:"SMTP_HOST"`
	Port        int    `env:"SMTP_PORT" envDefault:"587"`
	Username    string `env:"SMTP_USERNAME"`
	Password    string `env:"SMTP_PASSWORD"`
	SenderEmail string `env:"SMTP_FROM_EMAIL"`
	SenderName  string `env:"SMTP_FROM_NAME"`
	// Encryption is one of "starttls" (default), "tls", or "none".
	Encryption string `env:"SMTP_ENCRYPTION" envDefault:"starttls"`
}
