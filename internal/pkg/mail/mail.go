package mail

import "github.com/anaepietro/wedding-backend/internal/pkg/env"

// Sender delivers one HTML email. Implementations must be safe for
// concurrent use; callers treat delivery failure as non-fatal.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// NewSenderFromEnv picks the configured transport: the Brevo HTTP API when
// MAIL_API_KEY is set, plain SMTP otherwise.
func NewSenderFromEnv() Sender {
	if env.GetEnv("MAIL_API_KEY", "") != "" {
		return NewBrevoMailerFromEnv()
	}
	return NewSMTPMailerFromEnv()
}
