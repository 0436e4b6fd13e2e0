package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/anaepietro/wedding-backend/internal/pkg/env"
)

// SMTPMailer sends emails via plain SMTP. Used when no Brevo API key is
// configured.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	sender := env.GetEnv("MAIL_SENDER", env.GetEnv("SMTP_SENDER", ""))
	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Printf("MAIL_SENDER not set, using default sender: %s", sender)
	}

	return &SMTPMailer{
		Host:     env.GetEnv("SMTP_HOST", ""),
		Port:     env.GetEnv("SMTP_PORT", "587"),
		Username: env.GetEnv("SMTP_USERNAME", ""),
		Password: env.GetEnv("SMTP_PASSWORD", ""),
		Sender:   sender,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	var auth smtp.Auth
	if m.Username != "" && m.Password != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}

	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", m.Sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			htmlBody,
	)

	err := smtp.SendMail(addr, auth, m.Sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}
