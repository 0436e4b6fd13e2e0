package mail

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/anaepietro/wedding-backend/internal/pkg/env"
)

const defaultBrevoAPIURL = "https://api.brevo.com/v3/smtp/email"

// BrevoMailer sends transactional email through the Brevo HTTP API.
type BrevoMailer struct {
	APIKey      string
	APIURL      string
	SenderName  string
	SenderEmail string

	HTTPClient *http.Client
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoSendRequest struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

func NewBrevoMailerFromEnv() *BrevoMailer {
	return &BrevoMailer{
		APIKey:      strings.TrimSpace(env.GetEnv("MAIL_API_KEY", "")),
		APIURL:      strings.TrimSpace(env.GetEnv("MAIL_API_URL", defaultBrevoAPIURL)),
		SenderName:  env.GetEnv("MAIL_SENDER_NAME", env.GetEnv("MAIL_SENDER", "")),
		SenderEmail: env.GetEnv("MAIL_SENDER", ""),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (m *BrevoMailer) Send(to, subject, htmlBody string) error {
	if m.APIKey == "" {
		return errors.New("MAIL_API_KEY is not configured")
	}

	payload := brevoSendRequest{
		Sender:      brevoAddress{Name: m.SenderName, Email: m.SenderEmail},
		To:          []brevoAddress{{Email: to}},
		Subject:     subject,
		HTMLContent: htmlBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", m.APIKey)
	req.Header.Set("content-type", "application/json")

	resp, err := m.HTTPClient.Do(req)
	if err != nil {
		log.Printf("Brevo send error: %v", err)
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("brevo send failed: status=%d body=%s", resp.StatusCode, string(respBody))
		log.Printf("Brevo send error: %v", err)
		return err
	}

	log.Printf("Email sent to %s via Brevo", to)
	return nil
}
