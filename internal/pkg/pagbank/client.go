package pagbank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/anaepietro/wedding-backend/internal/pkg/env"
)

const defaultCheckoutURL = "https://sandbox.api.pagseguro.com/checkouts"

// Client talks to the PagBank checkout API.
type Client struct {
	Token       string
	CheckoutURL string

	HTTPClient *http.Client
}

// Customer identifies the payer on a checkout request.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	TaxID string `json:"tax_id"`
}

// Item is one purchased line item. Every item carries the order's
// reference id because PagBank webhooks report items, not the parent
// order, and the per-item reference id is the only way to correlate a
// notification back to the originating checkout.
type Item struct {
	ReferenceID string `json:"reference_id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	UnitAmount  int    `json:"unit_amount"`
}

// CheckoutRequest is the payload posted to /checkouts.
type CheckoutRequest struct {
	ReferenceID      string   `json:"reference_id"`
	Customer         Customer `json:"customer"`
	Items            []Item   `json:"items"`
	NotificationURLs []string `json:"notification_urls"`
	RedirectURL      string   `json:"redirect_url"`
}

// Charge is a provider-side payment attempt with its own id and status.
type Charge struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Link is one typed navigation link returned by the API.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// CheckoutResponse is the provider's answer to a checkout creation.
type CheckoutResponse struct {
	ID      string   `json:"id"`
	Charges []Charge `json:"charges"`
	Links   []Link   `json:"links"`
}

// PayLink returns the href of the link tagged with the PAY action, which
// is where the guest completes the payment.
func (r *CheckoutResponse) PayLink() (string, bool) {
	for _, link := range r.Links {
		if strings.EqualFold(link.Rel, "PAY") {
			return link.Href, link.Href != ""
		}
	}
	return "", false
}

// NewClientFromEnv builds a client from PAGBANK_TOKEN and an optional
// PAGBANK_API_URL override (defaults to the sandbox).
func NewClientFromEnv() *Client {
	return &Client{
		Token:       strings.TrimSpace(env.GetEnv("PAGBANK_TOKEN", "")),
		CheckoutURL: strings.TrimSpace(env.GetEnv("PAGBANK_API_URL", defaultCheckoutURL)),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateCheckout submits a checkout and decodes the provider response.
// Any transport error or non-2xx status is returned as an error.
func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	if c.Token == "" {
		return nil, errors.New("PAGBANK_TOKEN is not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.CheckoutURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.Token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pagbank checkout failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var out CheckoutResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("pagbank checkout: decoding response: %w", err)
	}
	return &out, nil
}
