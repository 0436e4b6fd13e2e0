package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Canonical payment states. Provider-reported literals are mapped onto
// these in the payments package; handlers never compare raw provider
// strings.
const (
	PaymentStatusPending    = "PENDING"
	PaymentStatusAuthorized = "AUTHORIZED"
	PaymentStatusPaid       = "PAID"
	PaymentStatusInAnalysis = "IN_ANALYSIS"
	PaymentStatusDeclined   = "DECLINED"
	PaymentStatusCanceled   = "CANCELED"
	PaymentStatusUnknown    = "UNKNOWN"
)

// TokenUsed is written over a payment's access token once a comment has
// been submitted with it. The overwrite is what makes the token single-use.
const TokenUsed = "USED"

// Payment is one gift checkout. ReferenceID is generated locally, sent to
// the provider inside every line item and used to correlate webhook
// notifications back to this row. Rows are never deleted.
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Email         string    `gorm:"type:varchar(200);not null" json:"email" validate:"required,email,max=200"`
	TaxID         string    `gorm:"type:varchar(20);not null" json:"tax_id" validate:"required,max=20"`
	ItemSummary   string    `gorm:"type:varchar(100)" json:"item_summary"`
	ItemsJSON     string    `gorm:"type:text" json:"-"`
	Total         float64   `gorm:"type:decimal(10,2)" json:"total"`
	Status        string    `gorm:"type:varchar(20);index" json:"status"`
	ReferenceID   string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"reference_id"`
	ChargeID      *string   `gorm:"type:varchar(64)" json:"charge_id,omitempty"`
	// Token holds the issued 4-digit access token until consumption, then
	// the TokenUsed sentinel. UsedToken retains the original value so a
	// repeat attempt resolves to "already used" rather than "unknown token".
	Token     string `gorm:"type:varchar(8);index" json:"-"`
	UsedToken string `gorm:"type:varchar(8);index" json:"-"`
	CustomerName  string    `gorm:"type:varchar(150)" json:"customer_name"`
	CustomerEmail string    `gorm:"type:varchar(200)" json:"customer_email"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Payment) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// IsPaid reports whether the webhook reconciler has confirmed this payment.
func (p *Payment) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}

// TokenConsumed reports whether the access token has already been used.
func (p *Payment) TokenConsumed() bool {
	return p.Token == TokenUsed
}

// NotifyEmail is the address confirmation mail goes to: the one the
// provider reported during checkout when present, else the one the guest
// typed on the site.
func (p *Payment) NotifyEmail() string {
	if p.CustomerEmail != "" {
		return p.CustomerEmail
	}
	return p.Email
}
