package models

import "time"

// PaymentNotification is the raw audit record of one inbound provider
// webhook delivery. It is written before any reconciliation happens, even
// for payloads that turn out to be malformed or unmatched, so no delivery
// is ever silently lost. Write-once, never mutated.
type PaymentNotification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PayloadJSON string    `gorm:"type:longtext;not null" json:"payload_json"`
	HeadersJSON string    `gorm:"type:text" json:"headers_json"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
