package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Comment is a guestbook entry. One can only come into existence through a
// successful token consumption, which links it to the paying guest's
// Payment and copies their display name. Immutable after creation.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GuestName string    `gorm:"type:varchar(150);not null" json:"guest_name"`
	Body      string    `gorm:"type:text;not null" json:"body" validate:"required,min=1"`
	PaymentID uint      `gorm:"index;not null" json:"payment_id"`
	Payment   Payment   `gorm:"foreignKey:PaymentID" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (c *Comment) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
