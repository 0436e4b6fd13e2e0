package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Attendance states shown to guests and toggled from the manager panel.
const (
	GuestStatusPending   = "Pendente"
	GuestStatusConfirmed = "Confirmada"
)

// Guest is one attendance-list entry, unique by name.
type Guest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"name" validate:"required,min=2,max=150"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Email     string    `gorm:"type:varchar(200)" json:"email" validate:"omitempty,email,max=200"`
	Status    string    `gorm:"type:varchar(20);default:'Pendente'" json:"status" validate:"omitempty,oneof=Pendente Confirmada"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (g *Guest) Validate() error {
	v := validator.New()

	return v.Struct(g)
}
