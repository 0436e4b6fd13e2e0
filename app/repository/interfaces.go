package repository

import (
	"github.com/anaepietro/wedding-backend/app/models"
)

// CommentRepository defines the read side of the public guestbook.
type CommentRepository interface {
	ListNewestFirst() ([]models.Comment, error)
	Count() (int64, error)
}

// GuestRepository defines attendance-list database operations.
type GuestRepository interface {
	Create(guest *models.Guest) error
	GetByID(id uint) (*models.Guest, error)
	GetByName(name string) (*models.Guest, error)
	List() ([]models.Guest, error)
	UpdateStatus(id uint, status string) error
}

// Repositories bundles all repository implementations.
type Repositories struct {
	Comment CommentRepository
	Guest   GuestRepository
}
