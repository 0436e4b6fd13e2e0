package repository

import (
	"github.com/anaepietro/wedding-backend/app/models"
	"gorm.io/gorm"
)

type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new guest repository instance.
func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(guest *models.Guest) error {
	return r.db.Create(guest).Error
}

func (r *guestRepository) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.First(&guest, id).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) GetByName(name string) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.Where("name = ?", name).First(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) List() ([]models.Guest, error) {
	var guests []models.Guest
	err := r.db.Order("name ASC").Find(&guests).Error
	return guests, err
}

func (r *guestRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Guest{}).Where("id = ?", id).Update("status", status).Error
}
