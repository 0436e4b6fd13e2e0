package repository

import (
	"github.com/anaepietro/wedding-backend/app/models"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) ListNewestFirst() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Count(&count).Error
	return count, err
}
