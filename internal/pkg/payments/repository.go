package payments

import (
	"github.com/anaepietro/wedding-backend/app/models"
	"gorm.io/gorm"
)

// Repository provides the DB operations used by the payments service.
type Repository interface {
	CreatePayment(p *models.Payment) error
	GetPaymentByID(id uint) (*models.Payment, error)
	GetPaymentByReference(referenceID string) (*models.Payment, error)
	GetPaymentByToken(token string) (*models.Payment, error)
	UpdateFromNotification(p *models.Payment, status, customerName, customerEmail string) error
	CreateNotification(n *models.PaymentNotification) error
	ConsumeToken(p *models.Payment, presentedToken string, comment *models.Comment) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a payments repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreatePayment(p *models.Payment) error {
	return r.db.Create(p).Error
}

func (r *gormRepository) GetPaymentByID(id uint) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) GetPaymentByReference(referenceID string) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.Where("reference_id = ?", referenceID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPaymentByToken also matches consumed payments through used_token so
// the token gate can tell "already used" apart from "never issued".
func (r *gormRepository) GetPaymentByToken(token string) (*models.Payment, error) {
	var p models.Payment
	err := r.db.Where("token = ? OR used_token = ?", token, token).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateFromNotification overwrites status and the provider-reported
// customer fields unconditionally. Repeated identical deliveries are
// idempotent; out-of-order deliveries are applied as-is.
func (r *gormRepository) UpdateFromNotification(p *models.Payment, status, customerName, customerEmail string) error {
	updates := map[string]interface{}{
		"status":         status,
		"customer_name":  customerName,
		"customer_email": customerEmail,
	}
	if err := r.db.Model(p).Updates(updates).Error; err != nil {
		return err
	}
	p.Status = status
	p.CustomerName = customerName
	p.CustomerEmail = customerEmail
	return nil
}

func (r *gormRepository) CreateNotification(n *models.PaymentNotification) error {
	return r.db.Create(n).Error
}

// ConsumeToken writes the used-sentinel and inserts the comment in one
// transaction. The token overwrite is guarded by the presented token value,
// so of two concurrent consume attempts only the first can commit a
// comment; the loser sees zero affected rows and fails with ErrTokenUsed.
func (r *gormRepository) ConsumeToken(p *models.Payment, presentedToken string, comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Payment{}).
			Where("id = ? AND token = ?", p.ID, presentedToken).
			Updates(map[string]interface{}{
				"token":      models.TokenUsed,
				"used_token": presentedToken,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTokenUsed
		}
		return tx.Create(comment).Error
	})
}
