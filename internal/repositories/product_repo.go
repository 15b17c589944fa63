package repositories

import (
	"etalase/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetAll returns products newest first.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	Count() (int64, error)
}
