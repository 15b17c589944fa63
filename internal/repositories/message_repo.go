package repositories

import (
	"etalase/internal/models"
)

// MessageRepository defines the interface for contact-message data access.
// GetAll returns messages newest first. Message bodies are immutable after
// submission; UpdateStatus is the only mutation besides Delete.
type MessageRepository interface {
	GetAll() ([]models.Message, error)
	GetByID(id uint) (*models.Message, error)
	Create(message *models.Message) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
	Count() (int64, error)
}
