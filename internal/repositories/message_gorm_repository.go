package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"etalase/internal/models"
)

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	db *gorm.DB
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{
		db: db,
	}
}

// GetAll retrieves all messages, newest first.
func (r *GORMMessageRepository) GetAll() ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get all messages: %w", err)
	}
	return messages, nil
}

// GetByID retrieves a single message by its ID.
func (r *GORMMessageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("message %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get message %d: %w", id, err)
	}
	return &message, nil
}

// Create inserts a new message.
func (r *GORMMessageRepository) Create(message *models.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// UpdateStatus rewrites the status of a message. Writing the value a row
// already holds is still a success, which makes mark-as-read idempotent.
func (r *GORMMessageRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&models.Message{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update message status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("message %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a message by its ID.
func (r *GORMMessageRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Message{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("message %d: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the total number of messages, for the dashboard.
func (r *GORMMessageRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Message{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}
