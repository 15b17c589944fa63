package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"etalase/internal/models"
)

// MockMessageRepository is an in-memory implementation of MessageRepository.
type MockMessageRepository struct {
	messages map[uint]models.Message
	nextID   uint
	mu       sync.RWMutex
}

// NewMockMessageRepository creates a new instance of MockMessageRepository.
func NewMockMessageRepository() *MockMessageRepository {
	return &MockMessageRepository{
		messages: make(map[uint]models.Message),
		nextID:   1,
	}
}

// GetAll returns all messages, newest first.
func (r *MockMessageRepository) GetAll() ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messageList := make([]models.Message, 0, len(r.messages))
	for _, m := range r.messages {
		messageList = append(messageList, m)
	}
	sort.Slice(messageList, func(i, j int) bool {
		if messageList[i].CreatedAt.Equal(messageList[j].CreatedAt) {
			return messageList[i].ID > messageList[j].ID
		}
		return messageList[i].CreatedAt.After(messageList[j].CreatedAt)
	})
	return messageList, nil
}

// GetByID returns a message by its ID.
func (r *MockMessageRepository) GetByID(id uint) (*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	message, ok := r.messages[id]
	if !ok {
		return nil, fmt.Errorf("message %d: %w", id, ErrNotFound)
	}
	return &message, nil
}

// Create adds a new message, assigning an auto-incremented ID.
func (r *MockMessageRepository) Create(message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.ID = r.nextID
	r.nextID++
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	r.messages[message.ID] = *message
	return nil
}

// UpdateStatus rewrites the status of an existing message.
func (r *MockMessageRepository) UpdateStatus(id uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	message, ok := r.messages[id]
	if !ok {
		return fmt.Errorf("message %d: %w", id, ErrNotFound)
	}
	message.Status = status
	r.messages[id] = message
	return nil
}

// Delete removes a message by its ID.
func (r *MockMessageRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.messages[id]
	if !ok {
		return fmt.Errorf("message %d: %w", id, ErrNotFound)
	}
	delete(r.messages, id)
	return nil
}

// Count returns the number of stored messages.
func (r *MockMessageRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.messages)), nil
}
