package services

import (
	"encoding/json"
	"log"

	"etalase/internal/models"
	"etalase/internal/repositories"
	"etalase/internal/validation"
)

// EventPublisher publishes storefront events for notification consumers.
// Implemented by pkg/rabbitmq.Client.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// MessageService handles inbound contact messages and the operator-side
// inbox.
type MessageService struct {
	repo      repositories.MessageRepository
	publisher EventPublisher
}

// NewMessageService creates a new MessageService. publisher may be nil
// when no message broker is configured; submission then skips the event.
func NewMessageService(repo repositories.MessageRepository, publisher EventPublisher) *MessageService {
	return &MessageService{
		repo:      repo,
		publisher: publisher,
	}
}

// SubmitContact is the public, unauthenticated entry point. It validates
// the form, stamps the initial status and the default subject, persists
// the message and publishes a best-effort notification event.
func (s *MessageService) SubmitContact(form *validation.ContactForm) (*models.Message, error) {
	input, err := validation.ValidateContact(form)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
		Subject: models.DefaultSubject,
		Status:  models.MessageStatusNew,
	}
	if err := s.repo.Create(message); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"messageID": message.ID,
			"name":      message.Name,
			"email":     message.Email,
			"subject":   message.Subject,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal contact event: %v", err)
		} else if err := s.publisher.Publish("contact.received", body); err != nil {
			// Notification is best effort; the message is already stored.
			log.Printf("Warning: failed to publish contact event for message %d: %v", message.ID, err)
		}
	}

	return message, nil
}

// ListMessages retrieves all messages, newest first.
func (s *MessageService) ListMessages() ([]models.Message, error) {
	return s.repo.GetAll()
}

// MarkAsRead moves a message to the Read status. The transition is
// one-way; re-marking an already-read message rewrites the same value and
// succeeds.
func (s *MessageService) MarkAsRead(id uint) error {
	return s.repo.UpdateStatus(id, models.MessageStatusRead)
}

// DeleteMessage removes a message, irreversibly.
func (s *MessageService) DeleteMessage(id uint) error {
	return s.repo.Delete(id)
}
