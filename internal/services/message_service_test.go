package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"etalase/internal/models"
	"etalase/internal/repositories"
	"etalase/internal/services"
	"etalase/internal/validation"
)

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func contactForm() *validation.ContactForm {
	return &validation.ContactForm{
		Name:    "Jo",
		Email:   "jo@example.com",
		Message: "I would like to place an order.",
	}
}

func TestMessageService_SubmitContact_StampsDefaults(t *testing.T) {
	repo := repositories.NewMockMessageRepository()
	publisher := new(MockEventPublisher)
	publisher.On("Publish", "contact.received", mock.Anything).Return(nil).Once()
	service := services.NewMessageService(repo, publisher)

	message, err := service.SubmitContact(contactForm())

	assert.NoError(t, err)
	assert.Equal(t, models.MessageStatusNew, message.Status)
	assert.Equal(t, models.DefaultSubject, message.Subject)
	publisher.AssertExpectations(t)

	stored, err := repo.GetByID(message.ID)
	assert.NoError(t, err)
	assert.Equal(t, "jo@example.com", stored.Email)
}

func TestMessageService_SubmitContact_ValidationError(t *testing.T) {
	repo := repositories.NewMockMessageRepository()
	publisher := new(MockEventPublisher)
	service := services.NewMessageService(repo, publisher)

	form := contactForm()
	form.Email = "a@b"

	message, err := service.SubmitContact(form)

	assert.Nil(t, message)
	assert.EqualError(t, err, "Invalid email address")
	count, _ := repo.Count()
	assert.Zero(t, count)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

// A broken broker must not fail the submission; the message is already
// stored by the time the event goes out.
func TestMessageService_SubmitContact_PublishFailureIsSwallowed(t *testing.T) {
	repo := repositories.NewMockMessageRepository()
	publisher := new(MockEventPublisher)
	publisher.On("Publish", "contact.received", mock.Anything).Return(assert.AnError).Once()
	service := services.NewMessageService(repo, publisher)

	message, err := service.SubmitContact(contactForm())

	assert.NoError(t, err)
	assert.NotNil(t, message)
	publisher.AssertExpectations(t)
}

func TestMessageService_SubmitContact_WithoutPublisher(t *testing.T) {
	repo := repositories.NewMockMessageRepository()
	service := services.NewMessageService(repo, nil)

	message, err := service.SubmitContact(contactForm())

	assert.NoError(t, err)
	assert.NotNil(t, message)
}

func TestMessageService_ListMessages_NewestFirst(t *testing.T) {
	repo := repositories.NewMockMessageRepository()
	service := services.NewMessageService(repo, nil)

	first, err := service.SubmitContact(contactForm())
	assert.NoError(t, err)
	second, err := service.SubmitContact(contactForm())
	assert.NoError(t, err)

	messages, err := service.ListMessages()
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, second.ID, messages[0].ID)
	assert.Equal(t, first.ID, messages[1].ID)
}

func TestMessageService_MarkAsRead_Idempotent(t *testing.T) {
	repo := repositories.NewMockMessageRepository()
	service := services.NewMessageService(repo, nil)

	message, err := service.SubmitContact(contactForm())
	assert.NoError(t, err)

	assert.NoError(t, service.MarkAsRead(message.ID))
	// Re-marking an already-read message rewrites the same value and
	// still succeeds.
	assert.NoError(t, service.MarkAsRead(message.ID))

	stored, err := repo.GetByID(message.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.MessageStatusRead, stored.Status)
}

func TestMessageService_MarkAsRead_NotFound(t *testing.T) {
	repo := repositories.NewMockMessageRepository()
	service := services.NewMessageService(repo, nil)

	err := service.MarkAsRead(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMessageService_DeleteMessage(t *testing.T) {
	repo := repositories.NewMockMessageRepository()
	service := services.NewMessageService(repo, nil)

	message, err := service.SubmitContact(contactForm())
	assert.NoError(t, err)

	assert.NoError(t, service.DeleteMessage(message.ID))

	_, err = repo.GetByID(message.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, service.DeleteMessage(message.ID), repositories.ErrNotFound)
}
