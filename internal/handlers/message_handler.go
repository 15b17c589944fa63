package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"etalase/internal/services"
	"etalase/internal/validation"
)

// MessageHandler handles the public contact form and the operator inbox.
type MessageHandler struct {
	service *services.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{
		service: service,
	}
}

// RegisterPublicRoutes registers the unauthenticated contact endpoint.
func (h *MessageHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSubmitContact)
}

// RegisterAdminRoutes registers the operator inbox routes.
func (h *MessageHandler) RegisterAdminRoutes(router fiber.Router) {
	messageRoutes := router.Group("/messages")
	messageRoutes.Get("/", h.HandleListMessages)
	messageRoutes.Patch("/:id/read", h.HandleMarkAsRead)
	messageRoutes.Delete("/:id", h.HandleDeleteMessage)
}

// HandleSubmitContact accepts an anonymous contact-form submission. The
// submitter sees the specific field problem on validation failure, and
// only a generic flag on anything else.
func (h *MessageHandler) HandleSubmitContact(c *fiber.Ctx) error {
	var form validation.ContactForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing contact request body: %v", err)
		return respondFail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if _, err := h.service.SubmitContact(&form); err != nil {
		log.Printf("Error submitting contact message: %v", err)
		return respondError(c, err, "Failed to submit message")
	}
	return respondCreated(c, nil)
}

// HandleListMessages returns the inbox, newest first.
func (h *MessageHandler) HandleListMessages(c *fiber.Ctx) error {
	messages, err := h.service.ListMessages()
	if err != nil {
		log.Printf("Error listing messages: %v", err)
		return respondError(c, err, "Failed to fetch messages")
	}
	return respondOK(c, messages)
}

// HandleMarkAsRead moves a message to the Read status.
func (h *MessageHandler) HandleMarkAsRead(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "Failed to update message")
	}
	if err := h.service.MarkAsRead(id); err != nil {
		log.Printf("Error marking message %d as read: %v", id, err)
		return respondError(c, err, "Failed to update message")
	}
	return respondOK(c, nil)
}

// HandleDeleteMessage removes a message from the inbox.
func (h *MessageHandler) HandleDeleteMessage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "Failed to delete message")
	}
	if err := h.service.DeleteMessage(id); err != nil {
		log.Printf("Error deleting message %d: %v", id, err)
		return respondError(c, err, "Failed to delete message")
	}
	return respondOK(c, nil)
}
