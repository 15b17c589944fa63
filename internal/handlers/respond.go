package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"etalase/internal/repositories"
	"etalase/internal/validation"
)

// Every endpoint answers with the same envelope: {"success": true,
// "data": ...} or {"success": false, "error": "..."}. Validation failures
// carry the field message verbatim; anything that went wrong past
// validation carries only the generic fallback so storage internals never
// leak to clients.

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondFail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func respondError(c *fiber.Ctx, err error, fallback string) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return respondFail(c, fiber.StatusBadRequest, verr.Message)
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return respondFail(c, fiber.StatusNotFound, fallback)
	}
	return respondFail(c, fiber.StatusInternalServerError, fallback)
}

// parseID reads the :id route parameter as an entity ID.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, &validation.Error{Field: "ID", Message: "Invalid id"}
	}
	return uint(id), nil
}
