package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"etalase/internal/services"
	"etalase/internal/storage"
)

// AdminHandler serves the dashboard stats and image uploads.
type AdminHandler struct {
	stats    *services.StatsService
	uploader storage.Uploader
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(stats *services.StatsService, uploader storage.Uploader) *AdminHandler {
	return &AdminHandler{
		stats:    stats,
		uploader: uploader,
	}
}

// RegisterAdminRoutes registers the dashboard and upload routes.
func (h *AdminHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/stats", h.HandleStats)
	router.Post("/uploads", h.HandleUpload)
}

// HandleStats returns the dashboard summary counts.
func (h *AdminHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.stats.GetDashboardStats()
	if err != nil {
		log.Printf("Error fetching dashboard stats: %v", err)
		return respondError(c, err, "Failed to fetch stats")
	}
	return respondOK(c, stats)
}

// HandleUpload stores an uploaded image and returns its public URL. The
// URL string is all the rest of the system ever keeps.
func (h *AdminHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return respondFail(c, fiber.StatusBadRequest, "No file uploaded")
	}

	url, err := h.uploader.Save(file)
	if err != nil {
		log.Printf("Error saving upload %s: %v", file.Filename, err)
		return respondFail(c, fiber.StatusInternalServerError, "Upload failed")
	}
	return respondOK(c, fiber.Map{"url": url})
}
