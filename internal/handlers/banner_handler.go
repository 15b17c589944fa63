package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"etalase/internal/cache"
	"etalase/internal/repositories"
	"etalase/internal/services"
)

// BannerHandler handles HTTP requests for hero banners.
type BannerHandler struct {
	service *services.BannerService
	views   *cache.Views
}

// NewBannerHandler creates a new BannerHandler.
func NewBannerHandler(service *services.BannerService, views *cache.Views) *BannerHandler {
	return &BannerHandler{
		service: service,
		views:   views,
	}
}

// RegisterPublicRoutes registers the storefront banner route, which
// returns active banners only.
func (h *BannerHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/banners", h.HandleListActiveBanners)
}

// RegisterAdminRoutes registers the operator banner routes.
func (h *BannerHandler) RegisterAdminRoutes(router fiber.Router) {
	bannerRoutes := router.Group("/banners")
	bannerRoutes.Get("/", h.HandleListAllBanners)
	bannerRoutes.Post("/", h.HandleCreateBanner)
	bannerRoutes.Put("/reorder", h.HandleReorderBanners)
	bannerRoutes.Post("/move", h.HandleMoveBanner)
	bannerRoutes.Put("/:id", h.HandleUpdateBanner)
	bannerRoutes.Delete("/:id", h.HandleDeleteBanner)
}

// HandleListActiveBanners returns active banners sorted by display order,
// served from the view cache between writes.
func (h *BannerHandler) HandleListActiveBanners(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if payload, ok := h.views.Get(ctx, "/banners"); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(payload)
	}

	banners, err := h.service.ListActive()
	if err != nil {
		log.Printf("Error listing active banners: %v", err)
		return respondError(c, err, "Failed to fetch banners")
	}

	payload, err := json.Marshal(fiber.Map{"success": true, "data": banners})
	if err != nil {
		return respondError(c, err, "Failed to fetch banners")
	}
	h.views.Set(ctx, "/banners", payload)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

// HandleListAllBanners returns every banner for the admin screen,
// regardless of activity.
func (h *BannerHandler) HandleListAllBanners(c *fiber.Ctx) error {
	banners, err := h.service.ListAll()
	if err != nil {
		log.Printf("Error listing banners: %v", err)
		return respondError(c, err, "Failed to fetch banners")
	}
	return respondOK(c, banners)
}

// HandleCreateBanner appends a banner at the end of the display sequence.
func (h *BannerHandler) HandleCreateBanner(c *fiber.Ctx) error {
	var input services.BannerInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing banner request body: %v", err)
		return respondFail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	banner, err := h.service.CreateBanner(&input)
	if err != nil {
		log.Printf("Error creating banner: %v", err)
		return respondError(c, err, "Failed to create banner")
	}
	return respondCreated(c, banner)
}

// HandleUpdateBanner overwrites the editable fields of a banner.
func (h *BannerHandler) HandleUpdateBanner(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "Failed to update banner")
	}
	var input services.BannerInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing banner request body: %v", err)
		return respondFail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	banner, err := h.service.UpdateBanner(id, &input)
	if err != nil {
		log.Printf("Error updating banner %d: %v", id, err)
		return respondError(c, err, "Failed to update banner")
	}
	return respondOK(c, banner)
}

// HandleDeleteBanner removes a banner.
func (h *BannerHandler) HandleDeleteBanner(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "Failed to delete banner")
	}
	if err := h.service.DeleteBanner(id); err != nil {
		log.Printf("Error deleting banner %d: %v", id, err)
		return respondError(c, err, "Failed to delete banner")
	}
	return respondOK(c, nil)
}

// MoveBannerRequest asks for an adjacent swap of the banner at index with
// its neighbor in the given direction.
type MoveBannerRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction"`
}

// HandleMoveBanner swaps a banner with its immediate neighbor. Edge moves
// are no-op successes.
func (h *BannerHandler) HandleMoveBanner(c *fiber.Ctx) error {
	var req MoveBannerRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing move request body: %v", err)
		return respondFail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.MoveBanner(req.Index, services.MoveDirection(req.Direction)); err != nil {
		log.Printf("Error moving banner at %d %s: %v", req.Index, req.Direction, err)
		return respondError(c, err, "Failed to reorder banners")
	}
	return respondOK(c, nil)
}

// ReorderBannersRequest carries a complete rank rewrite.
type ReorderBannersRequest struct {
	Items []repositories.BannerOrder `json:"items"`
}

// HandleReorderBanners persists a bulk rank rewrite atomically.
func (h *BannerHandler) HandleReorderBanners(c *fiber.Ctx) error {
	var req ReorderBannersRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing reorder request body: %v", err)
		return respondFail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.ReorderBanners(req.Items); err != nil {
		log.Printf("Error reordering banners: %v", err)
		return respondError(c, err, "Failed to reorder banners")
	}
	return respondOK(c, nil)
}
