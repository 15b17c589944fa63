package handlers

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"etalase/internal/cache"
	"etalase/internal/services"
	"etalase/internal/validation"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.CatalogService
	views   *cache.Views
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.CatalogService, views *cache.Views) *ProductHandler {
	return &ProductHandler{
		service: service,
		views:   views,
	}
}

// RegisterPublicRoutes registers the unauthenticated catalog routes.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
}

// RegisterAdminRoutes registers the operator CRUD routes.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleListProducts returns the catalog, newest first. The public path
// is served from the view cache between writes.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if payload, ok := h.views.Get(ctx, "/products"); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(payload)
	}

	products, err := h.service.ListProducts()
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return respondError(c, err, "Failed to fetch products")
	}

	payload, err := json.Marshal(fiber.Map{"success": true, "data": products})
	if err != nil {
		return respondError(c, err, "Failed to fetch products")
	}
	h.views.Set(ctx, "/products", payload)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

// HandleGetProduct returns a single product.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch product")
	}
	product, err := h.service.GetProduct(id)
	if err != nil {
		log.Printf("Error getting product %d: %v", id, err)
		return respondError(c, err, "Failed to fetch product")
	}
	return respondOK(c, product)
}

// HandleCreateProduct creates a product from a form submission.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var form validation.ProductForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return respondFail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	product, err := h.service.CreateProduct(&form)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, err, "Failed to create product")
	}
	return respondCreated(c, product)
}

// HandleUpdateProduct overwrites a product with the complete submitted
// field set.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "Failed to update product")
	}
	var form validation.ProductForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return respondFail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	product, err := h.service.UpdateProduct(id, &form)
	if err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		return respondError(c, err, "Failed to update product")
	}
	return respondOK(c, product)
}

// HandleDeleteProduct removes a product. Deleting a missing id is a
// failure, not a silent success.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "Failed to delete product")
	}
	if err := h.service.DeleteProduct(id); err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		return respondError(c, err, "Failed to delete product")
	}
	return respondOK(c, nil)
}
