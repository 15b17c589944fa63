package services

import (
	"context"

	"etalase/internal/cache"
	"etalase/internal/models"
	"etalase/internal/repositories"
	"etalase/internal/validation"
)

// CatalogService handles business logic for the product catalog.
type CatalogService struct {
	repo  repositories.ProductRepository
	views *cache.Views
}

// NewCatalogService creates a new CatalogService. views may be nil when
// view caching is disabled.
func NewCatalogService(repo repositories.ProductRepository, views *cache.Views) *CatalogService {
	return &CatalogService{
		repo:  repo,
		views: views,
	}
}

// deriveStatus computes the product status from its stock count. Status
// is never stored independently of this function: every write path calls
// it and input status is ignored.
func deriveStatus(stock int) string {
	if stock > 0 {
		return models.StatusActive
	}
	return models.StatusOutOfStock
}

// ListProducts retrieves all products, newest first.
func (s *CatalogService) ListProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProduct retrieves a single product by its ID.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates the submission, derives the status from stock
// and persists the new product.
func (s *CatalogService) CreateProduct(form *validation.ProductForm) (*models.Product, error) {
	input, err := validation.ValidateProduct(form)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		Status:      deriveStatus(input.Stock),
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	s.invalidateCatalogViews()
	return product, nil
}

// UpdateProduct validates the submission and overwrites the full record.
// Fields not submitted are not preserved; every call supplies the complete
// field set. Status is re-derived from the submitted stock, ignoring
// whatever was stored before.
func (s *CatalogService) UpdateProduct(id uint, form *validation.ProductForm) (*models.Product, error) {
	input, err := validation.ValidateProduct(form)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.ImageURL = input.ImageURL
	product.Status = deriveStatus(input.Stock)

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.invalidateCatalogViews()
	return product, nil
}

// DeleteProduct removes a product. Deleting a missing ID is a failure.
func (s *CatalogService) DeleteProduct(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalogViews()
	return nil
}

func (s *CatalogService) invalidateCatalogViews() {
	s.views.Invalidate(context.Background(), "/", "/products")
}
