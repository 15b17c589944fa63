package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"etalase/internal/models"
	"etalase/internal/repositories"
	"etalase/internal/services"
	"etalase/internal/validation"
)

// MockProductRepository is a mock implementation of
// repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func productForm(stock string) *validation.ProductForm {
	return &validation.ProductForm{
		Name:        "Pistachio Delight",
		Description: "Rich pistachio flavor in every bite.",
		Price:       "35.00",
		Stock:       stock,
		ImageURL:    "/uploads/pistachio.png",
	}
}

func TestCatalogService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	expected := []models.Product{
		{ID: 2, Name: "Product B", Price: "20.00", Stock: 50},
		{ID: 1, Name: "Product A", Price: "10.00", Stock: 100},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	products, err := service.ListProducts()

	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_CreateProduct_DerivesActiveStatus(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Status == models.StatusActive && p.Stock == 50
	})).Return(nil).Once()

	product, err := service.CreateProduct(productForm("50"))

	assert.NoError(t, err)
	assert.Equal(t, models.StatusActive, product.Status)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_CreateProduct_DerivesOutOfStockStatus(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Status == models.StatusOutOfStock && p.Stock == 0
	})).Return(nil).Once()

	product, err := service.CreateProduct(productForm("0"))

	assert.NoError(t, err)
	assert.Equal(t, models.StatusOutOfStock, product.Status)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_CreateProduct_ValidationError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	form := productForm("50")
	form.Price = "$45"

	product, err := service.CreateProduct(form)

	assert.Nil(t, product)
	assert.EqualError(t, err, "Invalid price format")
	// The repository must never be touched on invalid input.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// Update re-derives status from the submitted stock, ignoring whatever
// the record held before.
func TestCatalogService_UpdateProduct_RederivesStatus(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	existing := &models.Product{ID: 1, Name: "Old", Stock: 10, Status: models.StatusActive}
	mockRepo.On("GetByID", uint(1)).Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == 1 && p.Status == models.StatusOutOfStock && p.Stock == 0
	})).Return(nil).Once()

	product, err := service.UpdateProduct(1, productForm("0"))

	assert.NoError(t, err)
	assert.Equal(t, models.StatusOutOfStock, product.Status)
	assert.Equal(t, "Pistachio Delight", product.Name)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("product 99: %w", repositories.ErrNotFound)).Once()

	product, err := service.UpdateProduct(99, productForm("5"))

	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(1))

	// Deleting a missing id is a failure, not a silent success.
	mockRepo.On("Delete", uint(99)).Return(fmt.Errorf("product 99: %w", repositories.ErrNotFound)).Once()
	err := service.DeleteProduct(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
