package repositories

import (
	"etalase/internal/models"
)

// BannerOrder is one entry of a bulk reorder: the banner to touch and the
// rank it should take.
type BannerOrder struct {
	ID    uint `json:"id"`
	Order int  `json:"order"`
}

// BannerRepository defines the interface for hero-banner data access.
// GetAll and GetActive return banners sorted by display order ascending;
// GetActive filters to isActive banners for the public read path.
// Reorder applies the whole batch atomically: a single unknown ID rolls
// every change back.
type BannerRepository interface {
	GetAll() ([]models.HeroBanner, error)
	GetActive() ([]models.HeroBanner, error)
	GetByID(id uint) (*models.HeroBanner, error)
	Create(banner *models.HeroBanner) error
	Update(banner *models.HeroBanner) error
	Delete(id uint) error
	Reorder(items []BannerOrder) error
}
