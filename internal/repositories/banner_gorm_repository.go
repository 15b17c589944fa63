package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"etalase/internal/models"
)

// GORMBannerRepository is a GORM implementation of BannerRepository.
type GORMBannerRepository struct {
	db *gorm.DB
}

// NewGORMBannerRepository creates a new instance of GORMBannerRepository.
func NewGORMBannerRepository(db *gorm.DB) *GORMBannerRepository {
	return &GORMBannerRepository{
		db: db,
	}
}

// GetAll retrieves every banner, sorted by display order ascending.
func (r *GORMBannerRepository) GetAll() ([]models.HeroBanner, error) {
	var banners []models.HeroBanner
	if err := r.db.Order("display_order ASC").Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to get all banners: %w", err)
	}
	return banners, nil
}

// GetActive retrieves only active banners, sorted by display order
// ascending. This is the public-facing read path.
func (r *GORMBannerRepository) GetActive() ([]models.HeroBanner, error) {
	var banners []models.HeroBanner
	if err := r.db.Where("is_active = ?", true).Order("display_order ASC").Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to get active banners: %w", err)
	}
	return banners, nil
}

// GetByID retrieves a single banner by its ID.
func (r *GORMBannerRepository) GetByID(id uint) (*models.HeroBanner, error) {
	var banner models.HeroBanner
	if err := r.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("banner %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get banner %d: %w", id, err)
	}
	return &banner, nil
}

// Create inserts a new banner. The caller is responsible for assigning
// the display order before the insert.
func (r *GORMBannerRepository) Create(banner *models.HeroBanner) error {
	if err := r.db.Create(banner).Error; err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}
	return nil
}

// Update overwrites the full banner record.
func (r *GORMBannerRepository) Update(banner *models.HeroBanner) error {
	res := r.db.Save(banner)
	if res.Error != nil {
		return fmt.Errorf("failed to update banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner %d: %w", banner.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a banner by its ID.
func (r *GORMBannerRepository) Delete(id uint) error {
	res := r.db.Delete(&models.HeroBanner{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner %d: %w", id, ErrNotFound)
	}
	return nil
}

// Reorder rewrites display ranks as one transaction. If any ID matches no
// row the whole batch is rolled back, so concurrent readers never see a
// mix of old and new ranks.
func (r *GORMBannerRepository) Reorder(items []BannerOrder) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			res := tx.Model(&models.HeroBanner{}).Where("id = ?", item.ID).Update("display_order", item.Order)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("banner %d: %w", item.ID, ErrNotFound)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to reorder banners: %w", err)
	}
	return nil
}
