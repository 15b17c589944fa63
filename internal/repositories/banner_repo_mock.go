package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"etalase/internal/models"
)

// MockBannerRepository is an in-memory implementation of BannerRepository.
type MockBannerRepository struct {
	banners map[uint]models.HeroBanner
	nextID  uint
	mu      sync.RWMutex
}

// NewMockBannerRepository creates a new instance of MockBannerRepository.
func NewMockBannerRepository() *MockBannerRepository {
	return &MockBannerRepository{
		banners: make(map[uint]models.HeroBanner),
		nextID:  1,
	}
}

func sortByOrder(banners []models.HeroBanner) {
	sort.Slice(banners, func(i, j int) bool {
		if banners[i].Order == banners[j].Order {
			return banners[i].ID < banners[j].ID
		}
		return banners[i].Order < banners[j].Order
	})
}

// GetAll returns every banner, sorted by display order ascending.
func (r *MockBannerRepository) GetAll() ([]models.HeroBanner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bannerList := make([]models.HeroBanner, 0, len(r.banners))
	for _, b := range r.banners {
		bannerList = append(bannerList, b)
	}
	sortByOrder(bannerList)
	return bannerList, nil
}

// GetActive returns only active banners, sorted by display order ascending.
func (r *MockBannerRepository) GetActive() ([]models.HeroBanner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bannerList := make([]models.HeroBanner, 0, len(r.banners))
	for _, b := range r.banners {
		if b.IsActive {
			bannerList = append(bannerList, b)
		}
	}
	sortByOrder(bannerList)
	return bannerList, nil
}

// GetByID returns a banner by its ID.
func (r *MockBannerRepository) GetByID(id uint) (*models.HeroBanner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	banner, ok := r.banners[id]
	if !ok {
		return nil, fmt.Errorf("banner %d: %w", id, ErrNotFound)
	}
	return &banner, nil
}

// Create adds a new banner, assigning an auto-incremented ID.
func (r *MockBannerRepository) Create(banner *models.HeroBanner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	banner.ID = r.nextID
	r.nextID++
	if banner.CreatedAt.IsZero() {
		banner.CreatedAt = time.Now()
	}
	r.banners[banner.ID] = *banner
	return nil
}

// Update overwrites an existing banner.
func (r *MockBannerRepository) Update(banner *models.HeroBanner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.banners[banner.ID]
	if !ok {
		return fmt.Errorf("banner %d: %w", banner.ID, ErrNotFound)
	}
	banner.CreatedAt = existing.CreatedAt
	r.banners[banner.ID] = *banner
	return nil
}

// Delete removes a banner by its ID.
func (r *MockBannerRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.banners[id]
	if !ok {
		return fmt.Errorf("banner %d: %w", id, ErrNotFound)
	}
	delete(r.banners, id)
	return nil
}

// Reorder applies a rank batch with all-or-nothing semantics: every ID is
// checked before any rank is written.
func (r *MockBannerRepository) Reorder(items []BannerOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if _, ok := r.banners[item.ID]; !ok {
			return fmt.Errorf("failed to reorder banners: banner %d: %w", item.ID, ErrNotFound)
		}
	}
	for _, item := range items {
		banner := r.banners[item.ID]
		banner.Order = item.Order
		r.banners[item.ID] = banner
	}
	return nil
}
