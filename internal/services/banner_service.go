package services

import (
	"context"

	"etalase/internal/cache"
	"etalase/internal/models"
	"etalase/internal/repositories"
	"etalase/internal/validation"
)

// MoveDirection is the direction of an adjacent banner swap.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// BannerInput carries the editable banner fields. Title and Link are
// optional; the display order is owned by the service and never accepted
// from input.
type BannerInput struct {
	Title    string `json:"title" form:"title"`
	ImageURL string `json:"imageUrl" form:"imageUrl"`
	Link     string `json:"link" form:"link"`
	IsActive bool   `json:"isActive" form:"isActive"`
}

// BannerService maintains the ordered set of hero banners.
type BannerService struct {
	repo  repositories.BannerRepository
	views *cache.Views
}

// NewBannerService creates a new BannerService. views may be nil when
// view caching is disabled.
func NewBannerService(repo repositories.BannerRepository, views *cache.Views) *BannerService {
	return &BannerService{
		repo:  repo,
		views: views,
	}
}

// ListActive returns the public-facing banner set: active banners only,
// sorted by display order.
func (s *BannerService) ListActive() ([]models.HeroBanner, error) {
	return s.repo.GetActive()
}

// ListAll returns every banner regardless of activity, for the admin view.
func (s *BannerService) ListAll() ([]models.HeroBanner, error) {
	return s.repo.GetAll()
}

// CreateBanner appends a banner at the end of the display sequence:
// order = max existing order + 1, or 0 when the set is empty. Appending
// ignores isActive.
func (s *BannerService) CreateBanner(input *BannerInput) (*models.HeroBanner, error) {
	if input.ImageURL == "" {
		return nil, &validation.Error{Field: "ImageURL", Message: "Image URL is required"}
	}

	banners, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	maxOrder := -1
	for _, b := range banners {
		if b.Order > maxOrder {
			maxOrder = b.Order
		}
	}

	banner := &models.HeroBanner{
		Title:    input.Title,
		ImageURL: input.ImageURL,
		Link:     input.Link,
		IsActive: input.IsActive,
		Order:    maxOrder + 1,
	}
	if err := s.repo.Create(banner); err != nil {
		return nil, err
	}
	s.invalidateBannerViews()
	return banner, nil
}

// UpdateBanner overwrites the editable fields of a banner. The display
// order is untouched; use MoveBanner or ReorderBanners for that.
func (s *BannerService) UpdateBanner(id uint, input *BannerInput) (*models.HeroBanner, error) {
	if input.ImageURL == "" {
		return nil, &validation.Error{Field: "ImageURL", Message: "Image URL is required"}
	}

	banner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	banner.Title = input.Title
	banner.ImageURL = input.ImageURL
	banner.Link = input.Link
	banner.IsActive = input.IsActive

	if err := s.repo.Update(banner); err != nil {
		return nil, err
	}
	s.invalidateBannerViews()
	return banner, nil
}

// DeleteBanner removes a banner by its ID.
func (s *BannerService) DeleteBanner(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateBannerViews()
	return nil
}

// MoveBanner swaps the display order of the banner at index (within the
// full admin-ordered list) with its immediate neighbor. Moving the first
// banner up or the last banner down is a no-op success. The swap is a
// pure adjacent transposition: after any number of moves the order values
// remain a permutation of the originals.
func (s *BannerService) MoveBanner(index int, direction MoveDirection) error {
	if direction != MoveUp && direction != MoveDown {
		return &validation.Error{Field: "Direction", Message: "Direction must be up or down"}
	}

	banners, err := s.repo.GetAll()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(banners) {
		return &validation.Error{Field: "Index", Message: "Invalid banner position"}
	}
	if direction == MoveUp && index == 0 {
		return nil
	}
	if direction == MoveDown && index == len(banners)-1 {
		return nil
	}

	target := index - 1
	if direction == MoveDown {
		target = index + 1
	}

	err = s.repo.Reorder([]repositories.BannerOrder{
		{ID: banners[index].ID, Order: banners[target].Order},
		{ID: banners[target].ID, Order: banners[index].Order},
	})
	if err != nil {
		return err
	}
	s.invalidateBannerViews()
	return nil
}

// ReorderBanners persists a complete rank rewrite as one atomic batch.
// A single unknown ID fails the whole batch; no banner is left with a
// partially applied order.
func (s *BannerService) ReorderBanners(items []repositories.BannerOrder) error {
	if len(items) == 0 {
		return nil
	}
	if err := s.repo.Reorder(items); err != nil {
		return err
	}
	s.invalidateBannerViews()
	return nil
}

func (s *BannerService) invalidateBannerViews() {
	s.views.Invalidate(context.Background(), "/", "/banners")
}
