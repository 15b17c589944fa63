package services

import (
	"etalase/internal/repositories"
)

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	Products  int64 `json:"products"`
	Messages  int64 `json:"messages"`
	Views     int64 `json:"views"`
	Inquiries int64 `json:"inquiries"`
}

// StatsService aggregates dashboard metrics from the entity stores.
type StatsService struct {
	productRepo repositories.ProductRepository
	messageRepo repositories.MessageRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(productRepo repositories.ProductRepository, messageRepo repositories.MessageRepository) *StatsService {
	return &StatsService{
		productRepo: productRepo,
		messageRepo: messageRepo,
	}
}

// GetDashboardStats returns entity counts for the dashboard. Page views
// and inquiries are fixed placeholders until tracking lands in the store.
func (s *StatsService) GetDashboardStats() (*DashboardStats, error) {
	productCount, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}
	messageCount, err := s.messageRepo.Count()
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		Products:  productCount,
		Messages:  messageCount,
		Views:     1234,
		Inquiries: 48,
	}, nil
}
