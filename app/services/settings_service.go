package services

import (
	"context"
	"sync"

	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/shopspring/decimal"
)

// SettingsService loads the singleton settings row once at startup and
// serves it from memory. Reload is called after every admin update.
type SettingsService struct {
	repo repositories.SettingsRepositoryImpl

	mu      sync.RWMutex
	current models.Settings
}

func NewSettingsService(repo repositories.SettingsRepositoryImpl) *SettingsService {
	return &SettingsService{repo: repo, current: models.DefaultSettings()}
}

func (s *SettingsService) Load(ctx context.Context) error {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current = *settings
	s.mu.Unlock()
	return nil
}

func (s *SettingsService) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *SettingsService) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *SettingsService) ExchangeRate() decimal.Decimal {
	return s.Get().UsdNprExchangeRate
}

func (s *SettingsService) Update(ctx context.Context, rate decimal.Decimal) (models.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	settings.UsdNprExchangeRate = rate
	if err := s.repo.Update(ctx, settings); err != nil {
		return models.Settings{}, err
	}
	if err := s.Reload(ctx); err != nil {
		return models.Settings{}, err
	}
	return s.Get(), nil
}
