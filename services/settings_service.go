package services

import (
	"context"
	"fmt"

	"github.com/seguro-calcio/team-manager/models"
	"github.com/seguro-calcio/team-manager/repositories"
)

type SettingsService interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	SetSelectedWeek(ctx context.Context, week int) (*models.AppSettings, error)
}

type settingsService struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Get(ctx context.Context) (*models.AppSettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) SetSelectedWeek(ctx context.Context, week int) (*models.AppSettings, error) {
	if week <= 0 {
		return nil, fmt.Errorf("%w: selected week must be positive", ErrValidation)
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings.SelectedWeek = week
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("updating settings: %w", err)
	}
	return settings, nil
}
