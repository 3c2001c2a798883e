package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seguro-calcio/team-manager/models"
)

type SettingsRepository interface {
	// Get returns the single settings row, creating it with defaults on
	// first access.
	Get(ctx context.Context) (*models.AppSettings, error)
	Update(ctx context.Context, settings *models.AppSettings) error
}

type gormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) SettingsRepository {
	return &gormSettingsRepository{db: db}
}

func (r *gormSettingsRepository) Get(ctx context.Context) (*models.AppSettings, error) {
	var settings models.AppSettings
	err := r.db.WithContext(ctx).Order("id asc").First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = models.AppSettings{SelectedWeek: 1}
	if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *gormSettingsRepository) Update(ctx context.Context, settings *models.AppSettings) error {
	return r.db.WithContext(ctx).Model(&models.AppSettings{ID: settings.ID}).
		Update("selected_week", settings.SelectedWeek).Error
}
