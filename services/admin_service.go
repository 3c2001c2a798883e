package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/seguro-calcio/team-manager/cache"
	"github.com/seguro-calcio/team-manager/models"
)

type AdminService interface {
	// Reset wipes all club data (players, matches, trainings, callups,
	// formations, settings) in one transaction. User accounts survive.
	Reset(ctx context.Context) error
}

type adminService struct {
	db     *gorm.DB
	kv     cache.KVStore
	logger *slog.Logger
}

func NewAdminService(db *gorm.DB, kv cache.KVStore, logger *slog.Logger) AdminService {
	return &adminService{db: db, kv: kv, logger: logger}
}

func (s *adminService) Reset(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Match{},
			&models.Callup{},
			&models.Formation{},
			&models.Training{},
			&models.Player{},
			&models.AppSettings{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("resetting club data: %w", err)
	}

	if s.kv != nil {
		if err := s.kv.Delete(PlayerStatsCacheKey); err != nil {
			s.logger.Warn("failed to invalidate stats cache after reset", slog.Any("error", err))
		}
	}
	s.logger.Info("club data reset completed")
	return nil
}
