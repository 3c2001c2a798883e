package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seguro-calcio/team-manager/models"
)

var ErrCallupNotFound = errors.New("callup not found")

type CallupRepository interface {
	Create(ctx context.Context, callup *models.Callup) error
	GetByID(ctx context.Context, id int) (*models.Callup, error)
	List(ctx context.Context) ([]models.Callup, error)
	Update(ctx context.Context, callup *models.Callup) error
	Delete(ctx context.Context, id int) error
}

type gormCallupRepository struct {
	db *gorm.DB
}

func NewGormCallupRepository(db *gorm.DB) CallupRepository {
	return &gormCallupRepository{db: db}
}

func (r *gormCallupRepository) Create(ctx context.Context, callup *models.Callup) error {
	if callup.SelectedPlayers == nil {
		callup.SelectedPlayers = models.IntList{}
	}
	return r.db.WithContext(ctx).Create(callup).Error
}

func (r *gormCallupRepository) GetByID(ctx context.Context, id int) (*models.Callup, error) {
	var callup models.Callup
	if err := r.db.WithContext(ctx).First(&callup, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCallupNotFound
		}
		return nil, err
	}
	return &callup, nil
}

func (r *gormCallupRepository) List(ctx context.Context) ([]models.Callup, error) {
	var callups []models.Callup
	if err := r.db.WithContext(ctx).Order("date asc").Find(&callups).Error; err != nil {
		return nil, err
	}
	return callups, nil
}

func (r *gormCallupRepository) Update(ctx context.Context, callup *models.Callup) error {
	if callup.SelectedPlayers == nil {
		callup.SelectedPlayers = models.IntList{}
	}
	result := r.db.WithContext(ctx).Model(&models.Callup{ID: callup.ID}).Updates(map[string]interface{}{
		"opponent":         callup.Opponent,
		"date":             callup.Date,
		"meeting_time":     callup.MeetingTime,
		"kickoff_time":     callup.KickoffTime,
		"location":         callup.Location,
		"is_home":          callup.IsHome,
		"selected_players": callup.SelectedPlayers,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCallupNotFound
	}
	return nil
}

func (r *gormCallupRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&models.Callup{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCallupNotFound
	}
	return nil
}
