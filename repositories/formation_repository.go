package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seguro-calcio/team-manager/models"
)

var ErrFormationNotFound = errors.New("formation not found")

type FormationRepository interface {
	Create(ctx context.Context, formation *models.Formation) error
	GetByID(ctx context.Context, id int) (*models.Formation, error)
	GetLatest(ctx context.Context) (*models.Formation, error)
	Update(ctx context.Context, formation *models.Formation) error
}

type gormFormationRepository struct {
	db *gorm.DB
}

func NewGormFormationRepository(db *gorm.DB) FormationRepository {
	return &gormFormationRepository{db: db}
}

func (r *gormFormationRepository) Create(ctx context.Context, formation *models.Formation) error {
	if formation.Positions == nil {
		formation.Positions = models.PositionMap{}
	}
	if formation.Substitutes == nil {
		formation.Substitutes = models.SubstituteList{}
	}
	return r.db.WithContext(ctx).Create(formation).Error
}

func (r *gormFormationRepository) GetByID(ctx context.Context, id int) (*models.Formation, error) {
	var formation models.Formation
	if err := r.db.WithContext(ctx).First(&formation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormationNotFound
		}
		return nil, err
	}
	return &formation, nil
}

// GetLatest returns the most recently saved board, which is the one the
// tactics view always works on.
func (r *gormFormationRepository) GetLatest(ctx context.Context) (*models.Formation, error) {
	var formation models.Formation
	if err := r.db.WithContext(ctx).Order("updated_at desc").First(&formation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormationNotFound
		}
		return nil, err
	}
	return &formation, nil
}

func (r *gormFormationRepository) Update(ctx context.Context, formation *models.Formation) error {
	if formation.Positions == nil {
		formation.Positions = models.PositionMap{}
	}
	if formation.Substitutes == nil {
		formation.Substitutes = models.SubstituteList{}
	}
	result := r.db.WithContext(ctx).Model(&models.Formation{ID: formation.ID}).Updates(map[string]interface{}{
		"module":      formation.Module,
		"positions":   formation.Positions,
		"substitutes": formation.Substitutes,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFormationNotFound
	}
	return nil
}
