package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seguro-calcio/team-manager/models"
)

var ErrTrainingNotFound = errors.New("training week not found")

type TrainingRepository interface {
	Create(ctx context.Context, training *models.Training) error
	GetByID(ctx context.Context, id int) (*models.Training, error)
	List(ctx context.Context) ([]models.Training, error)
	Update(ctx context.Context, training *models.Training) error
	Delete(ctx context.Context, id int) error
}

type gormTrainingRepository struct {
	db *gorm.DB
}

func NewGormTrainingRepository(db *gorm.DB) TrainingRepository {
	return &gormTrainingRepository{db: db}
}

func (r *gormTrainingRepository) Create(ctx context.Context, training *models.Training) error {
	if training.Sessions == nil {
		training.Sessions = models.SessionList{}
	}
	return r.db.WithContext(ctx).Create(training).Error
}

func (r *gormTrainingRepository) GetByID(ctx context.Context, id int) (*models.Training, error) {
	var training models.Training
	if err := r.db.WithContext(ctx).First(&training, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainingNotFound
		}
		return nil, err
	}
	return &training, nil
}

func (r *gormTrainingRepository) List(ctx context.Context) ([]models.Training, error) {
	var trainings []models.Training
	if err := r.db.WithContext(ctx).Order("week_number asc").Find(&trainings).Error; err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *gormTrainingRepository) Update(ctx context.Context, training *models.Training) error {
	result := r.db.WithContext(ctx).Model(&models.Training{ID: training.ID}).Updates(map[string]interface{}{
		"week_number": training.WeekNumber,
		"week_label":  training.WeekLabel,
		"sessions":    training.Sessions,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTrainingNotFound
	}
	return nil
}

func (r *gormTrainingRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&models.Training{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTrainingNotFound
	}
	return nil
}
