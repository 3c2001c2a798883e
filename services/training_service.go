package services

import (
	"context"
	"fmt"

	"github.com/seguro-calcio/team-manager/models"
	"github.com/seguro-calcio/team-manager/repositories"
)

type TrainingService interface {
	Create(ctx context.Context, input TrainingInput) (*models.Training, error)
	GetByID(ctx context.Context, id int) (*models.Training, error)
	List(ctx context.Context) ([]models.Training, error)
	Update(ctx context.Context, id int, input TrainingInput) (*models.Training, error)
	Delete(ctx context.Context, id int) error
}

type TrainingInput struct {
	WeekNumber int                `json:"weekNumber"`
	WeekLabel  string             `json:"weekLabel"`
	Sessions   models.SessionList `json:"sessions"`
}

type trainingService struct {
	trainingRepo repositories.TrainingRepository
}

func NewTrainingService(trainingRepo repositories.TrainingRepository) TrainingService {
	return &trainingService{trainingRepo: trainingRepo}
}

func (s *trainingService) Create(ctx context.Context, input TrainingInput) (*models.Training, error) {
	if input.WeekNumber <= 0 {
		return nil, fmt.Errorf("%w: week number must be positive", ErrValidation)
	}
	training := &models.Training{
		WeekNumber: input.WeekNumber,
		WeekLabel:  input.WeekLabel,
		Sessions:   input.Sessions,
	}
	if err := s.trainingRepo.Create(ctx, training); err != nil {
		return nil, fmt.Errorf("creating training week: %w", err)
	}
	return training, nil
}

func (s *trainingService) GetByID(ctx context.Context, id int) (*models.Training, error) {
	return s.trainingRepo.GetByID(ctx, id)
}

func (s *trainingService) List(ctx context.Context) ([]models.Training, error) {
	return s.trainingRepo.List(ctx)
}

func (s *trainingService) Update(ctx context.Context, id int, input TrainingInput) (*models.Training, error) {
	training, err := s.trainingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.WeekNumber > 0 {
		training.WeekNumber = input.WeekNumber
	}
	training.WeekLabel = input.WeekLabel
	if input.Sessions != nil {
		training.Sessions = input.Sessions
	}
	if err := s.trainingRepo.Update(ctx, training); err != nil {
		return nil, fmt.Errorf("updating training week %d: %w", id, err)
	}
	return training, nil
}

func (s *trainingService) Delete(ctx context.Context, id int) error {
	return s.trainingRepo.Delete(ctx, id)
}
