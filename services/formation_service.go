package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/seguro-calcio/team-manager/models"
	"github.com/seguro-calcio/team-manager/repositories"
)

type FormationService interface {
	// Latest returns the current tactics board, creating an empty default
	// one when none has ever been saved.
	Latest(ctx context.Context) (*models.Formation, error)
	Save(ctx context.Context, input FormationInput) (*models.Formation, error)
}

type FormationInput struct {
	Module      string                `json:"module"`
	Positions   models.PositionMap    `json:"positions"`
	Substitutes models.SubstituteList `json:"substitutes"`
}

type formationService struct {
	formationRepo repositories.FormationRepository
}

func NewFormationService(formationRepo repositories.FormationRepository) FormationService {
	return &formationService{formationRepo: formationRepo}
}

func (s *formationService) Latest(ctx context.Context) (*models.Formation, error) {
	formation, err := s.formationRepo.GetLatest(ctx)
	if err == nil {
		return formation, nil
	}
	if !errors.Is(err, repositories.ErrFormationNotFound) {
		return nil, err
	}

	formation = &models.Formation{
		Module:      models.DefaultModule,
		Positions:   models.PositionMap{},
		Substitutes: models.SubstituteList{},
	}
	if err := s.formationRepo.Create(ctx, formation); err != nil {
		return nil, fmt.Errorf("creating default formation: %w", err)
	}
	return formation, nil
}

// Save upserts the single board: the latest row is updated in place, so the
// table never grows past the one formation the club actually maintains.
func (s *formationService) Save(ctx context.Context, input FormationInput) (*models.Formation, error) {
	formation, err := s.Latest(ctx)
	if err != nil {
		return nil, err
	}

	if input.Module != "" {
		formation.Module = input.Module
	}
	if input.Positions != nil {
		formation.Positions = input.Positions
	}
	if input.Substitutes != nil {
		formation.Substitutes = input.Substitutes
	}
	if err := s.formationRepo.Update(ctx, formation); err != nil {
		return nil, fmt.Errorf("saving formation: %w", err)
	}
	return formation, nil
}
