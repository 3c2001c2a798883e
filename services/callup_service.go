package services

import (
	"context"
	"fmt"

	"github.com/seguro-calcio/team-manager/models"
	"github.com/seguro-calcio/team-manager/repositories"
)

type CallupService interface {
	Create(ctx context.Context, input CallupInput) (*models.Callup, error)
	GetByID(ctx context.Context, id int) (*models.Callup, error)
	List(ctx context.Context) ([]models.Callup, error)
	Update(ctx context.Context, id int, input CallupInput) (*models.Callup, error)
	Delete(ctx context.Context, id int) error
}

type CallupInput struct {
	Opponent        string         `json:"opponent"`
	Date            string         `json:"date"`
	MeetingTime     string         `json:"meetingTime"`
	KickoffTime     string         `json:"kickoffTime"`
	Location        string         `json:"location"`
	IsHome          bool           `json:"isHome"`
	SelectedPlayers models.IntList `json:"selectedPlayers"`
}

type callupService struct {
	callupRepo repositories.CallupRepository
}

func NewCallupService(callupRepo repositories.CallupRepository) CallupService {
	return &callupService{callupRepo: callupRepo}
}

func (s *callupService) Create(ctx context.Context, input CallupInput) (*models.Callup, error) {
	callup := &models.Callup{
		Opponent:        input.Opponent,
		Date:            input.Date,
		MeetingTime:     input.MeetingTime,
		KickoffTime:     input.KickoffTime,
		Location:        input.Location,
		IsHome:          input.IsHome,
		SelectedPlayers: input.SelectedPlayers,
	}
	if err := s.callupRepo.Create(ctx, callup); err != nil {
		return nil, fmt.Errorf("creating callup: %w", err)
	}
	return callup, nil
}

func (s *callupService) GetByID(ctx context.Context, id int) (*models.Callup, error) {
	return s.callupRepo.GetByID(ctx, id)
}

func (s *callupService) List(ctx context.Context) ([]models.Callup, error) {
	return s.callupRepo.List(ctx)
}

func (s *callupService) Update(ctx context.Context, id int, input CallupInput) (*models.Callup, error) {
	callup, err := s.callupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	callup.Opponent = input.Opponent
	callup.Date = input.Date
	callup.MeetingTime = input.MeetingTime
	callup.KickoffTime = input.KickoffTime
	callup.Location = input.Location
	callup.IsHome = input.IsHome
	callup.SelectedPlayers = input.SelectedPlayers
	if err := s.callupRepo.Update(ctx, callup); err != nil {
		return nil, fmt.Errorf("updating callup %d: %w", id, err)
	}
	return callup, nil
}

func (s *callupService) Delete(ctx context.Context, id int) error {
	return s.callupRepo.Delete(ctx, id)
}
