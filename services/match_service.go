package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seguro-calcio/team-manager/cache"
	"github.com/seguro-calcio/team-manager/live"
	"github.com/seguro-calcio/team-manager/matchlog"
	"github.com/seguro-calcio/team-manager/models"
	"github.com/seguro-calcio/team-manager/repositories"
)

// PlayerStatsCacheKey is where the aggregated season stats live in the KV
// store. Every ledger mutation invalidates it.
const PlayerStatsCacheKey = "player_stats"

type MatchService interface {
	Create(ctx context.Context, input MatchInput) (*models.Match, error)
	GetByID(ctx context.Context, id int) (*models.Match, error)
	List(ctx context.Context) ([]models.Match, error)
	Update(ctx context.Context, id int, input MatchInput) (*models.Match, error)
	Delete(ctx context.Context, id int) error

	AddEvent(ctx context.Context, matchID int, event models.MatchEvent) (*models.Match, error)
	UpdateEvent(ctx context.Context, matchID int, eventID string, patch matchlog.EventPatch) (*models.Match, error)
	RemoveEvent(ctx context.Context, matchID int, eventID string) (*models.Match, error)
	RecalculateMinutes(ctx context.Context, matchID int, input MinutesInput) (*models.Match, []matchlog.Warning, error)
}

type MatchInput struct {
	Round   int     `json:"round"`
	Date    string  `json:"date"`
	Time    string  `json:"time"`
	Home    string  `json:"home"`
	Away    string  `json:"away"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Result  *string `json:"result"`
}

type MinutesInput struct {
	Duration int   `json:"duration"`
	Lineup   []int `json:"lineup"`
	Reset    bool  `json:"reset"`
}

type matchService struct {
	matchRepo repositories.MatchRepository
	hub       *live.Hub
	kv        cache.KVStore
	logger    *slog.Logger
}

func NewMatchService(matchRepo repositories.MatchRepository, hub *live.Hub, kv cache.KVStore, logger *slog.Logger) MatchService {
	return &matchService{matchRepo: matchRepo, hub: hub, kv: kv, logger: logger}
}

func (s *matchService) Create(ctx context.Context, input MatchInput) (*models.Match, error) {
	match := &models.Match{
		Round:   input.Round,
		Date:    input.Date,
		Time:    input.Time,
		Home:    input.Home,
		Away:    input.Away,
		Address: input.Address,
		City:    input.City,
		Result:  input.Result,
		Events:  models.EventList{},
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("creating match: %w", err)
	}
	return match, nil
}

func (s *matchService) GetByID(ctx context.Context, id int) (*models.Match, error) {
	return s.matchRepo.GetByID(ctx, id)
}

func (s *matchService) List(ctx context.Context) ([]models.Match, error) {
	return s.matchRepo.List(ctx)
}

func (s *matchService) Update(ctx context.Context, id int, input MatchInput) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	match.Round = input.Round
	match.Date = input.Date
	match.Time = input.Time
	match.Home = input.Home
	match.Away = input.Away
	match.Address = input.Address
	match.City = input.City
	match.Result = input.Result
	if err := s.matchRepo.Update(ctx, match); err != nil {
		return nil, fmt.Errorf("updating match %d: %w", id, err)
	}
	s.broadcast(match)
	return match, nil
}

func (s *matchService) Delete(ctx context.Context, id int) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateStats()
	return nil
}

func (s *matchService) AddEvent(ctx context.Context, matchID int, event models.MatchEvent) (*models.Match, error) {
	return s.mutateLedger(ctx, matchID, func(events models.EventList) models.EventList {
		return matchlog.AddEvent(events, event)
	})
}

func (s *matchService) UpdateEvent(ctx context.Context, matchID int, eventID string, patch matchlog.EventPatch) (*models.Match, error) {
	return s.mutateLedger(ctx, matchID, func(events models.EventList) models.EventList {
		return matchlog.UpdateEvent(events, eventID, patch)
	})
}

func (s *matchService) RemoveEvent(ctx context.Context, matchID int, eventID string) (*models.Match, error) {
	return s.mutateLedger(ctx, matchID, func(events models.EventList) models.EventList {
		return matchlog.RemoveEvent(events, eventID)
	})
}

func (s *matchService) mutateLedger(ctx context.Context, matchID int, mutate func(models.EventList) models.EventList) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	match.Events = mutate(match.Events)
	if err := s.matchRepo.UpdateEvents(ctx, matchID, match.Events); err != nil {
		return nil, fmt.Errorf("storing ledger of match %d: %w", matchID, err)
	}

	s.invalidateStats()
	s.broadcast(match)
	return match, nil
}

// RecalculateMinutes reruns the minutes computation for a match and stores
// the result. Unless Reset is set, totals accumulate on top of the minutes
// already stored, which covers matches logged across several sittings.
func (s *matchService) RecalculateMinutes(ctx context.Context, matchID int, input MinutesInput) (*models.Match, []matchlog.Warning, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, nil, err
	}

	previous := match.Minutes
	if input.Reset {
		previous = nil
	}
	minutes, warnings := matchlog.ComputeMinutes(input.Duration, input.Lineup, match.Events, previous)
	match.Minutes = minutes
	if err := s.matchRepo.UpdateMinutes(ctx, matchID, minutes); err != nil {
		return nil, nil, fmt.Errorf("storing minutes of match %d: %w", matchID, err)
	}

	for _, w := range warnings {
		s.logger.Warn("minutes computation warning",
			slog.Int("match_id", matchID),
			slog.String("event_id", w.EventID),
			slog.String("message", w.Message))
	}

	s.broadcast(match)
	return match, warnings, nil
}

func (s *matchService) broadcast(match *models.Match) {
	if s.hub != nil {
		s.hub.BroadcastMatchUpdate(match.ID, match)
	}
}

func (s *matchService) invalidateStats() {
	if s.kv == nil {
		return
	}
	if err := s.kv.Delete(PlayerStatsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate stats cache", slog.Any("error", err))
	}
}
