package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/seguro-calcio/team-manager/cache"
	"github.com/seguro-calcio/team-manager/matchlog"
	"github.com/seguro-calcio/team-manager/models"
	"github.com/seguro-calcio/team-manager/repositories"
)

type StatsService interface {
	// PlayerStats returns the season aggregation for the whole roster.
	PlayerStats(ctx context.Context) (map[int]matchlog.PlayerStats, error)
	// ApplyPlayerStats writes the aggregation back onto the roster rows.
	ApplyPlayerStats(ctx context.Context) error
	// PlayerSummaries joins stats with minutes and training attendance.
	PlayerSummaries(ctx context.Context) ([]PlayerSummary, error)
}

type PlayerSummary struct {
	PlayerID          int    `json:"playerId"`
	Name              string `json:"name"`
	Number            int    `json:"number"`
	Goals             int    `json:"goals"`
	YellowCards       int    `json:"yellowCards"`
	RedCards          int    `json:"redCards"`
	MinutesPlayed     int    `json:"minutesPlayed"`
	AttendancePercent int    `json:"attendancePercent"`
}

type statsService struct {
	playerRepo   repositories.PlayerRepository
	matchRepo    repositories.MatchRepository
	trainingRepo repositories.TrainingRepository
	kv           cache.KVStore
	logger       *slog.Logger
}

func NewStatsService(
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	trainingRepo repositories.TrainingRepository,
	kv cache.KVStore,
	logger *slog.Logger,
) StatsService {
	return &statsService{
		playerRepo:   playerRepo,
		matchRepo:    matchRepo,
		trainingRepo: trainingRepo,
		kv:           kv,
		logger:       logger,
	}
}

func (s *statsService) PlayerStats(ctx context.Context) (map[int]matchlog.PlayerStats, error) {
	if cached, ok := s.cachedStats(); ok {
		return cached, nil
	}

	players, matches, err := s.loadPlayersAndMatches(ctx)
	if err != nil {
		return nil, err
	}

	stats := matchlog.ComputePlayerStats(players, matches)
	s.storeStats(stats)
	return stats, nil
}

func (s *statsService) ApplyPlayerStats(ctx context.Context) error {
	stats, err := s.PlayerStats(ctx)
	if err != nil {
		return err
	}

	updates := make([]repositories.PlayerStatsUpdate, 0, len(stats))
	for id, st := range stats {
		updates = append(updates, repositories.PlayerStatsUpdate{
			PlayerID:    id,
			Goals:       st.Goals,
			YellowCards: st.YellowCards,
			RedCards:    st.RedCards,
		})
	}
	sort.Slice(updates, func(i, j int) bool { return updates[i].PlayerID < updates[j].PlayerID })

	if err := s.playerRepo.UpdateStatsBatch(ctx, updates); err != nil {
		return fmt.Errorf("applying stats to players: %w", err)
	}
	return nil
}

func (s *statsService) PlayerSummaries(ctx context.Context) ([]PlayerSummary, error) {
	players, matches, err := s.loadPlayersAndMatches(ctx)
	if err != nil {
		return nil, err
	}
	trainings, err := s.trainingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := matchlog.ComputePlayerStats(players, matches)
	minutes := matchlog.TotalMinutes(matches)

	summaries := make([]PlayerSummary, 0, len(players))
	for _, p := range players {
		st := stats[p.ID]
		summaries = append(summaries, PlayerSummary{
			PlayerID:          p.ID,
			Name:              p.FullName(),
			Number:            p.Number,
			Goals:             st.Goals,
			YellowCards:       st.YellowCards,
			RedCards:          st.RedCards,
			MinutesPlayed:     minutes[p.ID],
			AttendancePercent: matchlog.AttendancePercent(trainings, p.ID),
		})
	}
	return summaries, nil
}

func (s *statsService) loadPlayersAndMatches(ctx context.Context) ([]models.Player, []models.Match, error) {
	var (
		players []models.Player
		matches []models.Match
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return players, matches, nil
}

func (s *statsService) cachedStats() (map[int]matchlog.PlayerStats, bool) {
	if s.kv == nil {
		return nil, false
	}
	raw, err := s.kv.Get(PlayerStatsCacheKey)
	if err != nil {
		return nil, false
	}

	decoded := make(map[string]matchlog.PlayerStats)
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		s.logger.Warn("dropping corrupt stats cache entry", slog.Any("error", err))
		return nil, false
	}

	stats := make(map[int]matchlog.PlayerStats, len(decoded))
	for key, st := range decoded {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, false
		}
		stats[id] = st
	}
	return stats, true
}

func (s *statsService) storeStats(stats map[int]matchlog.PlayerStats) {
	if s.kv == nil {
		return
	}
	encoded := make(map[string]matchlog.PlayerStats, len(stats))
	for id, st := range stats {
		encoded[strconv.Itoa(id)] = st
	}
	raw, err := json.Marshal(encoded)
	if err != nil {
		return
	}
	if err := s.kv.Set(PlayerStatsCacheKey, string(raw)); err != nil {
		s.logger.Warn("failed to cache stats", slog.Any("error", err))
	}
}
