package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seguro-calcio/team-manager/cache"
	"github.com/seguro-calcio/team-manager/models"
	"github.com/seguro-calcio/team-manager/repositories"
)

func TestApplyPlayerStatsWritesBackInOneBatch(t *testing.T) {
	playerRepo := newStubPlayerRepo()
	matchRepo := newStubMatchRepo()
	kv := cache.NewMemory()
	logger := slog.Default()
	playerSvc := NewPlayerService(playerRepo, nil, kv, logger)
	matchSvc := NewMatchService(matchRepo, nil, kv, logger)
	statsSvc := NewStatsService(playerRepo, matchRepo, nil, kv, logger)
	ctx := context.Background()

	striker, err := playerSvc.Create(ctx, PlayerInput{Number: 9, FirstName: "Luca", LastName: "Rossi"})
	require.NoError(t, err)
	keeper, err := playerSvc.Create(ctx, PlayerInput{Number: 1, FirstName: "Marco", LastName: "Bianchi"})
	require.NoError(t, err)

	match, err := matchSvc.Create(ctx, MatchInput{Round: 1, Date: "2024-09-15", Home: "Seguro Calcio", Away: "Aranova"})
	require.NoError(t, err)
	_, err = matchSvc.AddEvent(ctx, match.ID, models.GoalEvent{Minute: 12, Team: models.TeamSeguro, PlayerID: &striker.ID})
	require.NoError(t, err)
	_, err = matchSvc.AddEvent(ctx, match.ID, models.GoalEvent{Minute: 70, Team: models.TeamSeguro, PlayerID: &striker.ID})
	require.NoError(t, err)
	_, err = matchSvc.AddEvent(ctx, match.ID, models.CardEvent{CardKind: models.EventYellow, Minute: 30, Team: models.TeamSeguro, PlayerID: &keeper.ID})
	require.NoError(t, err)

	require.NoError(t, statsSvc.ApplyPlayerStats(ctx))

	// The whole roster goes back in a single repository call, so the
	// write-back is all-or-nothing.
	require.Len(t, playerRepo.batchCalls, 1)
	batch := playerRepo.batchCalls[0]
	require.Len(t, batch, 2)
	assert.Equal(t, []repositories.PlayerStatsUpdate{
		{PlayerID: striker.ID, Goals: 2},
		{PlayerID: keeper.ID, YellowCards: 1},
	}, batch)

	assert.Equal(t, 2, playerRepo.players[striker.ID].Goals)
	assert.Equal(t, 1, playerRepo.players[keeper.ID].YellowCards)
}

func TestPlayerStatsServesCachedAggregation(t *testing.T) {
	playerRepo := newStubPlayerRepo()
	matchRepo := newStubMatchRepo()
	kv := cache.NewMemory()
	logger := slog.Default()
	playerSvc := NewPlayerService(playerRepo, nil, kv, logger)
	statsSvc := NewStatsService(playerRepo, matchRepo, nil, kv, logger)
	ctx := context.Background()

	created, err := playerSvc.Create(ctx, PlayerInput{Number: 9, FirstName: "Luca", LastName: "Rossi"})
	require.NoError(t, err)

	first, err := statsSvc.PlayerStats(ctx)
	require.NoError(t, err)

	_, err = kv.Get(PlayerStatsCacheKey)
	require.NoError(t, err, "aggregation should be cached after the first read")

	second, err := statsSvc.PlayerStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, second, created.ID)
}
