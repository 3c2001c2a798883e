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

type stubPlayerRepo struct {
	players    map[int]*models.Player
	nextID     int
	batchCalls [][]repositories.PlayerStatsUpdate
}

func newStubPlayerRepo() *stubPlayerRepo {
	return &stubPlayerRepo{players: make(map[int]*models.Player), nextID: 1}
}

func (r *stubPlayerRepo) Create(_ context.Context, player *models.Player) error {
	player.ID = r.nextID
	r.nextID++
	copied := *player
	r.players[player.ID] = &copied
	return nil
}

func (r *stubPlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *stubPlayerRepo) List(_ context.Context) ([]models.Player, error) {
	out := make([]models.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPlayerRepo) Update(_ context.Context, player *models.Player) error {
	if _, ok := r.players[player.ID]; !ok {
		return repositories.ErrPlayerNotFound
	}
	copied := *player
	r.players[player.ID] = &copied
	return nil
}

func (r *stubPlayerRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.players[id]; !ok {
		return repositories.ErrPlayerNotFound
	}
	delete(r.players, id)
	return nil
}

func (r *stubPlayerRepo) UpdateStatsBatch(_ context.Context, updates []repositories.PlayerStatsUpdate) error {
	r.batchCalls = append(r.batchCalls, updates)
	for _, u := range updates {
		p, ok := r.players[u.PlayerID]
		if !ok {
			return repositories.ErrPlayerNotFound
		}
		p.Goals = u.Goals
		p.YellowCards = u.YellowCards
		p.RedCards = u.RedCards
	}
	return nil
}

func TestCreatePlayerInvalidatesStatsCache(t *testing.T) {
	repo := newStubPlayerRepo()
	kv := cache.NewMemory()
	svc := NewPlayerService(repo, nil, kv, slog.Default())

	require.NoError(t, kv.Set(PlayerStatsCacheKey, "{}"))

	_, err := svc.Create(context.Background(), PlayerInput{Number: 9, FirstName: "Luca", LastName: "Rossi"})
	require.NoError(t, err)

	_, err = kv.Get(PlayerStatsCacheKey)
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
}

func TestDeletePlayerInvalidatesStatsCache(t *testing.T) {
	repo := newStubPlayerRepo()
	kv := cache.NewMemory()
	svc := NewPlayerService(repo, nil, kv, slog.Default())
	ctx := context.Background()

	created, err := svc.Create(ctx, PlayerInput{Number: 9, FirstName: "Luca", LastName: "Rossi"})
	require.NoError(t, err)

	require.NoError(t, kv.Set(PlayerStatsCacheKey, "{}"))
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = kv.Get(PlayerStatsCacheKey)
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
}

func TestStatsAggregationPicksUpNewRosterMembers(t *testing.T) {
	playerRepo := newStubPlayerRepo()
	matchRepo := newStubMatchRepo()
	kv := cache.NewMemory()
	logger := slog.Default()
	playerSvc := NewPlayerService(playerRepo, nil, kv, logger)
	statsSvc := NewStatsService(playerRepo, matchRepo, nil, kv, logger)
	ctx := context.Background()

	first, err := playerSvc.Create(ctx, PlayerInput{Number: 9, FirstName: "Luca", LastName: "Rossi"})
	require.NoError(t, err)

	// Prime the cache with the one-player aggregation.
	stats, err := statsSvc.PlayerStats(ctx)
	require.NoError(t, err)
	require.Contains(t, stats, first.ID)

	second, err := playerSvc.Create(ctx, PlayerInput{Number: 7, FirstName: "Marco", LastName: "Bianchi"})
	require.NoError(t, err)

	// The roster change must not serve the stale aggregation: the new
	// player gets a zero entry immediately.
	stats, err = statsSvc.PlayerStats(ctx)
	require.NoError(t, err)
	assert.Contains(t, stats, second.ID)
	assert.Zero(t, stats[second.ID])
}

func TestStatsAggregationDropsDeletedRosterMembers(t *testing.T) {
	playerRepo := newStubPlayerRepo()
	matchRepo := newStubMatchRepo()
	kv := cache.NewMemory()
	logger := slog.Default()
	playerSvc := NewPlayerService(playerRepo, nil, kv, logger)
	statsSvc := NewStatsService(playerRepo, matchRepo, nil, kv, logger)
	ctx := context.Background()

	created, err := playerSvc.Create(ctx, PlayerInput{Number: 9, FirstName: "Luca", LastName: "Rossi"})
	require.NoError(t, err)

	stats, err := statsSvc.PlayerStats(ctx)
	require.NoError(t, err)
	require.Contains(t, stats, created.ID)

	require.NoError(t, playerSvc.Delete(ctx, created.ID))

	stats, err = statsSvc.PlayerStats(ctx)
	require.NoError(t, err)
	assert.NotContains(t, stats, created.ID)
}
