package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seguro-calcio/team-manager/cache"
	"github.com/seguro-calcio/team-manager/matchlog"
	"github.com/seguro-calcio/team-manager/models"
	"github.com/seguro-calcio/team-manager/repositories"
)

type stubMatchRepo struct {
	matches map[int]*models.Match
	nextID  int
}

func newStubMatchRepo() *stubMatchRepo {
	return &stubMatchRepo{matches: make(map[int]*models.Match), nextID: 1}
}

func (r *stubMatchRepo) Create(_ context.Context, match *models.Match) error {
	match.ID = r.nextID
	r.nextID++
	copied := *match
	r.matches[match.ID] = &copied
	return nil
}

func (r *stubMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *stubMatchRepo) List(_ context.Context) ([]models.Match, error) {
	out := make([]models.Match, 0, len(r.matches))
	for _, m := range r.matches {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMatchRepo) Update(_ context.Context, match *models.Match) error {
	if _, ok := r.matches[match.ID]; !ok {
		return repositories.ErrMatchNotFound
	}
	copied := *match
	r.matches[match.ID] = &copied
	return nil
}

func (r *stubMatchRepo) UpdateEvents(_ context.Context, id int, events models.EventList) error {
	m, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	m.Events = events
	return nil
}

func (r *stubMatchRepo) UpdateMinutes(_ context.Context, id int, minutes models.MinutesMap) error {
	m, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	m.Minutes = minutes
	return nil
}

func (r *stubMatchRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.matches[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

func newTestMatchService(t *testing.T) (MatchService, *stubMatchRepo, cache.KVStore) {
	t.Helper()
	repo := newStubMatchRepo()
	kv := cache.NewMemory()
	svc := NewMatchService(repo, nil, kv, slog.Default())
	return svc, repo, kv
}

func seedMatch(t *testing.T, svc MatchService) *models.Match {
	t.Helper()
	match, err := svc.Create(context.Background(), MatchInput{
		Round: 1, Date: "2024-09-15", Time: "10:30",
		Home: "Seguro Calcio", Away: "Aranova",
	})
	require.NoError(t, err)
	return match
}

func TestAddEventAssignsIDAndPersists(t *testing.T) {
	svc, repo, _ := newTestMatchService(t)
	match := seedMatch(t, svc)

	updated, err := svc.AddEvent(context.Background(), match.ID, models.GoalEvent{Minute: 12, Team: models.TeamSeguro})
	require.NoError(t, err)
	require.Len(t, updated.Events, 1)
	assert.NotEmpty(t, updated.Events[0].EventID())

	stored := repo.matches[match.ID]
	require.Len(t, stored.Events, 1)
	assert.Equal(t, updated.Events[0].EventID(), stored.Events[0].EventID())
}

func TestLedgerMutationInvalidatesStatsCache(t *testing.T) {
	svc, _, kv := newTestMatchService(t)
	match := seedMatch(t, svc)

	require.NoError(t, kv.Set(PlayerStatsCacheKey, "{}"))

	_, err := svc.AddEvent(context.Background(), match.ID, models.GoalEvent{Minute: 3, Team: models.TeamSeguro})
	require.NoError(t, err)

	_, err = kv.Get(PlayerStatsCacheKey)
	assert.ErrorIs(t, err, cache.ErrKeyNotFound)
}

func TestUpdateEventOnUnknownIDIsNoOp(t *testing.T) {
	svc, _, _ := newTestMatchService(t)
	match := seedMatch(t, svc)

	minute := 50
	updated, err := svc.UpdateEvent(context.Background(), match.ID, "missing", matchlog.EventPatch{Minute: &minute})
	require.NoError(t, err)
	assert.Empty(t, updated.Events)
}

func TestRecalculateMinutesStoresResultAndWarnings(t *testing.T) {
	svc, repo, _ := newTestMatchService(t)
	match := seedMatch(t, svc)

	_, err := svc.AddEvent(context.Background(), match.ID, models.SubEvent{Minute: 60, Team: models.TeamSeguro, OutID: 9, InID: 14})
	require.NoError(t, err)

	updated, warnings, err := svc.RecalculateMinutes(context.Background(), match.ID, MinutesInput{
		Duration: 90,
		Lineup:   []int{9, 7},
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, models.MinutesMap{9: 60, 7: 90, 14: 30}, updated.Minutes)
	assert.Equal(t, updated.Minutes, repo.matches[match.ID].Minutes)
}

func TestRecalculateMinutesAccumulatesUnlessReset(t *testing.T) {
	svc, _, _ := newTestMatchService(t)
	match := seedMatch(t, svc)
	ctx := context.Background()

	_, _, err := svc.RecalculateMinutes(ctx, match.ID, MinutesInput{Duration: 90, Lineup: []int{9}})
	require.NoError(t, err)

	updated, _, err := svc.RecalculateMinutes(ctx, match.ID, MinutesInput{Duration: 90, Lineup: []int{9}})
	require.NoError(t, err)
	assert.Equal(t, 180, updated.Minutes[9])

	reset, _, err := svc.RecalculateMinutes(ctx, match.ID, MinutesInput{Duration: 90, Lineup: []int{9}, Reset: true})
	require.NoError(t, err)
	assert.Equal(t, 90, reset.Minutes[9])
}

func TestRecalculateMinutesOnUnknownMatch(t *testing.T) {
	svc, _, _ := newTestMatchService(t)

	_, _, err := svc.RecalculateMinutes(context.Background(), 999, MinutesInput{Duration: 90})
	assert.ErrorIs(t, err, repositories.ErrMatchNotFound)
}
