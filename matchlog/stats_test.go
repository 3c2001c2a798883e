package matchlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seguro-calcio/team-manager/models"
)

func goal(minute int, team models.TeamSide, playerID *int) models.GoalEvent {
	return models.GoalEvent{ID: "g", Minute: minute, Team: team, PlayerID: playerID}
}

func card(kind models.EventKind, team models.TeamSide, playerID *int) models.CardEvent {
	return models.CardEvent{ID: "c", CardKind: kind, Team: team, PlayerID: playerID}
}

func TestComputePlayerStatsGoalTally(t *testing.T) {
	seven := 7
	players := []models.Player{{ID: 7}, {ID: 8}}
	matches := []models.Match{{
		Events: models.EventList{
			goal(10, models.TeamSeguro, &seven),
			goal(54, models.TeamSeguro, &seven),
		},
	}}

	stats := ComputePlayerStats(players, matches)

	assert.Equal(t, 2, stats[7].Goals)
	assert.Equal(t, PlayerStats{}, stats[8])
}

func TestComputePlayerStatsIsOrderIndependent(t *testing.T) {
	p1, p2 := 1, 2
	players := []models.Player{{ID: 1}, {ID: 2}}
	events := models.EventList{
		goal(10, models.TeamSeguro, &p1),
		card(models.EventYellow, models.TeamSeguro, &p2),
		goal(70, models.TeamSeguro, &p2),
		card(models.EventRed, models.TeamSeguro, &p1),
	}

	reversed := make(models.EventList, len(events))
	for i, ev := range events {
		reversed[len(events)-1-i] = ev
	}

	forward := ComputePlayerStats(players, []models.Match{{Events: events}})
	backward := ComputePlayerStats(players, []models.Match{{Events: reversed}})

	assert.Equal(t, forward, backward)
	assert.Equal(t, PlayerStats{Goals: 1, RedCards: 1}, forward[1])
	assert.Equal(t, PlayerStats{Goals: 1, YellowCards: 1}, forward[2])
}

func TestComputePlayerStatsIgnoresOpponentAndUnknownPlayers(t *testing.T) {
	p1, stranger := 1, 42
	players := []models.Player{{ID: 1}}
	matches := []models.Match{{
		Events: models.EventList{
			goal(5, models.TeamAvversari, &p1),
			goal(6, models.TeamSeguro, nil),
			goal(7, models.TeamSeguro, &stranger),
			card(models.EventYellow, models.TeamAvversari, &p1),
		},
	}}

	stats := ComputePlayerStats(players, matches)

	require.Len(t, stats, 1)
	assert.Equal(t, PlayerStats{}, stats[1])
}

func TestComputePlayerStatsSpansMatches(t *testing.T) {
	p1 := 1
	players := []models.Player{{ID: 1}}
	matches := []models.Match{
		{Events: models.EventList{goal(10, models.TeamSeguro, &p1)}},
		{Events: models.EventList{goal(20, models.TeamSeguro, &p1)}},
	}

	stats := ComputePlayerStats(players, matches)

	assert.Equal(t, 2, stats[1].Goals)
}

func TestTotalMinutes(t *testing.T) {
	matches := []models.Match{
		{Minutes: models.MinutesMap{1: 90, 2: 30}},
		{Minutes: models.MinutesMap{1: 45}},
		{},
	}

	totals := TotalMinutes(matches)

	assert.Equal(t, models.MinutesMap{1: 135, 2: 30}, totals)
}

func TestAttendancePercent(t *testing.T) {
	trainings := []models.Training{
		{Sessions: models.SessionList{
			{Day: "Lunedì", Attendance: map[int]bool{1: true}},
			{Day: "Mercoledì", Attendance: map[int]bool{}},
		}},
		{Sessions: models.SessionList{
			{Day: "Venerdì", Attendance: map[int]bool{2: true}},
		}},
	}

	// Player 1 missed one of three sessions.
	assert.Equal(t, 67, AttendancePercent(trainings, 1))
	// Player 3 was never flagged absent.
	assert.Equal(t, 100, AttendancePercent(trainings, 3))
	assert.Equal(t, 0, AttendancePercent(nil, 1))
}
