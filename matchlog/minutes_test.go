package matchlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seguro-calcio/team-manager/models"
)

func sub(id string, minute, out, in int) models.SubEvent {
	return models.SubEvent{ID: id, Minute: minute, Team: models.TeamSeguro, OutID: out, InID: in}
}

func TestComputeMinutesNoSubstitutions(t *testing.T) {
	minutes, warnings := ComputeMinutes(90, []int{1, 2, 3}, nil, nil)

	require.Empty(t, warnings)
	assert.Equal(t, models.MinutesMap{1: 90, 2: 90, 3: 90}, minutes)
}

func TestComputeMinutesSingleSubstitution(t *testing.T) {
	events := models.EventList{sub("s1", 60, 1, 2)}

	minutes, warnings := ComputeMinutes(90, []int{1}, events, nil)

	require.Empty(t, warnings)
	assert.Equal(t, 60, minutes[1])
	assert.Equal(t, 30, minutes[2])
}

func TestComputeMinutesChainedSubstitutions(t *testing.T) {
	events := models.EventList{
		sub("s1", 30, 1, 2),
		sub("s2", 70, 2, 3),
	}

	minutes, warnings := ComputeMinutes(90, []int{1}, events, nil)

	require.Empty(t, warnings)
	assert.Equal(t, models.MinutesMap{1: 30, 2: 40, 3: 20}, minutes)
}

func TestComputeMinutesIsDeterministic(t *testing.T) {
	events := models.EventList{
		sub("s1", 25, 1, 4),
		sub("s2", 25, 2, 5),
		sub("s3", 80, 4, 1),
	}
	lineup := []int{1, 2, 3}

	first, _ := ComputeMinutes(90, lineup, events, nil)
	second, _ := ComputeMinutes(90, lineup, events, nil)

	assert.Equal(t, first, second)
}

func TestComputeMinutesClampsOutOfRangeMinutes(t *testing.T) {
	events := models.EventList{
		sub("early", -5, 1, 2),
		sub("late", 999, 2, 3),
	}

	minutes, warnings := ComputeMinutes(90, []int{1}, events, nil)

	// -5 behaves as 0, 999 as 90: player 1 never plays, 2 plays the whole
	// match, 3 enters at the final whistle.
	assert.Equal(t, 0, minutes[1])
	assert.Equal(t, 90, minutes[2])
	assert.Equal(t, 0, minutes[3])
	require.Len(t, warnings, 2)
	assert.Equal(t, "early", warnings[0].EventID)
	assert.Equal(t, "late", warnings[1].EventID)
}

func TestComputeMinutesGhostRemovalIsNoOp(t *testing.T) {
	events := models.EventList{sub("ghost", 40, 99, 7)}

	minutes, warnings := ComputeMinutes(90, []int{1}, events, nil)

	assert.Equal(t, 90, minutes[1])
	assert.NotContains(t, minutes, 99)
	assert.Equal(t, 50, minutes[7])
	require.Len(t, warnings, 1)
	assert.Equal(t, "ghost", warnings[0].EventID)
}

func TestComputeMinutesDoubleEntryIsNoOp(t *testing.T) {
	events := models.EventList{sub("dup", 40, 2, 1)}

	minutes, warnings := ComputeMinutes(90, []int{1}, events, nil)

	// Player 1 is already on the field, so the incoming side is ignored and
	// their entered-at minute stays 0.
	assert.Equal(t, 90, minutes[1])
	require.Len(t, warnings, 2)
}

func TestComputeMinutesEqualMinuteSubsApplyInLedgerOrder(t *testing.T) {
	events := models.EventList{
		sub("s1", 45, 1, 2),
		sub("s2", 45, 2, 1),
	}

	minutes, warnings := ComputeMinutes(90, []int{1}, events, nil)

	// s1 takes 1 off at 45, s2 puts them straight back on.
	require.Empty(t, warnings)
	assert.Equal(t, 90, minutes[1])
	assert.Equal(t, 0, minutes[2])
}

func TestComputeMinutesCoercesNonPositiveDuration(t *testing.T) {
	minutes, _ := ComputeMinutes(0, []int{1}, nil, nil)
	assert.Equal(t, 90, minutes[1])

	minutes, _ = ComputeMinutes(-30, []int{1}, nil, nil)
	assert.Equal(t, 90, minutes[1])
}

func TestComputeMinutesSeedsFromPreviousTotals(t *testing.T) {
	previous := models.MinutesMap{1: 10, 8: 70}

	minutes, _ := ComputeMinutes(90, []int{1}, nil, previous)

	assert.Equal(t, 100, minutes[1])
	// Players outside this computation keep their stored totals.
	assert.Equal(t, 70, minutes[8])
}

func TestComputeMinutesIgnoresOpponentAndNonSubEvents(t *testing.T) {
	pid := 5
	events := models.EventList{
		models.GoalEvent{ID: "g1", Minute: 10, Team: models.TeamSeguro, PlayerID: &pid},
		models.CardEvent{ID: "c1", CardKind: models.EventYellow, Minute: 20, Team: models.TeamSeguro, PlayerID: &pid},
		models.SubEvent{ID: "s1", Minute: 30, Team: models.TeamAvversari, OutID: 1, InID: 2},
	}

	minutes, warnings := ComputeMinutes(90, []int{1}, events, nil)

	require.Empty(t, warnings)
	assert.Equal(t, models.MinutesMap{1: 90}, minutes)
}
