package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventListJSONRoundTrip(t *testing.T) {
	nine := 9
	note := "punizione"
	original := EventList{
		GoalEvent{ID: "g1", Minute: 10, Team: TeamSeguro, PlayerID: &nine, Note: &note},
		CardEvent{ID: "c1", CardKind: EventYellow, Minute: 33, Team: TeamAvversari},
		CardEvent{ID: "c2", CardKind: EventRed, Minute: 78, Team: TeamSeguro, PlayerID: &nine},
		SubEvent{ID: "s1", Minute: 60, Team: TeamSeguro, OutID: 9, InID: 14},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded EventList
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestEventListMarshalTagsKinds(t *testing.T) {
	events := EventList{
		GoalEvent{ID: "g1", Team: TeamSeguro},
		CardEvent{ID: "c1", CardKind: EventRed, Team: TeamSeguro},
		SubEvent{ID: "s1", Team: TeamSeguro, OutID: 1, InID: 2},
	}

	data, err := json.Marshal(events)
	require.NoError(t, err)

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "GOAL", raw[0]["type"])
	assert.Equal(t, "RED", raw[1]["type"])
	assert.Equal(t, "SUB", raw[2]["type"])

	// Optional fields stay absent, never null.
	_, hasPlayer := raw[0]["playerId"]
	assert.False(t, hasPlayer)
	_, hasNote := raw[0]["note"]
	assert.False(t, hasNote)
}

func TestEventListUnmarshalRejectsUnknownKind(t *testing.T) {
	var decoded EventList
	err := json.Unmarshal([]byte(`[{"id":"x","type":"THROW_IN","minute":1}]`), &decoded)
	assert.Error(t, err)
}

func TestMinutesMapScanValue(t *testing.T) {
	m := MinutesMap{7: 90, 14: 30}

	v, err := m.Value()
	require.NoError(t, err)

	var decoded MinutesMap
	require.NoError(t, decoded.Scan(v))
	assert.Equal(t, m, decoded)
}
