// Package matchlog implements the match-event ledger and the derived
// computations on it: minutes-played reconstruction from substitutions and
// season-wide goal/card tallies.
package matchlog

import (
	"github.com/google/uuid"

	"github.com/seguro-calcio/team-manager/models"
)

// EventPatch is a partial update to one ledger event. Only non-nil fields are
// applied, and only those the target variant actually carries.
type EventPatch struct {
	Minute   *int             `json:"minute,omitempty"`
	Team     *models.TeamSide `json:"team,omitempty"`
	PlayerID *int             `json:"playerId,omitempty"`
	Note     *string          `json:"note,omitempty"`
	OutID    *int             `json:"outId,omitempty"`
	InID     *int             `json:"inId,omitempty"`
}

// AddEvent appends an event to the ledger, assigning a fresh identifier when
// the event carries none. No minute-range or player-reference validation is
// performed; entry stays permissive so a match can be logged live without
// interruptions.
func AddEvent(events models.EventList, ev models.MatchEvent) models.EventList {
	if ev.EventID() == "" {
		ev = withID(ev, uuid.NewString())
	}
	return append(events, ev)
}

// UpdateEvent merges a patch into the event with the given id. An unknown id
// is a silent no-op.
func UpdateEvent(events models.EventList, id string, patch EventPatch) models.EventList {
	for i, ev := range events {
		if ev.EventID() == id {
			events[i] = applyPatch(ev, patch)
			break
		}
	}
	return events
}

// RemoveEvent deletes the event with the given id, preserving the order of
// the rest. An unknown id is a silent no-op.
func RemoveEvent(events models.EventList, id string) models.EventList {
	for i, ev := range events {
		if ev.EventID() == id {
			return append(events[:i], events[i+1:]...)
		}
	}
	return events
}

func withID(ev models.MatchEvent, id string) models.MatchEvent {
	switch e := ev.(type) {
	case models.GoalEvent:
		e.ID = id
		return e
	case models.CardEvent:
		e.ID = id
		return e
	case models.SubEvent:
		e.ID = id
		return e
	default:
		return ev
	}
}

func applyPatch(ev models.MatchEvent, patch EventPatch) models.MatchEvent {
	switch e := ev.(type) {
	case models.GoalEvent:
		if patch.Minute != nil {
			e.Minute = *patch.Minute
		}
		if patch.Team != nil {
			e.Team = *patch.Team
		}
		if patch.PlayerID != nil {
			e.PlayerID = patch.PlayerID
		}
		if patch.Note != nil {
			e.Note = patch.Note
		}
		return e
	case models.CardEvent:
		if patch.Minute != nil {
			e.Minute = *patch.Minute
		}
		if patch.Team != nil {
			e.Team = *patch.Team
		}
		if patch.PlayerID != nil {
			e.PlayerID = patch.PlayerID
		}
		if patch.Note != nil {
			e.Note = patch.Note
		}
		return e
	case models.SubEvent:
		if patch.Minute != nil {
			e.Minute = *patch.Minute
		}
		if patch.OutID != nil {
			e.OutID = *patch.OutID
		}
		if patch.InID != nil {
			e.InID = *patch.InID
		}
		if patch.Note != nil {
			e.Note = patch.Note
		}
		return e
	default:
		return ev
	}
}
