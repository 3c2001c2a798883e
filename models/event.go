package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TeamSide says which team an event belongs to. Only events of the managed
// team feed the minutes and stat computations; opponent events exist purely
// for the match report.
type TeamSide string

const (
	TeamSeguro    TeamSide = "SEGURO"
	TeamAvversari TeamSide = "AVVERSARI"
)

// EventKind is the wire tag of a ledger event.
type EventKind string

const (
	EventGoal   EventKind = "GOAL"
	EventYellow EventKind = "YELLOW"
	EventRed    EventKind = "RED"
	EventSub    EventKind = "SUB"
)

// MatchEvent is one entry of a match's event ledger.
type MatchEvent interface {
	EventID() string
	Kind() EventKind
}

type GoalEvent struct {
	ID       string   `json:"id"`
	Minute   int      `json:"minute"`
	Team     TeamSide `json:"team"`
	PlayerID *int     `json:"playerId,omitempty"`
	Note     *string  `json:"note,omitempty"`
}

func (e GoalEvent) EventID() string { return e.ID }
func (e GoalEvent) Kind() EventKind { return EventGoal }

// CardEvent covers both yellow and red cards; CardKind tells them apart and
// is emitted as the wire tag.
type CardEvent struct {
	ID       string    `json:"id"`
	CardKind EventKind `json:"-"`
	Minute   int       `json:"minute"`
	Team     TeamSide  `json:"team"`
	PlayerID *int      `json:"playerId,omitempty"`
	Note     *string   `json:"note,omitempty"`
}

func (e CardEvent) EventID() string { return e.ID }
func (e CardEvent) Kind() EventKind { return e.CardKind }

type SubEvent struct {
	ID     string   `json:"id"`
	Minute int      `json:"minute"`
	Team   TeamSide `json:"team"`
	OutID  int      `json:"outId"`
	InID   int      `json:"inId"`
	Note   *string  `json:"note,omitempty"`
}

func (e SubEvent) EventID() string { return e.ID }
func (e SubEvent) Kind() EventKind { return EventSub }

func (e GoalEvent) MarshalJSON() ([]byte, error) {
	type alias GoalEvent
	return json.Marshal(struct {
		Type EventKind `json:"type"`
		alias
	}{Type: e.Kind(), alias: alias(e)})
}

func (e CardEvent) MarshalJSON() ([]byte, error) {
	type alias CardEvent
	return json.Marshal(struct {
		Type EventKind `json:"type"`
		alias
	}{Type: e.Kind(), alias: alias(e)})
}

func (e SubEvent) MarshalJSON() ([]byte, error) {
	type alias SubEvent
	return json.Marshal(struct {
		Type EventKind `json:"type"`
		alias
	}{Type: e.Kind(), alias: alias(e)})
}

// EventList is the ordered event ledger of one match, stored as a single
// jsonb column. Order is insertion order and is semantically relevant for
// equal-minute substitutions.
type EventList []MatchEvent

func (l *EventList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	events := make(EventList, 0, len(raws))
	for _, raw := range raws {
		ev, err := UnmarshalEvent(raw)
		if err != nil {
			return err
		}
		events = append(events, ev)
	}
	*l = events
	return nil
}

// UnmarshalEvent decodes a single tagged event.
func UnmarshalEvent(data []byte) (MatchEvent, error) {
	var head struct {
		Type EventKind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch head.Type {
	case EventGoal:
		var ev GoalEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			return nil, err
		}
		return ev, nil
	case EventYellow, EventRed:
		var ev CardEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			return nil, err
		}
		ev.CardKind = head.Type
		return ev, nil
	case EventSub:
		var ev SubEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			return nil, err
		}
		return ev, nil
	default:
		return nil, fmt.Errorf("unknown event kind %q", head.Type)
	}
}

func (l EventList) Value() (driver.Value, error) {
	if l == nil {
		l = EventList{}
	}
	return jsonValue(l)
}

func (l *EventList) Scan(src interface{}) error {
	return jsonScan(src, l)
}

func (EventList) GormDataType() string { return "jsonb" }
