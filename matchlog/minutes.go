package matchlog

import (
	"fmt"
	"sort"

	"github.com/seguro-calcio/team-manager/models"
)

// DefaultDuration is used whenever the caller supplies a non-positive match
// duration.
const DefaultDuration = 90

// Warning is an advisory note produced while computing minutes. Warnings
// never fail the computation; the caller decides whether to surface them.
type Warning struct {
	EventID string `json:"eventId,omitempty"`
	Message string `json:"message"`
}

// ComputeMinutes derives the minutes played per player from the starting
// lineup and the managed-team substitutions of one match.
//
// The computation is a single pass over the substitutions sorted by minute
// (stable, so equal-minute substitutions apply in ledger order). Minutes are
// clamped into [0, duration]; a substitution whose outgoing player is not on
// the field, or whose incoming player already is, leaves that side untouched.
// Totals are seeded from previous, which lets a caller recompute
// incrementally on top of minutes already stored for the match.
func ComputeMinutes(duration int, lineup []int, events models.EventList, previous models.MinutesMap) (models.MinutesMap, []Warning) {
	if duration <= 0 {
		duration = DefaultDuration
	}

	subs := make([]models.SubEvent, 0)
	for _, ev := range events {
		if sub, ok := ev.(models.SubEvent); ok && sub.Team == models.TeamSeguro {
			subs = append(subs, sub)
		}
	}
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].Minute < subs[j].Minute })

	minutes := make(models.MinutesMap, len(previous)+len(lineup))
	for id, m := range previous {
		minutes[id] = m
	}

	onField := make(map[int]bool, len(lineup))
	enteredAt := make(map[int]int, len(lineup))
	for _, id := range lineup {
		onField[id] = true
		enteredAt[id] = 0
		if _, ok := minutes[id]; !ok {
			minutes[id] = 0
		}
	}

	var warnings []Warning
	for _, sub := range subs {
		minute := sub.Minute
		if minute < 0 || minute > duration {
			if minute < 0 {
				minute = 0
			} else {
				minute = duration
			}
			warnings = append(warnings, Warning{
				EventID: sub.ID,
				Message: fmt.Sprintf("substitution minute %d clamped to %d", sub.Minute, minute),
			})
		}

		if onField[sub.OutID] {
			if played := minute - enteredAt[sub.OutID]; played > 0 {
				minutes[sub.OutID] += played
			}
			delete(onField, sub.OutID)
			delete(enteredAt, sub.OutID)
		} else {
			warnings = append(warnings, Warning{
				EventID: sub.ID,
				Message: fmt.Sprintf("outgoing player %d is not on the field", sub.OutID),
			})
		}

		if !onField[sub.InID] {
			onField[sub.InID] = true
			enteredAt[sub.InID] = minute
			if _, ok := minutes[sub.InID]; !ok {
				minutes[sub.InID] = 0
			}
		} else {
			warnings = append(warnings, Warning{
				EventID: sub.ID,
				Message: fmt.Sprintf("incoming player %d is already on the field", sub.InID),
			})
		}
	}

	for id := range onField {
		if played := duration - enteredAt[id]; played > 0 {
			minutes[id] += played
		}
	}

	return minutes, warnings
}
