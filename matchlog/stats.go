package matchlog

import "github.com/seguro-calcio/team-manager/models"

// PlayerStats are the per-player tallies derived from event ledgers.
type PlayerStats struct {
	Goals       int `json:"goals"`
	YellowCards int `json:"yellowCards"`
	RedCards    int `json:"redCards"`
}

// ComputePlayerStats tallies managed-team goals and cards per roster player
// across every given match. The fold is order independent and deterministic;
// players without attributable events keep zero counts, events naming players
// outside the roster are ignored.
func ComputePlayerStats(players []models.Player, matches []models.Match) map[int]PlayerStats {
	stats := make(map[int]PlayerStats, len(players))
	for _, p := range players {
		stats[p.ID] = PlayerStats{}
	}

	for _, match := range matches {
		for _, ev := range match.Events {
			switch e := ev.(type) {
			case models.GoalEvent:
				if e.Team == models.TeamSeguro && e.PlayerID != nil {
					if s, ok := stats[*e.PlayerID]; ok {
						s.Goals++
						stats[*e.PlayerID] = s
					}
				}
			case models.CardEvent:
				if e.Team != models.TeamSeguro || e.PlayerID == nil {
					continue
				}
				s, ok := stats[*e.PlayerID]
				if !ok {
					continue
				}
				switch e.CardKind {
				case models.EventYellow:
					s.YellowCards++
				case models.EventRed:
					s.RedCards++
				}
				stats[*e.PlayerID] = s
			case models.SubEvent:
				// substitutions carry no goal or card information
			}
		}
	}

	return stats
}

// TotalMinutes sums the stored minutes maps of every match per player.
func TotalMinutes(matches []models.Match) models.MinutesMap {
	totals := make(models.MinutesMap)
	for _, match := range matches {
		for id, m := range match.Minutes {
			totals[id] += m
		}
	}
	return totals
}

// AttendancePercent reports the share of training sessions a player attended,
// rounded to the nearest percent. The attendance maps flag absences, so an
// unmarked player counts as present.
func AttendancePercent(trainings []models.Training, playerID int) int {
	total, absent := 0, 0
	for _, week := range trainings {
		total += len(week.Sessions)
		for _, session := range week.Sessions {
			if session.Attendance[playerID] {
				absent++
			}
		}
	}
	if total == 0 {
		return 0
	}
	present := total - absent
	return int(float64(present)/float64(total)*100 + 0.5)
}
