package service

import (
	"strings"

	"github.com/fortuna/courtside/internal/store"
)

// ShotService extracts field-goal attempts from the play-by-play table.
type ShotService struct {
	data *store.Dataset
}

// NewShotService creates a new shot service.
func NewShotService(data *store.Dataset) *ShotService {
	return &ShotService{data: data}
}

// PlayerShots returns the team's field-goal attempts in a game, with player
// names joined in from the box score, plus the full roster for that team and
// game so that players who took no shots can still be listed.
//
// Free throws are excluded: the shot chart only shows field goals.
func (s *ShotService) PlayerShots(gameID, teamID int64) ([]store.ShotAttempt, []store.RosterEntry) {
	names := make(map[int64]string)
	rosterSeen := make(map[int64]struct{})
	var roster []store.RosterEntry

	for _, row := range s.data.BoxScores() {
		if row.GameID != gameID {
			continue
		}
		if _, ok := names[row.AthleteID]; !ok {
			names[row.AthleteID] = row.AthleteName
		}
		if row.TeamID == teamID {
			if _, ok := rosterSeen[row.AthleteID]; !ok {
				rosterSeen[row.AthleteID] = struct{}{}
				roster = append(roster, store.RosterEntry{
					AthleteID: row.AthleteID,
					Name:      row.AthleteName,
				})
			}
		}
	}

	var shots []store.ShotAttempt
	for _, ev := range s.data.Plays() {
		if ev.GameID != gameID || ev.TeamID != teamID {
			continue
		}
		if !ev.ShootingPlay || isFreeThrow(ev.TypeText) {
			continue
		}
		shots = append(shots, store.ShotAttempt{
			GameID:      ev.GameID,
			TeamID:      ev.TeamID,
			AthleteID:   ev.AthleteID,
			PlayerName:  names[ev.AthleteID],
			ScoringPlay: ev.ScoringPlay,
			CoordinateX: ev.CoordinateX,
			CoordinateY: ev.CoordinateY,
		})
	}

	return shots, roster
}

// isFreeThrow reports whether an event-type label describes a free throw,
// matched as a case-insensitive substring.
func isFreeThrow(typeText string) bool {
	return strings.Contains(strings.ToLower(typeText), "freethrow")
}

// ShotChartData is a shot set partitioned into makes and misses, with the
// counts the presentation layer shows next to the rendered chart.
type ShotChartData struct {
	Makes      []store.ShotAttempt
	Misses     []store.ShotAttempt
	MakeCount  int
	MissCount  int
	Total      int
	Percentage float64
}

// BuildShotChartData partitions a shot set on the scoring flag. The
// percentage is exactly 0 for an empty set; surfacing "no shots found" for
// empty sets is the caller's concern.
func BuildShotChartData(shots []store.ShotAttempt) *ShotChartData {
	data := &ShotChartData{Total: len(shots)}
	for _, shot := range shots {
		if shot.ScoringPlay {
			data.Makes = append(data.Makes, shot)
		} else {
			data.Misses = append(data.Misses, shot)
		}
	}
	data.MakeCount = len(data.Makes)
	data.MissCount = len(data.Misses)
	data.Percentage = percentage(data.MakeCount, data.Total)
	return data
}

// percentage returns makes/total as a percentage, 0 when total is 0.
func percentage(makes, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(makes) / float64(total) * 100
}
