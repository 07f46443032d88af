// Package service derives the views served by the API from the immutable
// season dataset: team game lists, shot sets, player aggregates and search.
package service

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/fortuna/courtside/internal/store"
)

// displayDateFormat renders game dates as MM/DD/YYYY.
const displayDateFormat = "01/02/2006"

// Game is one entry of a team's game list, from that team's perspective.
type Game struct {
	GameID   int64  `json:"game_id"`
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Location string `json:"location"`
	Score    string `json:"score"`

	playedAt time.Time
}

// GameService derives game-level views from the play-by-play table.
type GameService struct {
	data *store.Dataset
}

// NewGameService creates a new game service.
func NewGameService(data *store.Dataset) *GameService {
	return &GameService{data: data}
}

// TeamGames returns every game the team appears in, one entry per game,
// sorted ascending by date. An unknown team yields an empty list.
//
// The last play-by-play row of each game carries the final scores; earlier
// rows only hold the running score, starting at 0-0.
func (s *GameService) TeamGames(teamID int64) []Game {
	finals := make(map[int64]store.PlayEvent)
	for _, ev := range s.data.Plays() {
		if ev.HomeTeamID == teamID || ev.AwayTeamID == teamID {
			finals[ev.GameID] = ev
		}
	}

	games := make([]Game, 0, len(finals))
	for gameID, ev := range finals {
		opponent, location, teamScore, oppScore := perspective(ev, teamID)
		games = append(games, Game{
			GameID:   gameID,
			Date:     ev.GameDate.Format(displayDateFormat),
			Opponent: opponent,
			Location: location,
			Score:    scoreString(teamScore, oppScore),
			playedAt: ev.GameDate,
		})
	}

	sort.Slice(games, func(i, j int) bool {
		if !games[i].playedAt.Equal(games[j].playedAt) {
			return games[i].playedAt.Before(games[j].playedAt)
		}
		return games[i].GameID < games[j].GameID
	})

	return games
}

// gameContext returns the final play-by-play row of a game, used when a
// single game's result is needed without deriving the whole schedule.
func (s *GameService) gameContext(gameID int64) (store.PlayEvent, bool) {
	var last store.PlayEvent
	found := false
	for _, ev := range s.data.Plays() {
		if ev.GameID == gameID {
			last = ev
			found = true
		}
	}
	return last, found
}

// perspective splits a game row into opponent, location marker and scores
// relative to the given team. "vs" marks a home game, "@" an away game.
func perspective(ev store.PlayEvent, teamID int64) (opponent, location string, teamScore, oppScore sql.NullInt32) {
	if ev.HomeTeamID == teamID {
		return ev.AwayTeamName, "vs", ev.HomeScore, ev.AwayScore
	}
	return ev.HomeTeamName, "@", ev.AwayScore, ev.HomeScore
}

// scoreString formats the result from the team's perspective. "TBD" is
// returned unless both final scores are present. A tied score renders as a
// loss; the strict comparison matches the feed, which never reports ties.
func scoreString(teamScore, oppScore sql.NullInt32) string {
	if !teamScore.Valid || !oppScore.Valid {
		return "TBD"
	}
	result := "L"
	if teamScore.Int32 > oppScore.Int32 {
		result = "W"
	}
	return fmt.Sprintf("%s %d-%d", result, teamScore.Int32, oppScore.Int32)
}
