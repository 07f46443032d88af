package service

import (
	"sort"
	"strings"
	"time"

	"github.com/fortuna/courtside/internal/store"
)

// TeamViewID is the reserved player id for the whole-team aggregate entry.
// Real roster entries are numbered from 1.
const TeamViewID = 0

// TeamViewName labels the whole-team aggregate entry.
const TeamViewName = "Team View"

// PlayerLine is one entry of the per-game player list.
type PlayerLine struct {
	PlayerID   int     `json:"player_id"`
	Name       string  `json:"name"`
	Shots      int     `json:"shots"`
	Makes      int     `json:"makes"`
	Percentage float64 `json:"percentage"`
}

// SearchResult is one player matched by a cross-roster name search, with
// totals aggregated across every game their box-score rows reference.
type SearchResult struct {
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
	TeamID     int64  `json:"team_id"`
	TotalGames int    `json:"total_games"`
	TotalShots int    `json:"total_shots"`
	TotalMakes int    `json:"total_makes"`
}

// PlayerGameLog is one game of a player's season, restricted to games where
// the player recorded at least one field-goal attempt.
type PlayerGameLog struct {
	GameID   int64  `json:"game_id"`
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Location string `json:"location"`
	Score    string `json:"score"`
	Shots    int    `json:"shots"`
	Makes    int    `json:"makes"`

	playedAt time.Time
}

// PlayerService derives player-level views: per-game aggregates, cross-team
// search and per-player game logs.
type PlayerService struct {
	data  *store.Dataset
	shots *ShotService
	games *GameService
}

// NewPlayerService creates a new player service.
func NewPlayerService(data *store.Dataset) *PlayerService {
	return &PlayerService{
		data:  data,
		shots: NewShotService(data),
		games: NewGameService(data),
	}
}

// ListPlayers returns the player list for one team in one game. The first
// entry is always the "Team View" aggregate; individual players follow
// alphabetically, including those who took no shots.
func (s *PlayerService) ListPlayers(gameID, teamID int64) []PlayerLine {
	teamShots, roster := s.shots.PlayerShots(gameID, teamID)

	totalMakes := 0
	for _, shot := range teamShots {
		if shot.ScoringPlay {
			totalMakes++
		}
	}

	players := []PlayerLine{{
		PlayerID:   TeamViewID,
		Name:       TeamViewName,
		Shots:      len(teamShots),
		Makes:      totalMakes,
		Percentage: percentage(totalMakes, len(teamShots)),
	}}

	names := distinctNames(roster)
	for idx, name := range names {
		shots, makes := countShotsByName(teamShots, name)
		players = append(players, PlayerLine{
			PlayerID:   idx + 1,
			Name:       name,
			Shots:      shots,
			Makes:      makes,
			Percentage: percentage(makes, shots),
		})
	}

	return players
}

// SearchPlayers matches players across every roster by name. The query is
// split on whitespace into lowercase tokens; a player matches only if every
// token appears as a substring of the lowered name. Players without a single
// game containing shots are dropped.
func (s *PlayerService) SearchPlayers(query string) []SearchResult {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}

	type candidate struct {
		name     string
		teamID   int64
		teamName string
	}
	seen := make(map[candidate]struct{})
	var matches []candidate
	for _, row := range s.data.BoxScores() {
		c := candidate{name: row.AthleteName, teamID: row.TeamID, teamName: row.TeamDisplayName}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		if matchesTokens(row.AthleteName, tokens) {
			matches = append(matches, c)
		}
	}

	var results []SearchResult
	for _, m := range matches {
		gamesWithShots, totalShots, totalMakes := 0, 0, 0
		for _, gameID := range s.playerGameIDs(m.teamID, m.name) {
			teamShots, _ := s.shots.PlayerShots(gameID, m.teamID)
			shots, makes := countShotsByName(teamShots, m.name)
			if shots > 0 {
				gamesWithShots++
				totalShots += shots
				totalMakes += makes
			}
		}
		if gamesWithShots == 0 {
			continue
		}

		teamName := m.teamName
		if teamName == "" {
			teamName = "Unknown"
		}
		results = append(results, SearchResult{
			PlayerName: m.name,
			TeamName:   teamName,
			TeamID:     m.teamID,
			TotalGames: gamesWithShots,
			TotalShots: totalShots,
			TotalMakes: totalMakes,
		})
	}

	return results
}

// PlayerGames returns the player's season game log, keeping only games with
// at least one recorded shot, sorted ascending by game date.
func (s *PlayerService) PlayerGames(teamID int64, playerName string) []PlayerGameLog {
	var logs []PlayerGameLog
	for _, gameID := range s.playerGameIDs(teamID, playerName) {
		teamShots, _ := s.shots.PlayerShots(gameID, teamID)
		shots, makes := countShotsByName(teamShots, playerName)
		if shots == 0 {
			continue
		}

		ev, ok := s.games.gameContext(gameID)
		if !ok {
			continue
		}
		opponent, location, teamScore, oppScore := perspective(ev, teamID)
		logs = append(logs, PlayerGameLog{
			GameID:   gameID,
			Date:     ev.GameDate.Format(displayDateFormat),
			Opponent: opponent,
			Location: location,
			Score:    scoreString(teamScore, oppScore),
			Shots:    shots,
			Makes:    makes,
			playedAt: ev.GameDate,
		})
	}

	sort.Slice(logs, func(i, j int) bool {
		if !logs[i].playedAt.Equal(logs[j].playedAt) {
			return logs[i].playedAt.Before(logs[j].playedAt)
		}
		return logs[i].GameID < logs[j].GameID
	})

	return logs
}

// SeasonShots collects the player's shots across every game their box-score
// rows reference. The second return value is the number of referenced games,
// which the season chart title reports.
func (s *PlayerService) SeasonShots(teamID int64, playerName string) ([]store.ShotAttempt, int) {
	gameIDs := s.playerGameIDs(teamID, playerName)

	var all []store.ShotAttempt
	for _, gameID := range gameIDs {
		teamShots, _ := s.shots.PlayerShots(gameID, teamID)
		for _, shot := range teamShots {
			if shot.PlayerName == playerName {
				all = append(all, shot)
			}
		}
	}
	return all, len(gameIDs)
}

// playerGameIDs returns the distinct game ids referenced by the player's
// box-score rows, in table order.
func (s *PlayerService) playerGameIDs(teamID int64, playerName string) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, row := range s.data.BoxScores() {
		if row.TeamID != teamID || row.AthleteName != playerName {
			continue
		}
		if _, ok := seen[row.GameID]; ok {
			continue
		}
		seen[row.GameID] = struct{}{}
		ids = append(ids, row.GameID)
	}
	return ids
}

// matchesTokens reports whether every token is a substring of the lowered
// name. Order of tokens does not matter.
func matchesTokens(name string, tokens []string) bool {
	lowered := strings.ToLower(name)
	for _, token := range tokens {
		if !strings.Contains(lowered, token) {
			return false
		}
	}
	return true
}

// countShotsByName counts shots and makes attributed to a player name within
// a team's shot set.
func countShotsByName(shots []store.ShotAttempt, name string) (count, makes int) {
	for _, shot := range shots {
		if shot.PlayerName != name {
			continue
		}
		count++
		if shot.ScoringPlay {
			makes++
		}
	}
	return count, makes
}

// distinctNames returns the sorted distinct non-empty names of a roster.
func distinctNames(roster []store.RosterEntry) []string {
	set := make(map[string]struct{})
	for _, entry := range roster {
		if entry.Name != "" {
			set[entry.Name] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
