package store

import (
	"database/sql"
	"time"
)

// PlayEvent is one play-by-play row as loaded from the season feed.
// Coordinates are only meaningful when ShootingPlay is true; the running
// scores only reach final values on the last row of a game.
type PlayEvent struct {
	GameID       int64         `json:"game_id"`
	GameDate     time.Time     `json:"game_date"`
	HomeTeamID   int64         `json:"home_team_id"`
	HomeTeamName string        `json:"home_team_name"`
	AwayTeamID   int64         `json:"away_team_id"`
	AwayTeamName string        `json:"away_team_name"`
	HomeScore    sql.NullInt32 `json:"home_score,omitempty"`
	AwayScore    sql.NullInt32 `json:"away_score,omitempty"`
	TeamID       int64         `json:"team_id"`
	AthleteID    int64         `json:"athlete_id"`
	TypeText     string        `json:"type_text"`
	ShootingPlay bool          `json:"shooting_play"`
	ScoringPlay  bool          `json:"scoring_play"`
	CoordinateX  float64       `json:"coordinate_x"`
	CoordinateY  float64       `json:"coordinate_y"`
}

// BoxScoreRow is one (game, player) pairing from the player box-score feed.
type BoxScoreRow struct {
	GameID          int64  `json:"game_id"`
	AthleteID       int64  `json:"athlete_id"`
	AthleteName     string `json:"athlete_display_name"`
	TeamID          int64  `json:"team_id"`
	TeamDisplayName string `json:"team_display_name"`
}

// Team is a directory entry derived from the play-by-play table.
type Team struct {
	TeamID     int64  `json:"team_id"`
	TeamName   string `json:"team_name"`
	Conference string `json:"conference"`
}

// ShotAttempt is a field-goal attempt for one team in one game, enriched
// with the shooting player's display name from the box-score table.
type ShotAttempt struct {
	GameID      int64   `json:"game_id"`
	TeamID      int64   `json:"team_id"`
	AthleteID   int64   `json:"athlete_id"`
	PlayerName  string  `json:"player_name"`
	ScoringPlay bool    `json:"scoring_play"`
	CoordinateX float64 `json:"coordinate_x"`
	CoordinateY float64 `json:"coordinate_y"`
}

// RosterEntry is a player who appeared in a game's box score for a team,
// including players who took no shots.
type RosterEntry struct {
	AthleteID int64  `json:"athlete_id"`
	Name      string `json:"name"`
}
