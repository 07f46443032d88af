package service

import (
	"database/sql"
	"time"

	"github.com/fortuna/courtside/internal/store"
)

// Fixture team and player ids shared by the service tests.
const (
	dukeID     = int64(150)
	carolinaID = int64(153)
	lakesideID = int64(999)

	boozerID  = int64(104941)
	evansID   = int64(105000)
	kellyID   = int64(105111)
	trimbleID = int64(205000)
)

func score(v int32) sql.NullInt32 {
	return sql.NullInt32{Int32: v, Valid: true}
}

// testDataset builds a three-game season:
//
//	game 1001, 2025-11-10: Duke (home) beats North Carolina 80-71
//	game 1002, 2026-01-05: Duke (away) loses at North Carolina 65-70
//	game 1003, 2026-02-01: Duke (home) vs Lakeside, not yet played
//
// Box-score rows for game 1002 come first so that callers relying on
// chronological ordering cannot get it from table order by accident.
func testDataset() *store.Dataset {
	d1 := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	g1 := store.PlayEvent{
		GameID: 1001, GameDate: d1,
		HomeTeamID: dukeID, HomeTeamName: "Duke",
		AwayTeamID: carolinaID, AwayTeamName: "North Carolina",
	}
	g2 := store.PlayEvent{
		GameID: 1002, GameDate: d2,
		HomeTeamID: carolinaID, HomeTeamName: "North Carolina",
		AwayTeamID: dukeID, AwayTeamName: "Duke",
	}
	g3 := store.PlayEvent{
		GameID: 1003, GameDate: d3,
		HomeTeamID: dukeID, HomeTeamName: "Duke",
		AwayTeamID: lakesideID, AwayTeamName: "Lakeside",
	}

	play := func(base store.PlayEvent, teamID, athleteID int64, typeText string, shooting, scoring bool, x, y float64, home, away sql.NullInt32) store.PlayEvent {
		ev := base
		ev.TeamID = teamID
		ev.AthleteID = athleteID
		ev.TypeText = typeText
		ev.ShootingPlay = shooting
		ev.ScoringPlay = scoring
		ev.CoordinateX = x
		ev.CoordinateY = y
		ev.HomeScore = home
		ev.AwayScore = away
		return ev
	}

	plays := []store.PlayEvent{
		// Game 1001. Running scores on earlier rows, finals on the last.
		play(g1, dukeID, boozerID, "JumpShot", true, true, 35, -10, score(2), score(0)),
		play(g1, carolinaID, trimbleID, "LayUpShot", true, true, -41, 1, score(2), score(2)),
		play(g1, dukeID, boozerID, "LayUpShot", true, false, 41, 2, score(2), score(2)),
		play(g1, dukeID, evansID, "JumpShot", true, false, 30, 8, score(4), score(2)),
		play(g1, dukeID, boozerID, "FreeThrow - 1 of 2", true, true, 28, 0, score(5), score(2)),
		play(g1, dukeID, boozerID, "Defensive Rebound", false, false, 0, 0, score(5), score(2)),
		play(g1, carolinaID, trimbleID, "JumpShot", true, false, -30, -5, score(80), score(71)),

		// Game 1002.
		play(g2, dukeID, boozerID, "JumpShot", true, true, -38, 4, score(0), score(2)),
		play(g2, dukeID, boozerID, "JumpShot", true, false, -35, -6, score(10), score(8)),
		play(g2, carolinaID, trimbleID, "LayUpShot", true, true, 42, 0, score(70), score(65)),

		// Game 1003 has no final scores yet.
		play(g3, dukeID, evansID, "JumpShot", true, false, 33, 5, sql.NullInt32{}, sql.NullInt32{}),
	}

	box := []store.BoxScoreRow{
		{GameID: 1002, AthleteID: boozerID, AthleteName: "Cameron Boozer", TeamID: dukeID, TeamDisplayName: "Duke"},
		{GameID: 1002, AthleteID: trimbleID, AthleteName: "Seth Trimble", TeamID: carolinaID, TeamDisplayName: "North Carolina"},
		{GameID: 1001, AthleteID: boozerID, AthleteName: "Cameron Boozer", TeamID: dukeID, TeamDisplayName: "Duke"},
		{GameID: 1001, AthleteID: evansID, AthleteName: "Isaiah Evans", TeamID: dukeID, TeamDisplayName: "Duke"},
		{GameID: 1001, AthleteID: kellyID, AthleteName: "Pat Kelly", TeamID: dukeID, TeamDisplayName: "Duke"},
		{GameID: 1001, AthleteID: trimbleID, AthleteName: "Seth Trimble", TeamID: carolinaID, TeamDisplayName: "North Carolina"},
		{GameID: 1003, AthleteID: evansID, AthleteName: "Isaiah Evans", TeamID: dukeID, TeamDisplayName: "Duke"},
	}

	return store.NewDataset(plays, box)
}
