package rest

import (
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fortuna/courtside/internal/metrics"
	"github.com/fortuna/courtside/internal/service"
	"github.com/fortuna/courtside/internal/store"
)

// testRouter wires the full middleware and routing stack over a small
// two-team, two-game dataset.
func testRouter(t *testing.T) *mux.Router {
	t.Helper()

	score := func(v int32) sql.NullInt32 {
		return sql.NullInt32{Int32: v, Valid: true}
	}
	d1 := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	g1 := store.PlayEvent{
		GameID: 1001, GameDate: d1,
		HomeTeamID: 150, HomeTeamName: "Duke",
		AwayTeamID: 153, AwayTeamName: "North Carolina",
	}
	g2 := store.PlayEvent{
		GameID: 1002, GameDate: d2,
		HomeTeamID: 153, HomeTeamName: "North Carolina",
		AwayTeamID: 150, AwayTeamName: "Duke",
	}

	play := func(base store.PlayEvent, teamID, athleteID int64, typeText string, shooting, scoring bool, home, away sql.NullInt32) store.PlayEvent {
		ev := base
		ev.TeamID = teamID
		ev.AthleteID = athleteID
		ev.TypeText = typeText
		ev.ShootingPlay = shooting
		ev.ScoringPlay = scoring
		ev.CoordinateX = 30
		ev.CoordinateY = 5
		ev.HomeScore = home
		ev.AwayScore = away
		return ev
	}

	plays := []store.PlayEvent{
		play(g1, 150, 104941, "JumpShot", true, true, score(2), score(0)),
		play(g1, 150, 104941, "LayUpShot", true, false, score(2), score(2)),
		play(g1, 150, 104941, "FreeThrow - 1 of 2", true, true, score(3), score(2)),
		play(g1, 153, 205000, "JumpShot", true, true, score(80), score(71)),
		play(g2, 150, 104941, "JumpShot", true, true, score(0), score(2)),
		play(g2, 153, 205000, "LayUpShot", true, true, score(70), score(65)),
	}
	box := []store.BoxScoreRow{
		{GameID: 1001, AthleteID: 104941, AthleteName: "Cameron Boozer", TeamID: 150, TeamDisplayName: "Duke"},
		{GameID: 1001, AthleteID: 205000, AthleteName: "Seth Trimble", TeamID: 153, TeamDisplayName: "North Carolina"},
		{GameID: 1002, AthleteID: 104941, AthleteName: "Cameron Boozer", TeamID: 150, TeamDisplayName: "Duke"},
		{GameID: 1002, AthleteID: 205000, AthleteName: "Seth Trimble", TeamID: 153, TeamDisplayName: "North Carolina"},
	}

	log := zap.NewNop()
	handler := NewHandler(store.NewDataset(plays, box), log, 2026)
	return NewRouter(handler, metrics.NewRecorder(), log)
}

func get(t *testing.T, router *mux.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	rr := get(t, testRouter(t), "/health")
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, "courtside", body["service"])
	require.Equal(t, "2025-26", body["season"])
	require.EqualValues(t, 2, body["teams"])
}

func TestGetTeams(t *testing.T) {
	t.Parallel()

	rr := get(t, testRouter(t), "/api/teams")
	require.Equal(t, http.StatusOK, rr.Code)

	var teams []store.Team
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&teams))
	require.Len(t, teams, 2)
	require.Equal(t, "Duke", teams[0].TeamName)
	require.Equal(t, "ACC", teams[0].Conference)
}

func TestGetConferences(t *testing.T) {
	t.Parallel()

	rr := get(t, testRouter(t), "/api/conferences")
	require.Equal(t, http.StatusOK, rr.Code)

	var conferences []string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&conferences))
	require.Equal(t, []string{"ACC"}, conferences)
}

func TestGetGames(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	rr := get(t, router, "/api/games/150")
	require.Equal(t, http.StatusOK, rr.Code)

	var games []service.Game
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&games))
	require.Len(t, games, 2)
	require.Equal(t, "W 80-71", games[0].Score)
	require.Equal(t, "vs", games[0].Location)
	require.Equal(t, "L 65-70", games[1].Score)

	t.Run("malformed team id yields empty list", func(t *testing.T) {
		rr := get(t, router, "/api/games/not-a-number")
		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "[]\n", rr.Body.String())
	})
}

func TestGetPlayers(t *testing.T) {
	t.Parallel()

	rr := get(t, testRouter(t), "/api/players/1001/150")
	require.Equal(t, http.StatusOK, rr.Code)

	var players []service.PlayerLine
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&players))
	require.Len(t, players, 2)
	require.Equal(t, service.TeamViewName, players[0].Name)
	require.Equal(t, 2, players[0].Shots)
	require.Equal(t, "Cameron Boozer", players[1].Name)
}

func TestSearchPlayer(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	rr := get(t, router, "/api/search-player/boozer")
	require.Equal(t, http.StatusOK, rr.Code)

	var results []service.SearchResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&results))
	require.Len(t, results, 1)
	require.Equal(t, "Cameron Boozer", results[0].PlayerName)
	require.Equal(t, 2, results[0].TotalGames)
	require.Equal(t, 3, results[0].TotalShots)

	t.Run("no match is an empty array", func(t *testing.T) {
		rr := get(t, router, "/api/search-player/zzz")
		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "[]\n", rr.Body.String())
	})
}

func TestGetPlayerGames(t *testing.T) {
	t.Parallel()

	rr := get(t, testRouter(t), "/api/player-games/150/Cameron%20Boozer")
	require.Equal(t, http.StatusOK, rr.Code)

	var logs []service.PlayerGameLog
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&logs))
	require.Len(t, logs, 2)
	require.Equal(t, int64(1001), logs[0].GameID)
	require.Equal(t, "11/10/2025", logs[0].Date)
}

func TestGetShotChart(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	rr := get(t, router, "/api/shot-chart/1001/150/Cameron%20Boozer")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp chartResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, 1, resp.Stats.Makes)
	require.Equal(t, 1, resp.Stats.Misses)
	require.Equal(t, 2, resp.Stats.Total)
	require.InDelta(t, 50.0, resp.Stats.Percentage, 1e-9)

	img, err := base64.StdEncoding.DecodeString(resp.Image)
	require.NoError(t, err)
	require.Contains(t, string(img), "<svg")
	require.Contains(t, string(img), "Cameron Boozer Shot Chart")
	require.Contains(t, string(img), "W 80-71")

	t.Run("team view aggregates the whole team", func(t *testing.T) {
		rr := get(t, router, "/api/shot-chart/1001/150/Team%20View")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp chartResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Equal(t, 2, resp.Stats.Total)
	})

	t.Run("unknown player is a 404", func(t *testing.T) {
		rr := get(t, router, "/api/shot-chart/1001/150/Nobody")
		require.Equal(t, http.StatusNotFound, rr.Code)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		require.Equal(t, "No shots found", body["error"])
	})

	t.Run("malformed game id is a 404", func(t *testing.T) {
		rr := get(t, router, "/api/shot-chart/nope/150/Cameron%20Boozer")
		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetPlayerSeasonChart(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	rr := get(t, router, "/api/player-season-chart/150/Cameron%20Boozer")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp chartResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, 3, resp.Stats.Total)
	require.Equal(t, 2, resp.Stats.Games)

	img, err := base64.StdEncoding.DecodeString(resp.Image)
	require.NoError(t, err)
	require.Contains(t, string(img), "2025-26 Season Shot Chart (2 games)")

	t.Run("unknown player is a 404", func(t *testing.T) {
		rr := get(t, router, "/api/player-season-chart/150/Nobody")
		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestIndexPage(t *testing.T) {
	t.Parallel()

	rr := get(t, testRouter(t), "/")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rr.Body.String()))
	require.NoError(t, err)
	require.Equal(t, "College Basketball Shot Charts", doc.Find("title").Text())
	require.Equal(t, 1, doc.Find("#app").Length())
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	// Drive one request through the stack so the counters exist.
	get(t, router, "/health")

	rr := get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "courtside_http_requests_total")
	require.Contains(t, rr.Body.String(), `route="/health"`)
}

func TestCORSHeaders(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	rr := get(t, router, "/api/teams")
	require.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
