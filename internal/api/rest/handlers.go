package rest

import (
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fortuna/courtside/internal/chart"
	"github.com/fortuna/courtside/internal/service"
	"github.com/fortuna/courtside/internal/store"
)

//go:embed static/index.html
var indexHTML []byte

// Handler contains dependencies for HTTP handlers
type Handler struct {
	data        *store.Dataset
	games       *service.GameService
	shots       *service.ShotService
	players     *service.PlayerService
	log         *zap.Logger
	seasonLabel string
}

// NewHandler creates a new handler. season is the season end year.
func NewHandler(data *store.Dataset, log *zap.Logger, season int) *Handler {
	return &Handler{
		data:        data,
		games:       service.NewGameService(data),
		shots:       service.NewShotService(data),
		players:     service.NewPlayerService(data),
		log:         log,
		seasonLabel: fmt.Sprintf("%d-%02d", season-1, season%100),
	}
}

// Index serves the single-page UI.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "courtside",
		"version": Version,
		"season":  h.seasonLabel,
		"teams":   len(h.data.Teams()),
	})
}

// GetTeams returns the team directory, sorted by name.
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.data.Teams())
}

// GetConferences returns the sorted distinct conference labels.
func (h *Handler) GetConferences(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.data.Conferences())
}

// GetGames returns a team's game list. Unknown or malformed team ids yield
// an empty list, not an error.
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	teamID := pathID(r, "teamID")
	games := h.games.TeamGames(teamID)
	respondJSON(w, http.StatusOK, games)
}

// GetPlayers returns the player list for one team in one game; the first
// entry is always the "Team View" aggregate.
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	gameID := pathID(r, "gameID")
	teamID := pathID(r, "teamID")
	respondJSON(w, http.StatusOK, h.players.ListPlayers(gameID, teamID))
}

// SearchPlayer searches every roster by free-text name.
func (h *Handler) SearchPlayer(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["playerName"]
	results := h.players.SearchPlayers(name)
	if results == nil {
		results = []service.SearchResult{}
	}
	respondJSON(w, http.StatusOK, results)
}

// GetPlayerGames returns a player's game log (games with shots only).
func (h *Handler) GetPlayerGames(w http.ResponseWriter, r *http.Request) {
	teamID := pathID(r, "teamID")
	name := mux.Vars(r)["playerName"]
	logs := h.players.PlayerGames(teamID, name)
	if logs == nil {
		logs = []service.PlayerGameLog{}
	}
	respondJSON(w, http.StatusOK, logs)
}

// chartStats is the stat block returned next to a rendered chart.
type chartStats struct {
	Makes      int     `json:"makes"`
	Misses     int     `json:"misses"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Games      int     `json:"games,omitempty"`
}

// chartResponse carries the rendered SVG (base64) and its stats.
type chartResponse struct {
	Image string     `json:"image"`
	Stats chartStats `json:"stats"`
}

// GetShotChart renders the shot chart for one game, for a single player or
// the whole team when the reserved "Team View" name is requested.
func (h *Handler) GetShotChart(w http.ResponseWriter, r *http.Request) {
	gameID := pathID(r, "gameID")
	teamID := pathID(r, "teamID")
	player := mux.Vars(r)["playerName"]

	teamShots, _ := h.shots.PlayerShots(gameID, teamID)
	selected := teamShots
	if player != service.TeamViewName {
		selected = nil
		for _, shot := range teamShots {
			if shot.PlayerName == player {
				selected = append(selected, shot)
			}
		}
	}

	if len(selected) == 0 {
		respondError(w, http.StatusNotFound, "No shots found", nil)
		return
	}

	data := service.BuildShotChartData(selected)
	img := chart.Render(h.gameTitle(gameID, teamID, player), data.Makes, data.Misses)

	respondJSON(w, http.StatusOK, chartResponse{
		Image: base64.StdEncoding.EncodeToString(img),
		Stats: chartStats{
			Makes:      data.MakeCount,
			Misses:     data.MissCount,
			Total:      data.Total,
			Percentage: data.Percentage,
		},
	})
}

// GetPlayerSeasonChart renders one chart aggregating every game in which the
// player recorded shots.
func (h *Handler) GetPlayerSeasonChart(w http.ResponseWriter, r *http.Request) {
	teamID := pathID(r, "teamID")
	player := mux.Vars(r)["playerName"]

	shots, games := h.players.SeasonShots(teamID, player)
	if len(shots) == 0 {
		respondError(w, http.StatusNotFound, "No shots found", nil)
		return
	}

	data := service.BuildShotChartData(shots)
	title := fmt.Sprintf("%s - %s Season Shot Chart (%d games)", player, h.seasonLabel, games)
	img := chart.Render(title, data.Makes, data.Misses)

	respondJSON(w, http.StatusOK, chartResponse{
		Image: base64.StdEncoding.EncodeToString(img),
		Stats: chartStats{
			Makes:      data.MakeCount,
			Misses:     data.MissCount,
			Total:      data.Total,
			Percentage: data.Percentage,
			Games:      games,
		},
	})
}

// gameTitle builds the single-game chart title with opponent, date and the
// result when the game has one.
func (h *Handler) gameTitle(gameID, teamID int64, player string) string {
	for _, game := range h.games.TeamGames(teamID) {
		if game.GameID != gameID {
			continue
		}
		title := fmt.Sprintf("%s Shot Chart - %s %s (%s)", player, game.Location, game.Opponent, game.Date)
		if game.Score != "TBD" {
			title += fmt.Sprintf(" (%s)", game.Score)
		}
		return title
	}
	return fmt.Sprintf("%s Shot Chart", player)
}

// pathID parses a numeric path variable. Malformed values map to 0, which
// no real entity uses, so they fall through to the same empty results as any
// other unknown identifier.
func pathID(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}
