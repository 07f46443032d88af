package sdv

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fortuna/courtside/internal/store"
)

// Feed column names, resolved against the header row rather than by fixed
// index so column reordering in the feed does not break parsing.
const (
	colGameID       = "game_id"
	colGameDate     = "game_date"
	colHomeTeamID   = "home_team_id"
	colHomeTeamName = "home_team_name"
	colAwayTeamID   = "away_team_id"
	colAwayTeamName = "away_team_name"
	colHomeScore    = "home_score"
	colAwayScore    = "away_score"
	colTeamID       = "team_id"
	colAthleteID1   = "athlete_id_1"
	colTypeText     = "type_text"
	colShootingPlay = "shooting_play"
	colScoringPlay  = "scoring_play"
	colCoordinateX  = "coordinate_x"
	colCoordinateY  = "coordinate_y"

	colAthleteID   = "athlete_id"
	colAthleteName = "athlete_display_name"
	colTeamDisplay = "team_display_name"
)

// ParsePlayByPlay decodes the play-by-play CSV feed. Rows without a usable
// game id are skipped; the count of skipped rows is returned for logging.
func ParsePlayByPlay(r io.Reader) ([]store.PlayEvent, int, error) {
	rows, err := newRowReader(r, []string{
		colGameID, colGameDate,
		colHomeTeamID, colHomeTeamName, colAwayTeamID, colAwayTeamName,
		colHomeScore, colAwayScore,
		colTeamID, colAthleteID1, colTypeText,
		colShootingPlay, colScoringPlay,
		colCoordinateX, colCoordinateY,
	})
	if err != nil {
		return nil, 0, err
	}

	var events []store.PlayEvent
	skipped := 0
	for {
		record, err := rows.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("reading play-by-play row: %w", err)
		}

		gameID := parseID(rows.field(record, colGameID))
		if gameID == 0 {
			skipped++
			continue
		}

		events = append(events, store.PlayEvent{
			GameID:       gameID,
			GameDate:     parseDate(rows.field(record, colGameDate)),
			HomeTeamID:   parseID(rows.field(record, colHomeTeamID)),
			HomeTeamName: rows.field(record, colHomeTeamName),
			AwayTeamID:   parseID(rows.field(record, colAwayTeamID)),
			AwayTeamName: rows.field(record, colAwayTeamName),
			HomeScore:    parseScore(rows.field(record, colHomeScore)),
			AwayScore:    parseScore(rows.field(record, colAwayScore)),
			TeamID:       parseID(rows.field(record, colTeamID)),
			AthleteID:    parseID(rows.field(record, colAthleteID1)),
			TypeText:     rows.field(record, colTypeText),
			ShootingPlay: parseBool(rows.field(record, colShootingPlay)),
			ScoringPlay:  parseBool(rows.field(record, colScoringPlay)),
			CoordinateX:  parseFloat(rows.field(record, colCoordinateX)),
			CoordinateY:  parseFloat(rows.field(record, colCoordinateY)),
		})
	}

	return events, skipped, nil
}

// ParsePlayerBox decodes the player box-score CSV feed. Rows without a
// usable game or athlete id are skipped.
func ParsePlayerBox(r io.Reader) ([]store.BoxScoreRow, int, error) {
	rows, err := newRowReader(r, []string{
		colGameID, colAthleteID, colAthleteName, colTeamID, colTeamDisplay,
	})
	if err != nil {
		return nil, 0, err
	}

	var box []store.BoxScoreRow
	skipped := 0
	for {
		record, err := rows.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("reading box-score row: %w", err)
		}

		gameID := parseID(rows.field(record, colGameID))
		athleteID := parseID(rows.field(record, colAthleteID))
		if gameID == 0 || athleteID == 0 {
			skipped++
			continue
		}

		box = append(box, store.BoxScoreRow{
			GameID:          gameID,
			AthleteID:       athleteID,
			AthleteName:     rows.field(record, colAthleteName),
			TeamID:          parseID(rows.field(record, colTeamID)),
			TeamDisplayName: rows.field(record, colTeamDisplay),
		})
	}

	return box, skipped, nil
}

// rowReader wraps a csv.Reader with header-based field access.
type rowReader struct {
	csv   *csv.Reader
	index map[string]int
}

func newRowReader(r io.Reader, required []string) (*rowReader, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading feed header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("feed schema mismatch: missing column %q", name)
		}
	}

	return &rowReader{csv: cr, index: index}, nil
}

func (rr *rowReader) next() ([]string, error) {
	return rr.csv.Read()
}

func (rr *rowReader) field(record []string, name string) string {
	i, ok := rr.index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseID normalizes identifier fields to a canonical int64. The feeds do
// not agree on a representation: one table stores ids as integers, the other
// as floats ("104941" vs "104941.0"), and the shot join only works once both
// sides are normalized. Returns 0 when the field is empty or not numeric.
func parseID(s string) int64 {
	if s == "" || strings.EqualFold(s, "na") {
		return 0
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

func parseScore(s string) (score sql.NullInt32) {
	if s == "" || strings.EqualFold(s, "na") {
		return score
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		score.Int32 = int32(f)
		score.Valid = true
	}
	return score
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "t", "1", "1.0":
		return true
	}
	return false
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// parseDate accepts the date layouts observed in the feeds.
func parseDate(s string) time.Time {
	for _, layout := range []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04Z",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
