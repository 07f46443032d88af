package store

import "sort"

// Dataset holds one season of play-by-play and player box-score rows.
// It is built once at startup and never mutated afterwards; every derived
// view is recomputed from these tables on demand.
type Dataset struct {
	plays []PlayEvent
	box   []BoxScoreRow

	teams       []Team
	conferences []string
}

// NewDataset builds a dataset from the two base tables. The team directory
// is derived here: the union of home and away (id, name) pairs seen in the
// play-by-play rows, deduplicated by id, with conference assigned from the
// static lookup table and sorted by team name.
func NewDataset(plays []PlayEvent, box []BoxScoreRow) *Dataset {
	d := &Dataset{
		plays: plays,
		box:   box,
	}

	seen := make(map[int64]string)
	for _, ev := range plays {
		if ev.HomeTeamID != 0 && ev.HomeTeamName != "" {
			if _, ok := seen[ev.HomeTeamID]; !ok {
				seen[ev.HomeTeamID] = ev.HomeTeamName
			}
		}
		if ev.AwayTeamID != 0 && ev.AwayTeamName != "" {
			if _, ok := seen[ev.AwayTeamID]; !ok {
				seen[ev.AwayTeamID] = ev.AwayTeamName
			}
		}
	}

	d.teams = make([]Team, 0, len(seen))
	for id, name := range seen {
		d.teams = append(d.teams, Team{
			TeamID:     id,
			TeamName:   name,
			Conference: ConferenceFor(name),
		})
	}
	sort.Slice(d.teams, func(i, j int) bool {
		if d.teams[i].TeamName != d.teams[j].TeamName {
			return d.teams[i].TeamName < d.teams[j].TeamName
		}
		return d.teams[i].TeamID < d.teams[j].TeamID
	})

	confSet := make(map[string]struct{})
	for _, t := range d.teams {
		confSet[t.Conference] = struct{}{}
	}
	d.conferences = make([]string, 0, len(confSet))
	for conf := range confSet {
		d.conferences = append(d.conferences, conf)
	}
	sort.Strings(d.conferences)

	return d
}

// Plays returns the play-by-play table. Callers must not modify it.
func (d *Dataset) Plays() []PlayEvent {
	return d.plays
}

// BoxScores returns the player box-score table. Callers must not modify it.
func (d *Dataset) BoxScores() []BoxScoreRow {
	return d.box
}

// Teams returns the derived team directory, sorted by team name.
func (d *Dataset) Teams() []Team {
	return d.teams
}

// Conferences returns the sorted distinct conference labels present in the
// team directory.
func (d *Dataset) Conferences() []string {
	return d.conferences
}
