package store

// ConferenceOther is assigned to any team whose name is not in the
// conference table below.
const ConferenceOther = "Other"

// conferenceByName maps team display names to their conference for the
// major D1 conferences. Teams outside the table get ConferenceOther.
var conferenceByName = map[string]string{
	// ACC
	"Boston College": "ACC", "California": "ACC", "Clemson": "ACC", "Duke": "ACC",
	"Florida State": "ACC", "Georgia Tech": "ACC", "Louisville": "ACC", "Miami": "ACC",
	"North Carolina": "ACC", "NC State": "ACC", "Notre Dame": "ACC", "Pittsburgh": "ACC",
	"SMU": "ACC", "Stanford": "ACC", "Syracuse": "ACC", "Virginia": "ACC",
	"Virginia Tech": "ACC", "Wake Forest": "ACC",

	// Big Ten
	"Illinois": "Big Ten", "Indiana": "Big Ten", "Iowa": "Big Ten", "Maryland": "Big Ten",
	"Michigan": "Big Ten", "Michigan State": "Big Ten", "Minnesota": "Big Ten", "Nebraska": "Big Ten",
	"Northwestern": "Big Ten", "Ohio State": "Big Ten", "Oregon": "Big Ten", "Penn State": "Big Ten",
	"Purdue": "Big Ten", "Rutgers": "Big Ten", "UCLA": "Big Ten", "USC": "Big Ten",
	"Washington": "Big Ten", "Wisconsin": "Big Ten",

	// Big 12
	"Arizona": "Big 12", "Arizona State": "Big 12", "Baylor": "Big 12", "BYU": "Big 12",
	"UCF": "Big 12", "Cincinnati": "Big 12", "Colorado": "Big 12", "Houston": "Big 12",
	"Iowa State": "Big 12", "Kansas": "Big 12", "Kansas State": "Big 12", "Oklahoma State": "Big 12",
	"TCU": "Big 12", "Texas Tech": "Big 12", "Utah": "Big 12", "West Virginia": "Big 12",

	// SEC
	"Alabama": "SEC", "Arkansas": "SEC", "Auburn": "SEC", "Florida": "SEC",
	"Georgia": "SEC", "Kentucky": "SEC", "LSU": "SEC", "Ole Miss": "SEC",
	"Mississippi State": "SEC", "Missouri": "SEC", "Oklahoma": "SEC", "South Carolina": "SEC",
	"Tennessee": "SEC", "Texas": "SEC", "Texas A&M": "SEC", "Vanderbilt": "SEC",

	// Big East
	"Butler": "Big East", "Creighton": "Big East", "Connecticut": "Big East", "DePaul": "Big East",
	"Georgetown": "Big East", "Marquette": "Big East", "Providence": "Big East", "Seton Hall": "Big East",
	"St. John's": "Big East", "Villanova": "Big East", "Xavier": "Big East",

	// American Athletic
	"Charlotte": "American", "East Carolina": "American", "Florida Atlantic": "American",
	"Memphis": "American", "Navy": "American", "North Texas": "American", "Rice": "American",
	"South Florida": "American", "Temple": "American", "Tulane": "American", "Tulsa": "American",
	"UAB": "American", "UTSA": "American",

	// Mountain West
	"Air Force": "Mountain West", "Boise State": "Mountain West", "Colorado State": "Mountain West",
	"Fresno State": "Mountain West", "Nevada": "Mountain West", "New Mexico": "Mountain West",
	"San Diego State": "Mountain West", "San Jose State": "Mountain West", "UNLV": "Mountain West",
	"Utah State": "Mountain West", "Wyoming": "Mountain West",

	// West Coast Conference
	"Gonzaga": "WCC", "Saint Mary's": "WCC", "San Francisco": "WCC", "Santa Clara": "WCC",
	"Loyola Marymount": "WCC", "Pacific": "WCC", "Pepperdine": "WCC", "Portland": "WCC",
	"San Diego": "WCC",

	// Atlantic 10
	"Davidson": "Atlantic 10", "Dayton": "Atlantic 10", "Duquesne": "Atlantic 10", "Fordham": "Atlantic 10",
	"George Mason": "Atlantic 10", "George Washington": "Atlantic 10", "La Salle": "Atlantic 10",
	"Loyola Chicago": "Atlantic 10", "Massachusetts": "Atlantic 10", "Rhode Island": "Atlantic 10",
	"Richmond": "Atlantic 10", "Saint Joseph's": "Atlantic 10", "Saint Louis": "Atlantic 10",
	"St. Bonaventure": "Atlantic 10", "VCU": "Atlantic 10",
}

// ConferenceFor returns the conference label for a team name.
func ConferenceFor(teamName string) string {
	if conf, ok := conferenceByName[teamName]; ok {
		return conf
	}
	return ConferenceOther
}
