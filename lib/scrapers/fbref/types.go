package fbref

import "time"

// ColumnKey identifies a column in a category table. upstream tables
// carry two header rows: a group header spanning several columns (e.g.
// "Performance") and the column label itself (e.g. "Fls"). columns
// without a group header have Group == "".
type ColumnKey struct {
	Group string
	Name  string
}

// Row is a single player's row within one category table. cell values
// are raw text, the empty string marks a present-but-empty cell.
type Row map[ColumnKey]string

type CategoryTable struct {
	Columns []ColumnKey
	Rows    []Row
}

// TeamStats maps a category name ("Summary", "Misc", "Defense",
// "Possession", ...) to its table for one side of the match.
type TeamStats map[string]CategoryTable

// RawMatchBundle is the nested structure the upstream source produces
// for a single match.
type RawMatchBundle struct {
	MatchURL string

	Date      string
	Stage     string
	HomeTeam  string
	AwayTeam  string
	HomeGoals *int
	AwayGoals *int

	HomePlayerStats TeamStats
	AwayPlayerStats TeamStats
}

type Venue string

const (
	VenueHome Venue = "Home"
	VenueAway Venue = "Away"
)

// PlayerMatchRecord is the flat, validated record for one player in one
// match. nil pointer fields and empty strings mean the value was absent
// from the source, never that it was zero.
type PlayerMatchRecord struct {
	PlayerName string
	MatchURL   string
	ScrapedAt  time.Time

	Date        string
	Competition string
	HomeTeam    string
	AwayTeam    string
	HomeGoals   *int
	AwayGoals   *int
	Venue       Venue
	Opponent    string

	// Summary
	Position      string
	Minutes       *int
	Goals         *int
	Assists       *int
	Shots         *int
	ShotsOnTarget *int
	YellowCards   *int
	RedCards      *int
	Touches       *int
	Tackles       *int
	Interceptions *int
	Blocks        *int

	// Misc
	Fouls              *int
	Fouled             *int
	Offsides           *int
	Crosses            *int
	TacklesWon         *int
	PenaltiesWon       *int
	PenaltiesConceded  *int
	Recoveries         *int
	AerialDuelsWon     *int
	AerialDuelsLost    *int

	// Defense
	TacklesTotal        *int
	TacklesWonDef       *int
	TacklesDef3rd       *int
	TacklesMid3rd       *int
	TacklesAtt3rd       *int
	ChallengesAttempted *int
	TackleSuccessPct    *float64
	ChallengesLost      *int

	// Possession
	TouchesTotal       *int
	TouchesDefPen      *int
	TouchesDef3rd      *int
	TouchesMid3rd      *int
	TouchesAtt3rd      *int
	TouchesAttPen      *int
	TakeOnsAttempted   *int
	TakeOnsSucceeded   *int
	Carries            *int
	ProgressiveCarries *int

	// supplementary fields, best-effort from raw match markup
	Starting              *bool
	TeamFouls             *int
	TeamFouled            *int
	TeamPossessionPct     *float64
	OpponentPossessionPct *float64
	RefereeName           string
	Attendance            *int
}
