package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const upsertPlayer = `
INSERT INTO players (player_id, name, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (player_id) DO UPDATE SET name = excluded.name, updated_at = excluded.updated_at
`

type UpsertPlayerParams struct {
	PlayerID string
	Name     string
	Now      int64
}

func (q *Queries) UpsertPlayer(ctx context.Context, arg UpsertPlayerParams) error {
	_, err := q.db.ExecContext(ctx, upsertPlayer, arg.PlayerID, arg.Name, arg.Now, arg.Now)
	return err
}

const upsertTeam = `
INSERT INTO teams (team_id, name, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (team_id) DO UPDATE SET name = excluded.name, updated_at = excluded.updated_at
`

type UpsertTeamParams struct {
	TeamID string
	Name   string
	Now    int64
}

func (q *Queries) UpsertTeam(ctx context.Context, arg UpsertTeamParams) error {
	_, err := q.db.ExecContext(ctx, upsertTeam, arg.TeamID, arg.Name, arg.Now, arg.Now)
	return err
}

const upsertReferee = `
INSERT INTO referees (referee_id, name, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (referee_id) DO UPDATE SET name = excluded.name, updated_at = excluded.updated_at
`

type UpsertRefereeParams struct {
	RefereeID string
	Name      string
	Now       int64
}

func (q *Queries) UpsertReferee(ctx context.Context, arg UpsertRefereeParams) error {
	_, err := q.db.ExecContext(ctx, upsertReferee, arg.RefereeID, arg.Name, arg.Now, arg.Now)
	return err
}

const upsertMatch = `
INSERT INTO matches (
	match_id, date, competition, home_team_id, away_team_id,
	home_goals, away_goals, attendance, referee_id, fbref_url,
	created_at, updated_at
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (match_id) DO UPDATE SET
	date = excluded.date,
	competition = excluded.competition,
	home_team_id = excluded.home_team_id,
	away_team_id = excluded.away_team_id,
	home_goals = excluded.home_goals,
	away_goals = excluded.away_goals,
	attendance = excluded.attendance,
	referee_id = excluded.referee_id,
	fbref_url = excluded.fbref_url,
	updated_at = excluded.updated_at
`

type UpsertMatchParams struct {
	MatchID     string
	Date        sql.NullString
	Competition sql.NullString
	HomeTeamID  sql.NullString
	AwayTeamID  sql.NullString
	HomeGoals   sql.NullInt64
	AwayGoals   sql.NullInt64
	Attendance  sql.NullInt64
	RefereeID   sql.NullString
	FbrefURL    sql.NullString
	Now         int64
}

func (q *Queries) UpsertMatch(ctx context.Context, arg UpsertMatchParams) error {
	_, err := q.db.ExecContext(ctx, upsertMatch,
		arg.MatchID, arg.Date, arg.Competition, arg.HomeTeamID, arg.AwayTeamID,
		arg.HomeGoals, arg.AwayGoals, arg.Attendance, arg.RefereeID, arg.FbrefURL,
		arg.Now, arg.Now,
	)
	return err
}

const upsertPlayerMatchStats = `
INSERT INTO player_match_stats (
	player_id, match_id, player_name, match_url, date, competition,
	venue, opponent, starting, position, minutes, fouls, fouled,
	tackles, tackles_def_3rd, tackles_mid_3rd, tackles_att_3rd,
	challenges_attempted, take_ons_attempted, take_ons_succeeded,
	yellow_cards, red_cards, team_fouls, team_fouled,
	team_possession_pct, opponent_possession_pct, referee_name,
	attendance, scraped_at
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (player_id, match_id) DO UPDATE SET
	player_name = excluded.player_name,
	match_url = excluded.match_url,
	date = excluded.date,
	competition = excluded.competition,
	venue = excluded.venue,
	opponent = excluded.opponent,
	starting = excluded.starting,
	position = excluded.position,
	minutes = excluded.minutes,
	fouls = excluded.fouls,
	fouled = excluded.fouled,
	tackles = excluded.tackles,
	tackles_def_3rd = excluded.tackles_def_3rd,
	tackles_mid_3rd = excluded.tackles_mid_3rd,
	tackles_att_3rd = excluded.tackles_att_3rd,
	challenges_attempted = excluded.challenges_attempted,
	take_ons_attempted = excluded.take_ons_attempted,
	take_ons_succeeded = excluded.take_ons_succeeded,
	yellow_cards = excluded.yellow_cards,
	red_cards = excluded.red_cards,
	team_fouls = excluded.team_fouls,
	team_fouled = excluded.team_fouled,
	team_possession_pct = excluded.team_possession_pct,
	opponent_possession_pct = excluded.opponent_possession_pct,
	referee_name = excluded.referee_name,
	attendance = excluded.attendance,
	scraped_at = excluded.scraped_at
`

type UpsertPlayerMatchStatsParams struct {
	PlayerID              string
	MatchID               string
	PlayerName            string
	MatchURL              string
	Date                  sql.NullString
	Competition           sql.NullString
	Venue                 sql.NullString
	Opponent              sql.NullString
	Starting              sql.NullBool
	Position              sql.NullString
	Minutes               sql.NullInt64
	Fouls                 sql.NullInt64
	Fouled                sql.NullInt64
	Tackles               sql.NullInt64
	TacklesDef3rd         sql.NullInt64
	TacklesMid3rd         sql.NullInt64
	TacklesAtt3rd         sql.NullInt64
	ChallengesAttempted   sql.NullInt64
	TakeOnsAttempted      sql.NullInt64
	TakeOnsSucceeded      sql.NullInt64
	YellowCards           sql.NullInt64
	RedCards              sql.NullInt64
	TeamFouls             sql.NullInt64
	TeamFouled            sql.NullInt64
	TeamPossessionPct     sql.NullFloat64
	OpponentPossessionPct sql.NullFloat64
	RefereeName           sql.NullString
	Attendance            sql.NullInt64
	ScrapedAt             int64
}

func (q *Queries) UpsertPlayerMatchStats(ctx context.Context, arg UpsertPlayerMatchStatsParams) error {
	_, err := q.db.ExecContext(ctx, upsertPlayerMatchStats,
		arg.PlayerID, arg.MatchID, arg.PlayerName, arg.MatchURL, arg.Date,
		arg.Competition, arg.Venue, arg.Opponent, arg.Starting, arg.Position,
		arg.Minutes, arg.Fouls, arg.Fouled, arg.Tackles, arg.TacklesDef3rd,
		arg.TacklesMid3rd, arg.TacklesAtt3rd, arg.ChallengesAttempted,
		arg.TakeOnsAttempted, arg.TakeOnsSucceeded, arg.YellowCards,
		arg.RedCards, arg.TeamFouls, arg.TeamFouled, arg.TeamPossessionPct,
		arg.OpponentPossessionPct, arg.RefereeName, arg.Attendance, arg.ScrapedAt,
	)
	return err
}

const getPlayerMatchStats = `
SELECT
	player_id, match_id, player_name, match_url, date, competition,
	venue, opponent, starting, position, minutes, fouls, fouled,
	team_fouls, team_fouled, team_possession_pct,
	opponent_possession_pct, referee_name, attendance, scraped_at
FROM player_match_stats
WHERE player_id = ?
ORDER BY date
`

type GetPlayerMatchStatsRow struct {
	PlayerID              string
	MatchID               string
	PlayerName            string
	MatchURL              string
	Date                  sql.NullString
	Competition           sql.NullString
	Venue                 sql.NullString
	Opponent              sql.NullString
	Starting              sql.NullBool
	Position              sql.NullString
	Minutes               sql.NullInt64
	Fouls                 sql.NullInt64
	Fouled                sql.NullInt64
	TeamFouls             sql.NullInt64
	TeamFouled            sql.NullInt64
	TeamPossessionPct     sql.NullFloat64
	OpponentPossessionPct sql.NullFloat64
	RefereeName           sql.NullString
	Attendance            sql.NullInt64
	ScrapedAt             int64
}

func (q *Queries) GetPlayerMatchStats(ctx context.Context, playerID string) ([]GetPlayerMatchStatsRow, error) {
	rows, err := q.db.QueryContext(ctx, getPlayerMatchStats, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GetPlayerMatchStatsRow
	for rows.Next() {
		var i GetPlayerMatchStatsRow
		err := rows.Scan(
			&i.PlayerID, &i.MatchID, &i.PlayerName, &i.MatchURL, &i.Date,
			&i.Competition, &i.Venue, &i.Opponent, &i.Starting, &i.Position,
			&i.Minutes, &i.Fouls, &i.Fouled, &i.TeamFouls, &i.TeamFouled,
			&i.TeamPossessionPct, &i.OpponentPossessionPct, &i.RefereeName,
			&i.Attendance, &i.ScrapedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
