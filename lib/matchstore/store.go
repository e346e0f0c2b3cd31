package matchstore

import (
	"context"
	"database/sql"
	"strings"
	"time"
	"unicode"

	"playerfouls-backend/lib/matchstore/db"
	"playerfouls-backend/lib/scrapers/fbref"
)

type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:  database,
		qry: db.New(database),
	}
}

// PlayerID derives the stable storage key for a player name. identity
// resolution proper (transfers, homonyms) is out of scope, a
// deterministic slug keeps the (player_id, match_id) primary key
// usable.
func PlayerID(name string) string {
	return slugify(name)
}

// MatchID extracts the upstream's own match hash out of a match URL
// ("/en/matches/<hash>/..."), falling back to a slug of the whole URL.
func MatchID(matchURL string) string {
	segments := strings.Split(strings.Trim(matchURL, "/"), "/")
	for i, seg := range segments {
		if seg == "matches" && i+1 < len(segments) {
			return segments[i+1]
		}
	}
	return slugify(matchURL)
}

func slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, c := range strings.ToLower(s) {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(c)
		} else {
			pendingDash = true
		}
	}
	return b.String()
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}

// Save persists one accepted record, upserting the entities it
// references on the way so the stats row never dangles.
func (s Store) Save(ctx context.Context, record *fbref.PlayerMatchRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	now := time.Now().Unix()
	playerID := PlayerID(record.PlayerName)
	matchID := MatchID(record.MatchURL)

	err = txqry.UpsertPlayer(ctx, db.UpsertPlayerParams{
		PlayerID: playerID,
		Name:     record.PlayerName,
		Now:      now,
	})
	if err != nil {
		return err
	}

	homeTeamID := sql.NullString{}
	if record.HomeTeam != "" {
		homeTeamID = nullStr(slugify(record.HomeTeam))
		err = txqry.UpsertTeam(ctx, db.UpsertTeamParams{
			TeamID: homeTeamID.String,
			Name:   record.HomeTeam,
			Now:    now,
		})
		if err != nil {
			return err
		}
	}
	awayTeamID := sql.NullString{}
	if record.AwayTeam != "" {
		awayTeamID = nullStr(slugify(record.AwayTeam))
		err = txqry.UpsertTeam(ctx, db.UpsertTeamParams{
			TeamID: awayTeamID.String,
			Name:   record.AwayTeam,
			Now:    now,
		})
		if err != nil {
			return err
		}
	}

	refereeID := sql.NullString{}
	if record.RefereeName != "" {
		refereeID = nullStr(slugify(record.RefereeName))
		err = txqry.UpsertReferee(ctx, db.UpsertRefereeParams{
			RefereeID: refereeID.String,
			Name:      record.RefereeName,
			Now:       now,
		})
		if err != nil {
			return err
		}
	}

	err = txqry.UpsertMatch(ctx, db.UpsertMatchParams{
		MatchID:     matchID,
		Date:        nullStr(record.Date),
		Competition: nullStr(record.Competition),
		HomeTeamID:  homeTeamID,
		AwayTeamID:  awayTeamID,
		HomeGoals:   nullInt(record.HomeGoals),
		AwayGoals:   nullInt(record.AwayGoals),
		Attendance:  nullInt(record.Attendance),
		RefereeID:   refereeID,
		FbrefURL:    nullStr(record.MatchURL),
		Now:         now,
	})
	if err != nil {
		return err
	}

	err = txqry.UpsertPlayerMatchStats(ctx, db.UpsertPlayerMatchStatsParams{
		PlayerID:              playerID,
		MatchID:               matchID,
		PlayerName:            record.PlayerName,
		MatchURL:              record.MatchURL,
		Date:                  nullStr(record.Date),
		Competition:           nullStr(record.Competition),
		Venue:                 nullStr(string(record.Venue)),
		Opponent:              nullStr(record.Opponent),
		Starting:              nullBool(record.Starting),
		Position:              nullStr(record.Position),
		Minutes:               nullInt(record.Minutes),
		Fouls:                 nullInt(record.Fouls),
		Fouled:                nullInt(record.Fouled),
		Tackles:               nullInt(record.Tackles),
		TacklesDef3rd:         nullInt(record.TacklesDef3rd),
		TacklesMid3rd:         nullInt(record.TacklesMid3rd),
		TacklesAtt3rd:         nullInt(record.TacklesAtt3rd),
		ChallengesAttempted:   nullInt(record.ChallengesAttempted),
		TakeOnsAttempted:      nullInt(record.TakeOnsAttempted),
		TakeOnsSucceeded:      nullInt(record.TakeOnsSucceeded),
		YellowCards:           nullInt(record.YellowCards),
		RedCards:              nullInt(record.RedCards),
		TeamFouls:             nullInt(record.TeamFouls),
		TeamFouled:            nullInt(record.TeamFouled),
		TeamPossessionPct:     nullFloat(record.TeamPossessionPct),
		OpponentPossessionPct: nullFloat(record.OpponentPossessionPct),
		RefereeName:           nullStr(record.RefereeName),
		Attendance:            nullInt(record.Attendance),
		ScrapedAt:             record.ScrapedAt.Unix(),
	})
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Pull returns every stored stats row for a player name.
func (s Store) Pull(ctx context.Context, playerName string) ([]db.GetPlayerMatchStatsRow, error) {
	return s.qry.GetPlayerMatchStats(ctx, PlayerID(playerName))
}
