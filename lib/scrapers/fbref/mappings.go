package fbref

// fieldMapping binds one source column to one canonical field. Field is
// the canonical name as it appears in storage, Set coerces the raw cell
// and assigns it.
type fieldMapping struct {
	Key   ColumnKey
	Field string
	Set   func(r *PlayerMatchRecord, raw string)
}

func setInt(dst func(r *PlayerMatchRecord) **int) func(r *PlayerMatchRecord, raw string) {
	return func(r *PlayerMatchRecord, raw string) {
		*dst(r) = parseOptionalInt(raw)
	}
}

func setCount(dst func(r *PlayerMatchRecord) **int) func(r *PlayerMatchRecord, raw string) {
	return func(r *PlayerMatchRecord, raw string) {
		*dst(r) = parseCount(raw)
	}
}

// categoryMappings is the closed registry of known stat categories.
// upstream adds and removes columns across seasons, so mapping is an
// explicit allow-list: a vanished source column is an omission, an
// unknown category maps to nothing.
var categoryMappings = map[string][]fieldMapping{
	"Summary": {
		{Key: ColumnKey{"", "Min"}, Field: "minutes", Set: func(r *PlayerMatchRecord, raw string) {
			min := ParseMinutes(raw)
			r.Minutes = &min
		}},
		{Key: ColumnKey{"", "Pos"}, Field: "position", Set: func(r *PlayerMatchRecord, raw string) {
			r.Position = raw
		}},
		{Key: ColumnKey{"Performance", "Gls"}, Field: "goals", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.Goals })},
		{Key: ColumnKey{"Performance", "Ast"}, Field: "assists", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.Assists })},
		{Key: ColumnKey{"Performance", "Sh"}, Field: "shots", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.Shots })},
		{Key: ColumnKey{"Performance", "SoT"}, Field: "shots_on_target", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.ShotsOnTarget })},
		{Key: ColumnKey{"Performance", "CrdY"}, Field: "yellow_cards", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.YellowCards })},
		{Key: ColumnKey{"Performance", "CrdR"}, Field: "red_cards", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.RedCards })},
		{Key: ColumnKey{"Performance", "Touches"}, Field: "touches", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.Touches })},
		{Key: ColumnKey{"Performance", "Tkl"}, Field: "tackles", Set: setCount(func(r *PlayerMatchRecord) **int { return &r.Tackles })},
		{Key: ColumnKey{"Performance", "Int"}, Field: "interceptions", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.Interceptions })},
		{Key: ColumnKey{"Performance", "Blocks"}, Field: "blocks", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.Blocks })},
	},
	"Misc": {
		{Key: ColumnKey{"Performance", "Fls"}, Field: "fouls", Set: setCount(func(r *PlayerMatchRecord) **int { return &r.Fouls })},
		{Key: ColumnKey{"Performance", "Fld"}, Field: "fouled", Set: setCount(func(r *PlayerMatchRecord) **int { return &r.Fouled })},
		{Key: ColumnKey{"Performance", "Off"}, Field: "offsides", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.Offsides })},
		{Key: ColumnKey{"Performance", "Crs"}, Field: "crosses", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.Crosses })},
		{Key: ColumnKey{"Performance", "TklW"}, Field: "tackles_won", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TacklesWon })},
		{Key: ColumnKey{"Performance", "PKwon"}, Field: "penalties_won", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.PenaltiesWon })},
		{Key: ColumnKey{"Performance", "PKcon"}, Field: "penalties_conceded", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.PenaltiesConceded })},
		{Key: ColumnKey{"Performance", "Recov"}, Field: "recoveries", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.Recoveries })},
		{Key: ColumnKey{"Aerial Duels", "Won"}, Field: "aerial_duels_won", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.AerialDuelsWon })},
		{Key: ColumnKey{"Aerial Duels", "Lost"}, Field: "aerial_duels_lost", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.AerialDuelsLost })},
	},
	"Defense": {
		{Key: ColumnKey{"Tackles", "Tkl"}, Field: "tackles_total", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TacklesTotal })},
		{Key: ColumnKey{"Tackles", "TklW"}, Field: "tackles_won_def", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TacklesWonDef })},
		{Key: ColumnKey{"Tackles", "Def 3rd"}, Field: "tackles_def_3rd", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TacklesDef3rd })},
		{Key: ColumnKey{"Tackles", "Mid 3rd"}, Field: "tackles_mid_3rd", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TacklesMid3rd })},
		{Key: ColumnKey{"Tackles", "Att 3rd"}, Field: "tackles_att_3rd", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TacklesAtt3rd })},
		{Key: ColumnKey{"Challenges", "Att"}, Field: "challenges_attempted", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.ChallengesAttempted })},
		{Key: ColumnKey{"Challenges", "Tkl%"}, Field: "tackle_success_pct", Set: func(r *PlayerMatchRecord, raw string) {
			r.TackleSuccessPct = parseOptionalFloat(raw)
		}},
		{Key: ColumnKey{"Challenges", "Lost"}, Field: "challenges_lost", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.ChallengesLost })},
	},
	"Possession": {
		{Key: ColumnKey{"Touches", "Touches"}, Field: "touches_total", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TouchesTotal })},
		{Key: ColumnKey{"Touches", "Def Pen"}, Field: "touches_def_pen", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TouchesDefPen })},
		{Key: ColumnKey{"Touches", "Def 3rd"}, Field: "touches_def_3rd", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TouchesDef3rd })},
		{Key: ColumnKey{"Touches", "Mid 3rd"}, Field: "touches_mid_3rd", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TouchesMid3rd })},
		{Key: ColumnKey{"Touches", "Att 3rd"}, Field: "touches_att_3rd", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TouchesAtt3rd })},
		{Key: ColumnKey{"Touches", "Att Pen"}, Field: "touches_att_pen", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TouchesAttPen })},
		{Key: ColumnKey{"Take-Ons", "Att"}, Field: "take_ons_attempted", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TakeOnsAttempted })},
		{Key: ColumnKey{"Take-Ons", "Succ"}, Field: "take_ons_succeeded", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.TakeOnsSucceeded })},
		{Key: ColumnKey{"Carries", "Carries"}, Field: "carries", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.Carries })},
		{Key: ColumnKey{"Carries", "PrgC"}, Field: "progressive_carries", Set: setInt(func(r *PlayerMatchRecord) **int { return &r.ProgressiveCarries })},
	},
}

// applyCategory maps one player row of a single category onto the
// record. returns the canonical names of the fields actually set.
// columns missing from the row are omitted, unknown categories are a
// no-op.
func applyCategory(r *PlayerMatchRecord, category string, row Row) []string {
	mappings := categoryMappings[category]
	var applied []string
	for _, m := range mappings {
		raw, ok := row[m.Key]
		if !ok {
			continue
		}
		m.Set(r, raw)
		applied = append(applied, m.Field)
	}
	return applied
}
