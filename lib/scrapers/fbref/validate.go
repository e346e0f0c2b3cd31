package fbref

import (
	"context"
	"log/slog"
)

type Verdict int

const (
	Invalid Verdict = iota
	PartiallyValid
	FullyValid
)

func (v Verdict) String() string {
	switch v {
	case PartiallyValid:
		return "partially valid"
	case FullyValid:
		return "fully valid"
	default:
		return "invalid"
	}
}

// regulation plus extra time
const maxMinutes = 120

// Validate checks a record for completeness and range sanity. it is
// deliberately lenient: a record missing only fouls/fouled is reported
// as partially valid and logged, not rejected. identity and minutes
// are mandatory, and the minutes bound is a hard domain invariant.
func Validate(ctx context.Context, r *PlayerMatchRecord) Verdict {
	if r == nil {
		return Invalid
	}

	if r.PlayerName == "" || r.Minutes == nil {
		slog.WarnContext(ctx, "record is missing identity fields",
			"player", r.PlayerName,
			"has_minutes", r.Minutes != nil,
			"match_url", r.MatchURL)
		return Invalid
	}

	if *r.Minutes < 0 || *r.Minutes > maxMinutes {
		slog.WarnContext(ctx, "record has out-of-range minutes",
			"player", r.PlayerName,
			"minutes", *r.Minutes,
			"match_url", r.MatchURL)
		return Invalid
	}

	if r.Fouls == nil || r.Fouled == nil {
		slog.WarnContext(ctx, "record is missing fouls/fouled, accepting as partial",
			"player", r.PlayerName,
			"has_fouls", r.Fouls != nil,
			"has_fouled", r.Fouled != nil,
			"match_url", r.MatchURL)
		return PartiallyValid
	}

	return FullyValid
}
