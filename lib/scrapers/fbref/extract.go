package fbref

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/fbref")

var ErrEmptyBundle = fmt.Errorf("upstream returned no match data")

// Options is the configuration surface of the scraping pipeline,
// passed in at construction instead of living in process-wide state.
type Options struct {
	// wait inserted before every upstream fetch
	ScrapeDelay time.Duration
	// attempts made by ScrapeWithRetry before giving up
	MaxRetries int
	// per-request bound on the underlying fetch
	Timeout time.Duration
}

func DefaultOptions() Options {
	return Options{
		ScrapeDelay: 2 * time.Second,
		MaxRetries:  3,
		Timeout:     30 * time.Second,
	}
}

// MatchSource is the upstream collaborator producing nested per-team,
// per-category stat tables for a match.
type MatchSource interface {
	ScrapeMatch(ctx context.Context, matchURL string) (*RawMatchBundle, error)
	MatchLinks(ctx context.Context, league, season string) ([]string, error)
}

// PageSource is the secondary collaborator serving raw match-page
// markup for the best-effort supplementary fields.
type PageSource interface {
	MatchPage(ctx context.Context, matchURL string) ([]byte, error)
}

type Scraper struct {
	source MatchSource
	pages  PageSource
	opts   Options
}

func NewScraper(source MatchSource, pages PageSource, opts Options) *Scraper {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultOptions().MaxRetries
	}
	return &Scraper{
		source: source,
		pages:  pages,
		opts:   opts,
	}
}

func (s *Scraper) wait(ctx context.Context) error {
	if s.opts.ScrapeDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.opts.ScrapeDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ScrapeMatch extracts one player's flat record from one match. a
// player absent from both sides is not an error: the record comes back
// with match metadata only and no venue/opponent.
func (s *Scraper) ScrapeMatch(ctx context.Context, matchURL, playerName string) (*PlayerMatchRecord, error) {
	ctx, span := tracer.Start(ctx, "ScrapeMatch")
	defer span.End()
	span.SetAttributes(
		attribute.String("match_url", matchURL),
		attribute.String("player", playerName),
	)

	err := s.wait(ctx)
	if err != nil {
		return nil, err
	}

	bundle, err := s.source.ScrapeMatch(ctx, matchURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upstream fetch failed")
		return nil, err
	}
	if bundle == nil {
		span.SetStatus(codes.Error, "empty bundle")
		return nil, ErrEmptyBundle
	}

	record := &PlayerMatchRecord{
		PlayerName:  playerName,
		MatchURL:    matchURL,
		ScrapedAt:   time.Now(),
		Date:        bundle.Date,
		Competition: bundle.Stage,
		HomeTeam:    bundle.HomeTeam,
		AwayTeam:    bundle.AwayTeam,
		HomeGoals:   bundle.HomeGoals,
		AwayGoals:   bundle.AwayGoals,
	}

	if locatePlayer(ctx, record, bundle.HomePlayerStats, playerName) {
		record.Venue = VenueHome
		record.Opponent = bundle.AwayTeam
	} else if locatePlayer(ctx, record, bundle.AwayPlayerStats, playerName) {
		record.Venue = VenueAway
		record.Opponent = bundle.HomeTeam
	} else {
		slog.WarnContext(ctx, "player not found in match",
			"player", playerName, "match_url", matchURL)
	}

	s.supplement(ctx, record)

	return record, nil
}

// supplement merges the best-effort markup fields into the record. any
// failure here degrades to absent fields, never to a failed extraction.
func (s *Scraper) supplement(ctx context.Context, record *PlayerMatchRecord) {
	if s.pages == nil {
		return
	}

	ctx, span := tracer.Start(ctx, "supplement")
	defer span.End()

	markup, err := s.pages.MatchPage(ctx, record.MatchURL)
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "match page unavailable, skipping supplementary fields",
			"match_url", record.MatchURL, "err", err)
		return
	}

	sup, err := ExtractSupplement(ctx, markup, record.Venue, record.PlayerName)
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "match page markup unparseable",
			"match_url", record.MatchURL, "err", err)
		return
	}

	record.Starting = sup.Starting
	record.TeamFouls = sup.TeamFouls
	record.TeamFouled = sup.TeamFouled
	record.TeamPossessionPct = sup.TeamPossessionPct
	record.OpponentPossessionPct = sup.OpponentPossessionPct
	record.RefereeName = sup.RefereeName
	record.Attendance = sup.Attendance
}
