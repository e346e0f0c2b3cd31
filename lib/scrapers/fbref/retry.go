package fbref

import (
	"context"
	"log/slog"
	"time"
)

// ScrapeWithRetry runs the extraction pipeline up to MaxRetries times,
// waiting ScrapeDelay between attempts. attempts are strictly
// sequential so the upstream source is never hammered. the first
// record the validator does not reject is returned; when every attempt
// fails the result is nil, which is a reportable outcome rather than
// an error.
func (s *Scraper) ScrapeWithRetry(ctx context.Context, matchURL, playerName string) *PlayerMatchRecord {
	ctx, span := tracer.Start(ctx, "ScrapeWithRetry")
	defer span.End()

	for attempt := 1; attempt <= s.opts.MaxRetries; attempt++ {
		slog.InfoContext(ctx, "scraping match",
			"match_url", matchURL,
			"player", playerName,
			"attempt", attempt,
			"max_attempts", s.opts.MaxRetries)

		record, err := s.ScrapeMatch(ctx, matchURL, playerName)
		if err != nil {
			slog.ErrorContext(ctx, "scrape attempt failed",
				"match_url", matchURL, "attempt", attempt, "err", err)
			if ctx.Err() != nil {
				return nil
			}
			if attempt < s.opts.MaxRetries && s.opts.ScrapeDelay > 0 {
				select {
				case <-time.After(s.opts.ScrapeDelay):
				case <-ctx.Done():
					return nil
				}
			}
			continue
		}

		verdict := Validate(ctx, record)
		if verdict != Invalid {
			slog.InfoContext(ctx, "scraped record accepted",
				"match_url", matchURL, "player", playerName, "verdict", verdict.String())
			return record
		}

		slog.WarnContext(ctx, "record rejected by validator",
			"match_url", matchURL, "player", playerName, "attempt", attempt)
	}

	slog.ErrorContext(ctx, "all scrape attempts exhausted",
		"match_url", matchURL, "player", playerName, "attempts", s.opts.MaxRetries)
	return nil
}
