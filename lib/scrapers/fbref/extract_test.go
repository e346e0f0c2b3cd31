package fbref

import (
	"context"
	"fmt"
	"testing"
	"time"

	"playerfouls-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	bundles []*RawMatchBundle
	errs    []error
	calls   int
}

func (f *fakeSource) ScrapeMatch(ctx context.Context, matchURL string) (*RawMatchBundle, error) {
	i := f.calls
	f.calls++
	if i >= len(f.bundles) {
		i = len(f.bundles) - 1
	}
	return f.bundles[i], f.errs[i]
}

func (f *fakeSource) MatchLinks(ctx context.Context, league, season string) ([]string, error) {
	return nil, fmt.Errorf("not implemented")
}

type fakePages struct {
	markup []byte
	err    error
}

func (f *fakePages) MatchPage(ctx context.Context, matchURL string) ([]byte, error) {
	return f.markup, f.err
}

func testOptions() Options {
	return Options{
		ScrapeDelay: 0,
		MaxRetries:  3,
		Timeout:     time.Second * 5,
	}
}

func intp(n int) *int { return &n }

func chelseaBundle() *RawMatchBundle {
	return &RawMatchBundle{
		MatchURL:  "https://fbref.com/en/matches/b9e00aac",
		Date:      "2024-10-06",
		Stage:     "Premier League",
		HomeTeam:  "Chelsea",
		AwayTeam:  "Nottingham Forest",
		HomeGoals: intp(1),
		AwayGoals: intp(1),
		HomePlayerStats: TeamStats{
			"Summary": {
				Columns: []ColumnKey{playerCol, {"", "Min"}, {"", "Pos"}},
				Rows: []Row{
					{playerCol: "Cole Palmer", ColumnKey{"", "Min"}: "90", ColumnKey{"", "Pos"}: "AM"},
					{playerCol: "Nicolas Jackson", ColumnKey{"", "Min"}: "82", ColumnKey{"", "Pos"}: "FW"},
				},
			},
			"Misc": miscTable(
				Row{
					playerCol:                       "Cole Palmer",
					ColumnKey{"Performance", "Fls"}: "0",
					ColumnKey{"Performance", "Fld"}: "3",
				},
			),
		},
		AwayPlayerStats: TeamStats{
			"Summary": {
				Columns: []ColumnKey{playerCol, {"", "Min"}},
				Rows: []Row{
					{playerCol: "Chris Wood", ColumnKey{"", "Min"}: "90"},
				},
			},
		},
	}
}

func TestScrapeMatchHomePlayer(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/fbref")
	defer cleanup()

	source := &fakeSource{
		bundles: []*RawMatchBundle{chelseaBundle()},
		errs:    []error{nil},
	}
	scraper := NewScraper(source, nil, testOptions())

	record, err := scraper.ScrapeMatch(context.Background(), "https://fbref.com/en/matches/b9e00aac", "Cole Palmer")
	require.NoError(t, err)

	require.Equal(t, "Cole Palmer", record.PlayerName)
	require.Equal(t, VenueHome, record.Venue)
	require.Equal(t, "Nottingham Forest", record.Opponent)
	require.Equal(t, "Premier League", record.Competition)
	require.Equal(t, 90, *record.Minutes)
	require.Equal(t, 0, *record.Fouls)
	require.Equal(t, 3, *record.Fouled)
	require.Equal(t, "AM", record.Position)
	require.False(t, record.ScrapedAt.IsZero())
}

func TestScrapeMatchAwayPlayer(t *testing.T) {
	source := &fakeSource{
		bundles: []*RawMatchBundle{chelseaBundle()},
		errs:    []error{nil},
	}
	scraper := NewScraper(source, nil, testOptions())

	record, err := scraper.ScrapeMatch(context.Background(), "url", "Chris Wood")
	require.NoError(t, err)
	require.Equal(t, VenueAway, record.Venue)
	require.Equal(t, "Chelsea", record.Opponent)
	require.Equal(t, 90, *record.Minutes)
}

func TestScrapeMatchPlayerAbsentFromBothSides(t *testing.T) {
	source := &fakeSource{
		bundles: []*RawMatchBundle{chelseaBundle()},
		errs:    []error{nil},
	}
	scraper := NewScraper(source, nil, testOptions())

	record, err := scraper.ScrapeMatch(context.Background(), "url", "Lionel Messi")
	require.NoError(t, err, "an unmatched player is a reportable outcome, not an error")

	require.Equal(t, "Chelsea", record.HomeTeam)
	require.Equal(t, "Nottingham Forest", record.AwayTeam)
	require.Equal(t, Venue(""), record.Venue)
	require.Empty(t, record.Opponent)
	require.Nil(t, record.Minutes)
}

func TestScrapeMatchEmptyBundle(t *testing.T) {
	source := &fakeSource{
		bundles: []*RawMatchBundle{nil},
		errs:    []error{nil},
	}
	scraper := NewScraper(source, nil, testOptions())

	_, err := scraper.ScrapeMatch(context.Background(), "url", "Cole Palmer")
	require.ErrorIs(t, err, ErrEmptyBundle)
}

func TestScrapeMatchPageFailureDoesNotFailExtraction(t *testing.T) {
	source := &fakeSource{
		bundles: []*RawMatchBundle{chelseaBundle()},
		errs:    []error{nil},
	}
	pages := &fakePages{err: fmt.Errorf("blocked")}
	scraper := NewScraper(source, pages, testOptions())

	record, err := scraper.ScrapeMatch(context.Background(), "url", "Cole Palmer")
	require.NoError(t, err)
	require.Equal(t, 90, *record.Minutes)
	require.Nil(t, record.Starting)
	require.Nil(t, record.TeamFouls)
	require.Empty(t, record.RefereeName)
}

func TestScrapeMatchMergesSupplement(t *testing.T) {
	source := &fakeSource{
		bundles: []*RawMatchBundle{chelseaBundle()},
		errs:    []error{nil},
	}
	pages := &fakePages{markup: []byte(matchPageFixture)}
	scraper := NewScraper(source, pages, testOptions())

	record, err := scraper.ScrapeMatch(context.Background(), "url", "Cole Palmer")
	require.NoError(t, err)

	require.NotNil(t, record.Starting)
	require.True(t, *record.Starting)
	require.Equal(t, 12, *record.TeamFouls)
	require.Equal(t, 11, *record.TeamFouled)
	require.InDelta(t, 65.0, *record.TeamPossessionPct, 0.001)
	require.InDelta(t, 35.0, *record.OpponentPossessionPct, 0.001)
	require.Equal(t, "Chris Kavanagh", record.RefereeName)
	require.Equal(t, 39486, *record.Attendance)
}

func TestScrapeMatchDelayRespectsContext(t *testing.T) {
	source := &fakeSource{
		bundles: []*RawMatchBundle{chelseaBundle()},
		errs:    []error{nil},
	}
	opts := testOptions()
	opts.ScrapeDelay = time.Minute
	scraper := NewScraper(source, nil, opts)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*10)
	defer cancel()

	_, err := scraper.ScrapeMatch(ctx, "url", "Cole Palmer")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Zero(t, source.calls, "delay must precede the fetch")
}
