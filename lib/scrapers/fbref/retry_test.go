package fbref

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrapeWithRetryFirstAttemptSucceeds(t *testing.T) {
	source := &fakeSource{
		bundles: []*RawMatchBundle{chelseaBundle()},
		errs:    []error{nil},
	}
	scraper := NewScraper(source, nil, testOptions())

	record := scraper.ScrapeWithRetry(context.Background(), "url", "Cole Palmer")
	require.NotNil(t, record)
	require.Equal(t, 1, source.calls)
	require.Equal(t, 90, *record.Minutes)
}

func TestScrapeWithRetryRecoversFromTransientFailure(t *testing.T) {
	source := &fakeSource{
		bundles: []*RawMatchBundle{nil, nil, chelseaBundle()},
		errs:    []error{fmt.Errorf("network down"), nil, nil},
	}
	scraper := NewScraper(source, nil, testOptions())

	record := scraper.ScrapeWithRetry(context.Background(), "url", "Cole Palmer")
	require.NotNil(t, record)
	require.Equal(t, 3, source.calls)
}

func TestScrapeWithRetryExhaustsAttempts(t *testing.T) {
	source := &fakeSource{
		bundles: []*RawMatchBundle{nil},
		errs:    []error{fmt.Errorf("network down")},
	}
	scraper := NewScraper(source, nil, testOptions())

	record := scraper.ScrapeWithRetry(context.Background(), "url", "Cole Palmer")
	require.Nil(t, record, "exhaustion is no result, not an error")
	require.Equal(t, 3, source.calls)
}

func TestScrapeWithRetryNeverReturnsInvalidRecord(t *testing.T) {
	// the player is missing from every category, so each attempt
	// produces a metadata-only record the validator rejects
	source := &fakeSource{
		bundles: []*RawMatchBundle{chelseaBundle()},
		errs:    []error{nil},
	}
	scraper := NewScraper(source, nil, testOptions())

	record := scraper.ScrapeWithRetry(context.Background(), "url", "Lionel Messi")
	require.Nil(t, record)
	require.Equal(t, 3, source.calls)
}

func TestScrapeWithRetryAcceptsPartialRecord(t *testing.T) {
	bundle := chelseaBundle()
	delete(bundle.HomePlayerStats, "Misc")
	source := &fakeSource{
		bundles: []*RawMatchBundle{bundle},
		errs:    []error{nil},
	}
	scraper := NewScraper(source, nil, testOptions())

	record := scraper.ScrapeWithRetry(context.Background(), "url", "Cole Palmer")
	require.NotNil(t, record)
	require.Equal(t, 1, source.calls)
	require.Nil(t, record.Fouls)
}

func TestScrapeWithRetryStopsOnCancelledContext(t *testing.T) {
	source := &fakeSource{
		bundles: []*RawMatchBundle{nil},
		errs:    []error{fmt.Errorf("network down")},
	}
	scraper := NewScraper(source, nil, testOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	record := scraper.ScrapeWithRetry(ctx, "url", "Cole Palmer")
	require.Nil(t, record)
	require.LessOrEqual(t, source.calls, 1)
}
