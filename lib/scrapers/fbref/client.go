package fbref

import (
	"context"
	"fmt"
	"time"

	"playerfouls-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const baseURL = "https://fbref.com"

// Client talks to the upstream stats site. it implements both
// MatchSource (structured per-category tables) and PageSource (raw
// markup), since both views come off the same match report page.
type Client struct {
	http *resty.Client
}

func NewClient(timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	// the upstream blocks plain http clients
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	telemetry.InstrumentResty(client, "scrapers/fbref/http")

	return &Client{http: client}
}

// MatchPage fetches the raw markup of a match report page.
func (c *Client) MatchPage(ctx context.Context, matchURL string) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(matchURL)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != 200 {
		return nil, fmt.Errorf("fetch '%s': unexpected status %d", matchURL, res.StatusCode())
	}
	return res.Body(), nil
}

// ScrapeMatch fetches a match report page and parses its per-team stat
// tables and scorebox metadata into a RawMatchBundle. a page without
// any recognizable match content yields nil.
func (c *Client) ScrapeMatch(ctx context.Context, matchURL string) (*RawMatchBundle, error) {
	ctx, span := tracer.Start(ctx, "client:ScrapeMatch")
	defer span.End()

	markup, err := c.MatchPage(ctx, matchURL)
	if err != nil {
		return nil, err
	}
	return ParseMatchPage(matchURL, markup)
}

type league struct {
	CompID int
	Slug   string
}

// the league names the original data source understands
var leagues = map[string]league{
	"EPL":        {9, "Premier-League"},
	"La Liga":    {12, "La-Liga"},
	"Serie A":    {11, "Serie-A"},
	"Ligue 1":    {13, "Ligue-1"},
	"Bundesliga": {20, "Bundesliga"},
}

// MatchLinks lists every match report link for a league season.
// season is formatted like "2024-2025".
func (c *Client) MatchLinks(ctx context.Context, leagueName, season string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:MatchLinks")
	defer span.End()

	lg, ok := leagues[leagueName]
	if !ok {
		return nil, fmt.Errorf("unknown league '%s'", leagueName)
	}

	schedule := fmt.Sprintf(
		"/en/comps/%d/%s/schedule/%s-%s-Scores-and-Fixtures",
		lg.CompID, season, season, lg.Slug,
	)
	res, err := c.http.R().
		SetContext(ctx).
		Get(schedule)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != 200 {
		return nil, fmt.Errorf("fetch '%s': unexpected status %d", schedule, res.StatusCode())
	}

	return ParseMatchLinks(res.Body())
}
