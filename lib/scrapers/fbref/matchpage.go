package fbref

import (
	"bytes"
	"strconv"
	"strings"

	"playerfouls-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// table ids look like "stats_<team hash>_<category>"; categories here
// are mapped back to the names the rest of the pipeline knows. ids
// with a category outside this set still parse, they just never match
// a mapping.
var tableCategories = map[string]string{
	"summary":       "Summary",
	"misc":          "Misc",
	"defense":       "Defense",
	"possession":    "Possession",
	"passing":       "Passing",
	"passing_types": "Pass Types",
}

// ParseMatchPage turns raw match report markup into a RawMatchBundle.
// the page lays out every stat category for the home side first, then
// the away side, each group sharing a team hash in its table ids.
func ParseMatchPage(matchURL string, markup []byte) (*RawMatchBundle, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, err
	}

	bundle := &RawMatchBundle{MatchURL: matchURL}
	parseScorebox(doc, bundle)

	type teamGroup struct {
		hash  string
		stats TeamStats
	}
	var groups []teamGroup

	doc.Find(`table[id^="stats_"]`).Each(func(_ int, table *goquery.Selection) {
		id := table.AttrOr("id", "")
		hash, category, ok := splitTableID(id)
		if !ok {
			return
		}

		var stats TeamStats
		for i := range groups {
			if groups[i].hash == hash {
				stats = groups[i].stats
			}
		}
		if stats == nil {
			stats = TeamStats{}
			groups = append(groups, teamGroup{hash: hash, stats: stats})
		}

		stats[category] = parseStatsTable(table)
	})

	if len(groups) > 0 {
		bundle.HomePlayerStats = groups[0].stats
	}
	if len(groups) > 1 {
		bundle.AwayPlayerStats = groups[1].stats
	}

	if bundle.HomeTeam == "" && len(groups) == 0 {
		// not a match report page
		return nil, nil
	}
	return bundle, nil
}

func splitTableID(id string) (hash, category string, ok bool) {
	rest, found := strings.CutPrefix(id, "stats_")
	if !found {
		return "", "", false
	}
	hash, suffix, found := strings.Cut(rest, "_")
	if !found {
		return "", "", false
	}
	category, known := tableCategories[suffix]
	if !known {
		category = suffix
	}
	return hash, category, true
}

func parseScorebox(doc *goquery.Document, bundle *RawMatchBundle) {
	teams := doc.Find("div.scorebox strong a")
	if teams.Length() >= 2 {
		bundle.HomeTeam = htmlutil.CleanText(teams.Eq(0).Text())
		bundle.AwayTeam = htmlutil.CleanText(teams.Eq(1).Text())
	}

	scores := doc.Find("div.scorebox div.score")
	if scores.Length() >= 2 {
		bundle.HomeGoals = parseOptionalInt(htmlutil.CleanText(scores.Eq(0).Text()))
		bundle.AwayGoals = parseOptionalInt(htmlutil.CleanText(scores.Eq(1).Text()))
	}

	bundle.Date = doc.Find("span.venuetime").AttrOr("data-venue-date", "")
	if bundle.Date == "" {
		bundle.Date = htmlutil.CleanText(doc.Find("div.scorebox_meta div").First().Text())
	}
	bundle.Stage = htmlutil.CleanText(doc.Find("div.scorebox_meta div a").First().Text())
}

// parseStatsTable reads a two-row header into compound ColumnKeys and
// every body row into a Row. group headers span several columns via
// colspan; spanned columns without a group header get Group "".
func parseStatsTable(table *goquery.Selection) CategoryTable {
	headerRows := table.Find("thead tr")

	var groups []string
	var columns []ColumnKey

	if headerRows.Length() >= 2 {
		headerRows.Eq(0).Find("th").Each(func(_ int, th *goquery.Selection) {
			span := 1
			if raw, ok := th.Attr("colspan"); ok {
				n, err := strconv.Atoi(raw)
				if err == nil && n > 0 {
					span = n
				}
			}
			group := htmlutil.CleanText(th.Text())
			for i := 0; i < span; i++ {
				groups = append(groups, group)
			}
		})
	}

	labelRow := headerRows.Last()
	labelRow.Find("th").Each(func(i int, th *goquery.Selection) {
		group := ""
		if i < len(groups) {
			group = groups[i]
		}
		columns = append(columns, ColumnKey{
			Group: group,
			Name:  htmlutil.CleanText(th.Text()),
		})
	})

	out := CategoryTable{Columns: columns}
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.HasClass("spacer") || tr.HasClass("thead") {
			return
		}

		cells := tr.Find("th, td")
		if cells.Length() == 0 {
			return
		}

		row := Row{}
		cells.Each(func(i int, cell *goquery.Selection) {
			if i >= len(columns) {
				return
			}
			row[columns[i]] = htmlutil.CleanText(cell.Text())
		})
		out.Rows = append(out.Rows, row)
	})

	return out
}

// ParseMatchLinks collects the match report links off a league
// schedule page.
func ParseMatchLinks(markup []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var links []string
	seen := map[string]bool{}
	doc.Find(`td[data-stat="match_report"] a`).Each(func(_ int, a *goquery.Selection) {
		if htmlutil.CleanText(a.Text()) != "Match Report" {
			return
		}
		href, ok := a.Attr("href")
		if !ok || seen[href] {
			return
		}
		seen[href] = true
		links = append(links, baseURL+href)
	})
	return links, nil
}
